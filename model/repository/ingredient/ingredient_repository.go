package ingredient

import (
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	ingredientEntity "grocery.GO/model/entity/ingredient"
)

type IngredientRepository struct {
	db    *gorm.DB
	sqlDB *sql.DB
}

func NewIngredientRepository(db *gorm.DB) (*IngredientRepository, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	return &IngredientRepository{db: db, sqlDB: sqlDB}, nil
}

// All returns every ingredient ordered by name.
func (r *IngredientRepository) All() ([]ingredientEntity.Ingredient, error) {
	var items []ingredientEntity.Ingredient
	err := r.db.Order("name").Find(&items).Error
	return items, err
}

// FindByName returns an ingredient by its unique name.
func (r *IngredientRepository) FindByName(name string) (*ingredientEntity.Ingredient, error) {
	var item ingredientEntity.Ingredient
	if err := r.db.Where("name = ?", name).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByNames returns the subset of ingredients whose names are in names.
func (r *IngredientRepository) FindByNames(names []string) ([]ingredientEntity.Ingredient, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var items []ingredientEntity.Ingredient
	err := r.db.Where("name IN ?", names).Find(&items).Error
	return items, err
}

// BulkUpsert inserts or updates ingredients by name in batches.
func (r *IngredientRepository) BulkUpsert(items []ingredientEntity.Ingredient, batchSize int) error {
	if len(items) == 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}
	upsert := clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"category", "unit"}),
	}
	return r.db.Clauses(upsert).CreateInBatches(items, batchSize).Error
}

// Count returns the number of ingredients.
// Uses raw SQL for minimal overhead.
func (r *IngredientRepository) Count() (int64, error) {
	const query = `SELECT COUNT(*) FROM ingredient`
	var n int64
	err := r.sqlDB.QueryRow(query).Scan(&n)
	return n, err
}
