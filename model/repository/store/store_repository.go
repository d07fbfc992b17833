package store

import (
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	storeEntity "grocery.GO/model/entity/store"
)

type StoreRepository struct {
	db    *gorm.DB
	sqlDB *sql.DB
}

func NewStoreRepository(db *gorm.DB) (*StoreRepository, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	return &StoreRepository{db: db, sqlDB: sqlDB}, nil
}

// All returns every store including its persisted catalogue.
func (r *StoreRepository) All() ([]storeEntity.Store, error) {
	var stores []storeEntity.Store
	err := r.db.Order("store_id").Find(&stores).Error
	return stores, err
}

// FindByName returns a store by its unique name.
func (r *StoreRepository) FindByName(name string) (*storeEntity.Store, error) {
	var st storeEntity.Store
	if err := r.db.Where("name = ?", name).First(&st).Error; err != nil {
		return nil, err
	}
	return &st, nil
}

// Create inserts a new store.
func (r *StoreRepository) Create(st *storeEntity.Store) error {
	return r.db.Create(st).Error
}

// Upsert inserts a store or updates its address by name.
func (r *StoreRepository) Upsert(st *storeEntity.Store) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"address"}),
	}).Create(st).Error
}

// ReplaceCatalogue overwrites a store's catalogue column wholesale.
func (r *StoreRepository) ReplaceCatalogue(name string, catalogue []byte) error {
	res := r.db.Model(&storeEntity.Store{}).Where("name = ?", name).Update("catalogue", catalogue)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the number of stores.
// Uses raw SQL for minimal overhead.
func (r *StoreRepository) Count() (int64, error) {
	const query = `SELECT COUNT(*) FROM store`
	var n int64
	err := r.sqlDB.QueryRow(query).Scan(&n)
	return n, err
}
