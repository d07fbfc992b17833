package ingredient

// Ingredient represents the ingredient table. Category must exist in the
// category reference table and Unit in the package-size table before the
// generator will accept the row.
type Ingredient struct {
	IngredientID uint   `gorm:"column:ingredient_id;primaryKey;autoIncrement" json:"ingredient_id,omitempty"`
	Name         string `gorm:"column:name;type:varchar(128);not null;uniqueIndex" json:"name"`
	Category     string `gorm:"column:category;type:varchar(64);not null" json:"category"`
	Unit         string `gorm:"column:unit;type:varchar(8);not null" json:"unit"`
}

func (Ingredient) TableName() string {
	return "ingredient"
}
