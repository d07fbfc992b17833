package store

import "gorm.io/datatypes"

// Store represents the store table. Address and Catalogue are JSON documents:
// the address shape belongs to the caller, and the catalogue is replaced
// wholesale on each regeneration (never patched in place).
type Store struct {
	StoreID   uint           `gorm:"column:store_id;primaryKey;autoIncrement" json:"store_id,omitempty"`
	Name      string         `gorm:"column:name;type:varchar(128);not null;uniqueIndex" json:"name"`
	Address   datatypes.JSON `gorm:"column:address" json:"address,omitempty"`
	Catalogue datatypes.JSON `gorm:"column:catalogue" json:"catalogue,omitempty"`
}

func (Store) TableName() string {
	return "store"
}
