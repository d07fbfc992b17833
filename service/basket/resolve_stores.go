package basket

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	storeRepo "grocery.GO/model/repository/store"
	"grocery.GO/service/catalogue"
)

// ResolveAllStores prices a shopping list against every persisted store.
// A store with no catalogue yet resolves to an empty map, not an error.
func ResolveAllStores(db *gorm.DB, list []ShoppingListItem) (map[string]map[string]PricedLine, error) {
	stores, err := storeRepo.NewStoreRepository(db)
	if err != nil {
		return nil, err
	}
	rows, err := stores.All()
	if err != nil {
		return nil, err
	}

	input := make([]StoreCatalogue, 0, len(rows))
	for _, row := range rows {
		var cat catalogue.Catalogue
		if len(row.Catalogue) > 0 {
			if err := json.Unmarshal(row.Catalogue, &cat); err != nil {
				return nil, fmt.Errorf("store %q: decode catalogue: %w", row.Name, err)
			}
		}
		input = append(input, StoreCatalogue{StoreName: row.Name, Catalogue: cat})
	}
	return Resolve(list, input)
}
