package catalogue

import (
	"encoding/json"
	"log"
	"math/rand"
	"sync"
	"time"

	"gorm.io/gorm"

	"grocery.GO/config"
	"grocery.GO/core/cache"
	ingredientRepo "grocery.GO/model/repository/ingredient"
	storeRepo "grocery.GO/model/repository/store"
)

// RegenerateAll rebuilds the catalogue of every persisted store from every
// persisted ingredient. Stores are generated concurrently (each call only
// reads the shared reference tables); persistence happens only after all
// stores generated cleanly, so a precondition failure leaves nothing
// half-replaced. seed != 0 makes the run reproducible.
func RegenerateAll(db *gorm.DB, seed int64) (map[string]Catalogue, error) {
	stores, err := storeRepo.NewStoreRepository(db)
	if err != nil {
		return nil, err
	}
	ingredients, err := ingredientRepo.NewIngredientRepository(db)
	if err != nil {
		return nil, err
	}

	storeRows, err := stores.All()
	if err != nil {
		return nil, err
	}
	ingredientRows, err := ingredients.All()
	if err != nil {
		return nil, err
	}

	input := make([]Ingredient, len(ingredientRows))
	for i, row := range ingredientRows {
		input[i] = Ingredient{Name: row.Name, Category: row.Category, Unit: row.Unit}
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	generated := make([]Catalogue, len(storeRows))
	errs := make([]error, len(storeRows))
	var wg sync.WaitGroup
	for i := range storeRows {
		wg.Add(1)
		// rand.Rand is not safe for concurrent use; one source per store.
		rng := rand.New(rand.NewSource(seed + int64(i)))
		go func(i int, rng *rand.Rand) {
			defer wg.Done()
			generated[i], errs[i] = Generate(storeRows[i].Name, input, rng)
		}(i, rng)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	result := make(map[string]Catalogue, len(storeRows))
	for i, row := range storeRows {
		raw, err := json.Marshal(generated[i])
		if err != nil {
			return nil, err
		}
		if err := stores.ReplaceCatalogue(row.Name, raw); err != nil {
			return nil, err
		}
		result[row.Name] = generated[i]

		if config.RedisClient != nil {
			if err := config.RedisClient.Set(config.RedisCtx(), "catalogue:"+row.Name, raw, 0).Err(); err != nil {
				log.Printf("redis: catalogue snapshot for %s failed: %v", row.Name, err)
			}
		}
	}

	// Resolved baskets are priced off the old catalogues now.
	cache.GetInstance().DeleteByTag("basket")

	return result, nil
}
