package cmd

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"grocery.GO/config"
	ingredientRepo "grocery.GO/model/repository/ingredient"
	storeRepo "grocery.GO/model/repository/store"
	catalogueService "grocery.GO/service/catalogue"
)

var (
	generateStore string
	generateSeed  int64
)

var generateCmd = &cobra.Command{
	Use:   "catalogue:generate",
	Short: "Regenerate store catalogues from the known ingredients",
	Run: func(cmd *cobra.Command, args []string) {
		if err := config.LoadReferenceData(); err != nil {
			fmt.Printf("Reference data failed: %v\n", err)
			return
		}
		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}

		start := time.Now()
		if generateStore != "" {
			entries, err := generateOne(db, generateStore, generateSeed)
			if err != nil {
				fmt.Printf("Generate failed: %v\n", err)
				return
			}
			fmt.Printf("Catalogue for %s regenerated: %d entries in %s\n",
				generateStore, entries, time.Since(start).Round(time.Millisecond))
			return
		}

		catalogues, err := catalogueService.RegenerateAll(db, generateSeed)
		if err != nil {
			fmt.Printf("Generate failed: %v\n", err)
			return
		}

		entries := 0
		for _, cat := range catalogues {
			entries += len(cat)
		}
		fmt.Printf(`
=== Catalogue Report ===
Stores:      %d
Entries:     %d
Total time:  %s
========================
`, len(catalogues), entries, time.Since(start).Round(time.Millisecond))
	},
}

// generateOne regenerates a single store's catalogue by name.
func generateOne(db *gorm.DB, name string, seed int64) (int, error) {
	stores, err := storeRepo.NewStoreRepository(db)
	if err != nil {
		return 0, err
	}
	ingredients, err := ingredientRepo.NewIngredientRepository(db)
	if err != nil {
		return 0, err
	}
	if _, err := stores.FindByName(name); err != nil {
		return 0, fmt.Errorf("store %q: %w", name, err)
	}
	rows, err := ingredients.All()
	if err != nil {
		return 0, err
	}
	input := make([]catalogueService.Ingredient, len(rows))
	for i, row := range rows {
		input[i] = catalogueService.Ingredient{Name: row.Name, Category: row.Category, Unit: row.Unit}
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cat, err := catalogueService.Generate(name, input, rand.New(rand.NewSource(seed)))
	if err != nil {
		return 0, err
	}
	raw, err := json.Marshal(cat)
	if err != nil {
		return 0, err
	}
	return len(cat), stores.ReplaceCatalogue(name, raw)
}

func init() {
	generateCmd.Flags().StringVarP(&generateStore, "store", "s", "", "Regenerate a single store by name")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "Random seed (0 = time-based)")
	rootCmd.AddCommand(generateCmd)
}
