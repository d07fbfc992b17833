package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"grocery.GO/config"
	ingredientEntity "grocery.GO/model/entity/ingredient"
	storeEntity "grocery.GO/model/entity/store"
	ingredientRepo "grocery.GO/model/repository/ingredient"
	storeRepo "grocery.GO/model/repository/store"
)

var demoStores = []storeEntity.Store{
	{Name: "Lidl Saint-Omer", Address: []byte(`{"city":"Saint-Omer","postcode":62500}`)},
	{Name: "E.Leclerc Carvin", Address: []byte(`{"city":"Carvin","postcode":62220}`)},
	{Name: "Cc Auchan Flandre Littoral", Address: []byte(`{"city":"Dunkerque","postcode":59640}`)},
	{Name: "Carrefour Drive Lens Maës", Address: []byte(`{"city":"Lens","postcode":62300}`)},
	{Name: "MONOPRIX (MONOPRIX LILLE TANNEURS)", Address: []byte(`{"city":"Lille","postcode":59000}`)},
}

var demoIngredients = []ingredientEntity.Ingredient{
	{Name: "Tomates", Category: "Fruits & Légumes", Unit: config.UnitGram},
	{Name: "Pommes", Category: "Fruits & Légumes", Unit: config.UnitGram},
	{Name: "Baguette", Category: "Boulangerie & Pâtisseries", Unit: config.UnitPiece},
	{Name: "Lait", Category: "Produits laitiers", Unit: config.UnitLitre},
	{Name: "Beurre", Category: "Produits laitiers", Unit: config.UnitGram},
	{Name: "Poulet", Category: "Viandes & Poissons", Unit: config.UnitGram},
	{Name: "Saumon", Category: "Viandes & Poissons", Unit: config.UnitGram},
	{Name: "Paprika", Category: "Epices", Unit: config.UnitGram},
	{Name: "Chips", Category: "Epicerie Salée", Unit: config.UnitGram},
	{Name: "Huile d'olive", Category: "Epicerie Salée", Unit: config.UnitLitre},
	{Name: "Chocolat", Category: "Epicerie Sucrée", Unit: config.UnitGram},
	{Name: "Riz", Category: "Pâtes, Riz & Céréales", Unit: config.UnitGram},
	{Name: "Oeufs", Category: "Autre", Unit: config.UnitPiece},
}

var seedCmd = &cobra.Command{
	Use:   "seed:demo",
	Short: "Seed the reference stores and a demo ingredient set",
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
		if err := db.AutoMigrate(&storeEntity.Store{}, &ingredientEntity.Ingredient{}); err != nil {
			fmt.Printf("Migration failed: %v\n", err)
			return
		}

		stores, err := storeRepo.NewStoreRepository(db)
		if err != nil {
			fmt.Printf("Store repository failed: %v\n", err)
			return
		}
		for i := range demoStores {
			st := demoStores[i]
			if err := stores.Upsert(&st); err != nil {
				fmt.Printf("Seed store %s failed: %v\n", st.Name, err)
				return
			}
		}

		ingredients, err := ingredientRepo.NewIngredientRepository(db)
		if err != nil {
			fmt.Printf("Ingredient repository failed: %v\n", err)
			return
		}
		if err := ingredients.BulkUpsert(demoIngredients, 0); err != nil {
			fmt.Printf("Seed ingredients failed: %v\n", err)
			return
		}

		fmt.Printf(`
=== Seed Report ===
Stores:      %d
Ingredients: %d
===================
Run "catalogue:generate" to build the catalogues.
`, len(demoStores), len(demoIngredients))
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
