package basket

import (
	"encoding/json"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	storeEntity "grocery.GO/model/entity/store"
	"grocery.GO/service/catalogue"
)

func TestResolveAllStores(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&storeEntity.Store{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cat := catalogue.Catalogue{
		entry("Tomates", [catalogue.TierCount]catalogue.ProductReference{
			ref("Tomates Marque repère", 500, 2.10),
			ref("Tomates classique", 500, 2.60),
			ref("Tomates Louis Vuitton", 1000, 5.00),
		}),
	}
	raw, _ := json.Marshal(cat)
	db.Create(&storeEntity.Store{Name: "Lidl Saint-Omer", Catalogue: raw})
	db.Create(&storeEntity.Store{Name: "E.Leclerc Carvin"}) // no catalogue yet

	got, err := ResolveAllStores(db, []ShoppingListItem{{Name: "Tomates", Amount: 700}})
	if err != nil {
		t.Fatalf("ResolveAllStores: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("stores = %d, want 2", len(got))
	}
	if line, ok := got["Lidl Saint-Omer"]["Tomates"]; !ok || line.UnitsPurchased != 2 {
		t.Errorf("Lidl line = %+v, want 2 units", line)
	}
	if len(got["E.Leclerc Carvin"]) != 0 {
		t.Error("store without catalogue should yield an empty result map")
	}
}

func TestResolveAllStores_BadCatalogueJSON(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&storeEntity.Store{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	db.Create(&storeEntity.Store{Name: "broken", Catalogue: []byte(`{not json`)})

	if _, err := ResolveAllStores(db, []ShoppingListItem{{Name: "x", Amount: 1}}); err == nil {
		t.Error("want error for undecodable catalogue")
	}
}
