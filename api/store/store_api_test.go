package store

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"grocery.GO/config"
	ingredientEntity "grocery.GO/model/entity/ingredient"
	storeEntity "grocery.GO/model/entity/store"
)

func testServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&storeEntity.Store{}, &ingredientEntity.Ingredient{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.SetReferenceForTesting(&config.ReferenceData{
		Categories: map[string]config.CategoryReference{
			"Fruits & Légumes": {BasePricePerUnit: 4.15, Variance: 0.5},
		},
		StoreIndex: map[string]float64{
			"Lidl Saint-Omer":  0.95,
			"E.Leclerc Carvin": 0.975,
		},
		PackageSizes: map[string][]float64{
			config.UnitGram: {150, 500, 1000},
		},
	})

	e := echo.New()
	RegisterStoreRoutes(e.Group("/api"), db)
	return e, db
}

func request(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateStore_RequiresNameAndAddress(t *testing.T) {
	e, _ := testServer(t)

	rec := request(t, e, http.MethodPost, "/api/stores", `{"name":"Lidl Saint-Omer"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	rec = request(t, e, http.MethodPost, "/api/stores",
		`{"name":"Lidl Saint-Omer","address":{"city":"Saint-Omer","postcode":62500}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}

	rec = request(t, e, http.MethodGet, "/api/stores", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Lidl Saint-Omer") {
		t.Errorf("store list missing created store: %s", rec.Body)
	}
}

func TestGenerateCatalogues(t *testing.T) {
	e, db := testServer(t)
	db.Create(&storeEntity.Store{Name: "Lidl Saint-Omer"})
	db.Create(&storeEntity.Store{Name: "E.Leclerc Carvin"})
	db.Create(&ingredientEntity.Ingredient{Name: "Tomates", Category: "Fruits & Légumes", Unit: "g"})
	db.Create(&ingredientEntity.Ingredient{Name: "Pommes", Category: "Fruits & Légumes", Unit: "g"})

	rec := request(t, e, http.MethodPost, "/api/stores/catalogue/generate", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}

	var resp struct {
		Catalogues map[string][]struct {
			ProductName       string `json:"productName"`
			ProductReferences []struct {
				Label     string  `json:"label"`
				UnitPrice float64 `json:"unitPrice"`
			} `json:"productReferences"`
		} `json:"catalogues"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Catalogues) != 2 {
		t.Fatalf("catalogues = %d, want 2", len(resp.Catalogues))
	}
	for name, cat := range resp.Catalogues {
		if len(cat) != 2 {
			t.Errorf("%s: entries = %d, want 2", name, len(cat))
		}
		for _, entry := range cat {
			if len(entry.ProductReferences) != 3 {
				t.Errorf("%s/%s: references = %d, want 3", name, entry.ProductName, len(entry.ProductReferences))
			}
		}
	}

	// catalogue persisted, replaced wholesale
	var st storeEntity.Store
	db.Where("name = ?", "Lidl Saint-Omer").First(&st)
	if len(st.Catalogue) == 0 {
		t.Error("catalogue not persisted")
	}
}

func TestGenerateCatalogues_UnknownStore(t *testing.T) {
	e, db := testServer(t)
	db.Create(&storeEntity.Store{Name: "Intermarché Lens"}) // not in the store index
	db.Create(&ingredientEntity.Ingredient{Name: "Tomates", Category: "Fruits & Légumes", Unit: "g"})

	rec := request(t, e, http.MethodPost, "/api/stores/catalogue/generate", "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422: %s", rec.Code, rec.Body)
	}
}

func TestResolveBasket(t *testing.T) {
	e, db := testServer(t)
	cat := `[{"productName":"Tomates","category":"Fruits & Légumes","productReferences":[
		{"label":"Tomates Marque repère","packageQuantity":500,"unit":"g","unitPrice":2.10},
		{"label":"Tomates classique","packageQuantity":500,"unit":"g","unitPrice":2.60},
		{"label":"Tomates Louis Vuitton","packageQuantity":1000,"unit":"g","unitPrice":5.00}]}]`
	db.Create(&storeEntity.Store{Name: "Lidl Saint-Omer", Catalogue: []byte(cat)})

	rec := request(t, e, http.MethodPut, "/api/stores/basket/resolve",
		`{"shoppingList":[{"name":"Tomates","amount":700},{"name":"Safran","amount":2}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}

	var resp struct {
		Baskets map[string]map[string]struct {
			Reference struct {
				Label string `json:"label"`
			} `json:"reference"`
			UnitsPurchased uint64  `json:"unitsPurchased"`
			TotalCost      float64 `json:"totalCost"`
		} `json:"baskets"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	line, ok := resp.Baskets["Lidl Saint-Omer"]["Tomates"]
	if !ok {
		t.Fatalf("no Tomates line: %s", rec.Body)
	}
	if line.Reference.Label != "Tomates Marque repère" || line.UnitsPurchased != 2 {
		t.Errorf("line = %+v, want economy tier × 2", line)
	}
	if _, ok := resp.Baskets["Lidl Saint-Omer"]["Safran"]; ok {
		t.Error("Safran not carried: should be omitted (caller diffs keys)")
	}
}

func TestResolveBasket_InvalidAmount(t *testing.T) {
	e, db := testServer(t)
	db.Create(&storeEntity.Store{Name: "Lidl Saint-Omer"})

	rec := request(t, e, http.MethodPut, "/api/stores/basket/resolve",
		`{"shoppingList":[{"name":"Tomates","amount":-1}]}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400: %s", rec.Code, rec.Body)
	}

	rec = request(t, e, http.MethodPut, "/api/stores/basket/resolve", `{"shoppingList":[]}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty list: status = %d, want 400: %s", rec.Code, rec.Body)
	}
}
