package ingredient

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
)

func testServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&ingredientEntity.Ingredient{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.SetReferenceForTesting(&config.ReferenceData{
		Categories: map[string]config.CategoryReference{
			"Fruits & Légumes": {BasePricePerUnit: 4.15, Variance: 0.5},
		},
		StoreIndex: map[string]float64{"Lidl Saint-Omer": 0.95},
		PackageSizes: map[string][]float64{
			config.UnitGram: {150, 500, 1000},
		},
	})

	e := echo.New()
	RegisterIngredientRoutes(e.Group("/api"), db)
	return e, db
}

func TestImport_List(t *testing.T) {
	e, _ := testServer(t)

	body := `{"items":[
		{"name":"Tomates","category":"Fruits & Légumes","unit":"g"},
		{"name":"Glace","category":"Surgelés","unit":"g"},
		{"name":"Lait","category":"Fruits & Légumes","unit":"L"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/ingredients/import", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}

	var resp struct {
		Imported int      `json:"imported"`
		Skipped  int      `json:"skipped"`
		Warnings []string `json:"warnings"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	// Glace has an unknown category, Lait an unknown unit for this table
	if resp.Imported != 1 || resp.Skipped != 2 {
		t.Errorf("imported/skipped = %d/%d, want 1/2 (%v)", resp.Imported, resp.Skipped, resp.Warnings)
	}
	if len(resp.Warnings) != 2 {
		t.Errorf("warnings = %v, want 2 entries", resp.Warnings)
	}

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ingredients", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Tomates") {
		t.Errorf("list missing Tomates: %s", rec.Body)
	}
	if strings.Contains(rec.Body.String(), "Glace") {
		t.Errorf("skipped row leaked into list: %s", rec.Body)
	}
}

func TestImport_EmptyItems(t *testing.T) {
	e, _ := testServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/ingredients/import", strings.NewReader(`{"items":[]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
