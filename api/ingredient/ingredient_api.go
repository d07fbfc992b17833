package ingredient

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"grocery.GO/api"
	"grocery.GO/config"
	ingredientEntity "grocery.GO/model/entity/ingredient"
	ingredientRepo "grocery.GO/model/repository/ingredient"
)

func init() {
	api.RegisterModule(RegisterIngredientRoutes)
}

// IngredientInput is one row of a bulk import request.
type IngredientInput struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Unit     string `json:"unit"`
}

func RegisterIngredientRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/ingredients")

	// GET /api/ingredients – list all known ingredients (public)
	g.GET("", func(c echo.Context) error {
		repo, err := ingredientRepo.NewIngredientRepository(db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		items, err := repo.All()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"ingredients": items})
	})

	// POST /api/ingredients/import – bulk ingredient upsert (auth required via /api middleware)
	g.POST("/import", func(c echo.Context) error {
		start := time.Now()

		var body struct {
			Items     []IngredientInput `json:"items"`
			BatchSize int               `json:"batch_size"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if len(body.Items) == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "items array is required and must not be empty"})
		}

		rows, warnings := validateItems(body.Items)

		repo, err := ingredientRepo.NewIngredientRepository(db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		if err := repo.BulkUpsert(rows, body.BatchSize); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		duration := time.Since(start).Milliseconds()
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		return c.JSON(http.StatusOK, echo.Map{
			"imported":            len(rows),
			"skipped":             len(body.Items) - len(rows),
			"warnings":            warnings,
			"request_duration_ms": duration,
		})
	})
}

// validateItems keeps rows whose category and unit exist in the reference
// tables; the generator would reject the whole batch later, the import just
// skips them with a warning.
func validateItems(items []IngredientInput) ([]ingredientEntity.Ingredient, []string) {
	var (
		rows     []ingredientEntity.Ingredient
		warnings []string
	)
	for _, item := range items {
		if item.Name == "" {
			warnings = append(warnings, "row with empty name skipped")
			continue
		}
		if config.Reference != nil {
			if _, ok := config.Reference.Categories[item.Category]; !ok {
				warnings = append(warnings, fmt.Sprintf("%s: unknown category %q", item.Name, item.Category))
				continue
			}
			if _, ok := config.Reference.PackageSizes[item.Unit]; !ok {
				warnings = append(warnings, fmt.Sprintf("%s: unknown unit %q", item.Name, item.Unit))
				continue
			}
		}
		rows = append(rows, ingredientEntity.Ingredient{
			Name:     item.Name,
			Category: item.Category,
			Unit:     item.Unit,
		})
	}
	return rows, warnings
}
