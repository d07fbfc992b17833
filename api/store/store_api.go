package store

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"grocery.GO/api"
	"grocery.GO/core/cache"
	storeEntity "grocery.GO/model/entity/store"
	storeRepo "grocery.GO/model/repository/store"
	basketService "grocery.GO/service/basket"
	catalogueService "grocery.GO/service/catalogue"
)

func init() {
	api.RegisterModule(RegisterStoreRoutes)
}

func RegisterStoreRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/stores")

	// GET /api/stores – list stores with their persisted catalogues (public)
	g.GET("", func(c echo.Context) error {
		repo, err := storeRepo.NewStoreRepository(db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		stores, err := repo.All()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"stores": stores})
	})

	// POST /api/stores – create a store (catalogue arrives later via generate)
	g.POST("", func(c echo.Context) error {
		var body struct {
			Name    string          `json:"name"`
			Address json.RawMessage `json:"address"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.Name == "" || len(body.Address) == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "must enter an address and a name"})
		}
		repo, err := storeRepo.NewStoreRepository(db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		st := &storeEntity.Store{Name: body.Name, Address: []byte(body.Address)}
		if err := repo.Create(st); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"result": true, "store": st})
	})

	// POST /api/stores/catalogue/generate – regenerate every store's catalogue
	// from all known ingredients, replacing each wholesale
	g.POST("/catalogue/generate", func(c echo.Context) error {
		start := time.Now()

		catalogues, err := catalogueService.RegenerateAll(db, 0)
		duration := time.Since(start).Milliseconds()
		if err != nil {
			var missing *catalogueService.MissingReferenceError
			if errors.As(err, &missing) {
				return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error(), "request_duration_ms": duration})
		}

		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		return c.JSON(http.StatusOK, echo.Map{
			"catalogues":          catalogues,
			"request_duration_ms": duration,
		})
	})

	// PUT /api/stores/basket/resolve – price a shopping list at every store
	g.PUT("/basket/resolve", func(c echo.Context) error {
		start := time.Now()

		var body struct {
			ShoppingList []basketService.ShoppingListItem `json:"shoppingList"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		// Catalogues only change on generate, so identical lists can be
		// served from cache until then (tag flushed by RegenerateAll).
		cacheKey := ""
		if raw, err := json.Marshal(body.ShoppingList); err == nil {
			cacheKey = "basket:" + string(raw)
			if v, ok := cache.GetInstance().Get(cacheKey); ok {
				return c.JSON(http.StatusOK, v)
			}
		}

		baskets, err := basketService.ResolveAllStores(db, body.ShoppingList)
		duration := time.Since(start).Milliseconds()
		if err != nil {
			var invalid *basketService.InvalidRequestError
			if errors.As(err, &invalid) {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error(), "field": invalid.Field})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error(), "request_duration_ms": duration})
		}

		response := echo.Map{"baskets": baskets, "request_duration_ms": duration}
		if cacheKey != "" {
			cache.GetInstance().Set(cacheKey, response, 60, []string{"basket"})
		}
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		return c.JSON(http.StatusOK, response)
	})
}
