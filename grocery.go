//go:build !cli
// +build !cli

package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"grocery.GO/api"
	_ "grocery.GO/api/ingredient"
	_ "grocery.GO/api/store"
	"grocery.GO/config"
	"grocery.GO/core/auth"
	_ "grocery.GO/cron/jobs"
	_ "grocery.GO/custom"
	ingredientEntity "grocery.GO/model/entity/ingredient"
	storeEntity "grocery.GO/model/entity/store"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()
	if err := config.LoadReferenceData(); err != nil {
		log.Fatalf("failed to load reference data: %v", err)
	}

	// Initialize Redis
	config.InitRedis()
	redisStatus := "Redis not configured or not reachable, caching disabled."
	if config.RedisClient != nil {
		err := config.RedisClient.Ping(config.RedisCtx()).Err()
		if err == nil {
			redisStatus = "Redis connection successful."
		} else {
			config.RedisClient = nil // Disable Redis if not reachable
			redisStatus = "Redis configured but not reachable, caching disabled."
		}
	}
	log.Println(redisStatus)

	db, err := config.NewDB()
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	// Check DB connection
	sqldb, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get DB instance: %v", err)
	}
	if err := sqldb.Ping(); err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	log.Println("Database connection successful.")

	if err := db.AutoMigrate(&storeEntity.Store{}, &ingredientEntity.Ingredient{}); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			log.Printf("Request duration: %d ms", duration)
			return err
		}
	})

	apiGroup := e.Group("/api")
	apiGroup.Use(auth.Middleware())
	api.ApplyModules(apiGroup, db)
	api.ApplyRoutes(e, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on :%s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
