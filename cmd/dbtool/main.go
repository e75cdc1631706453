package main

import (
	"co2-pax-compare/internal/adapters/cache"
	"co2-pax-compare/internal/config"
	"context"
	"log"
	"strings"
)

// dbtool initializes the resource cache schema and optionally seeds it
// with a local snapshot of the emissions resource (SEED_PATH).
func main() {
	config.LoadDotEnv()

	driver := config.Get("CACHE_DRIVER", "")
	databaseURL := config.Get("DATABASE_URL", "")
	if driver == "" {
		driver = "sqlite"
		if databaseURL != "" {
			driver = "postgres"
		}
	}

	store, err := cache.Open(cache.OpenConfig{
		Driver:      driver,
		SQLitePath:  config.Get("CACHE_DB_PATH", config.DefaultCacheDBPath),
		DatabaseURL: databaseURL,
	})
	if err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	defer store.Close()
	log.Printf("Schema ready. driver=%s", store.Dialect)

	seedPath := config.Get("SEED_PATH", "")
	if strings.TrimSpace(seedPath) == "" {
		return
	}

	url := config.Get("EMISSIONS_URL", config.DefaultEmissionsURL)
	log.Printf("Seeding cache... url=%s path=%s", url, seedPath)
	if err := cache.SeedFromFile(context.Background(), store.Cache, url, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
