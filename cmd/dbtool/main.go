package main

import (
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"

	"trip-planner-service/internal/adapters/cache"
	"trip-planner-service/internal/config"
	"trip-planner-service/internal/platform/db"
)

// dbtool prepares the shared Postgres geocode cache schema. Run it once
// before pointing server instances at DATABASE_URL.
func main() {
	config.LoadDotenv()

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatalf("dbtool: %v", err)
	}
	defer pg.Close()

	if err := cache.InitPostgresSchema(pg); err != nil {
		log.Fatalf("dbtool: init schema: %v", err)
	}

	log.Println("geocode cache schema ready")
}
