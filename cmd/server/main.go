package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"trip-planner-service/internal/adapters/backend"
	"trip-planner-service/internal/adapters/cache"
	"trip-planner-service/internal/adapters/geocode"
	"trip-planner-service/internal/adapters/routing"
	"trip-planner-service/internal/api"
	"trip-planner-service/internal/config"
	"trip-planner-service/internal/metrics"
	"trip-planner-service/internal/planner"
	"trip-planner-service/internal/platform/db"
	"trip-planner-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (Nominatim, OSRM, the trip backend, caches)
// behind ports and starts the HTTP server.
func main() {
	config.LoadDotenv()

	port := config.Get("PORT", "8080")
	nominatimURL := config.Get("NOMINATIM_URL", "https://nominatim.openstreetmap.org")
	osrmURL := config.Get("OSRM_URL", "https://router.project-osrm.org")
	dbPath := config.Get("DB_PATH", "data/app.db")

	backendURL := os.Getenv("BACKEND_URL")
	if strings.TrimSpace(backendURL) == "" {
		log.Fatal("BACKEND_URL is required")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(reg)

	geocodeCache, closeCache, err := openGeocodeCache(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer closeCache()

	routeCache := openRouteCache()

	// The raw Nominatim client sits behind a persistent cache with
	// in-flight dedup so rapid duplicate clicks share one provider call.
	var geocoder ports.Geocoder = geocode.NewNominatimClient(nominatimURL, appMetrics)
	geocoder = geocode.NewCachingGeocoder(geocoder, geocodeCache, appMetrics)

	resolver := planner.NewGeoResolver(geocoder)
	computer := planner.NewRouteComputer(routing.NewOSRMRouteProvider(osrmURL, appMetrics), routeCache, appMetrics)

	tokens := config.StaticToken(os.Getenv("BACKEND_TOKEN"))
	gateway := planner.NewSyncGateway(backend.NewClient(backendURL, tokens, appMetrics))

	engine := planner.New(resolver, computer, gateway)
	router := api.NewRouter(engine, reg)

	// Timeouts are tuned for cold-cache route computation (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openGeocodeCache picks the shared Postgres cache when DATABASE_URL is
// set and falls back to a local SQLite cache otherwise.
func openGeocodeCache(dbPath string) (ports.GeocodeCache, func(), error) {
	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		pg, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open geocode cache: %w", err)
		}
		return cache.NewSQLGeocodeCache(pg), func() { pg.Close() }, nil
	}

	lite, err := openSqlite(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open geocode cache: %w", err)
	}
	if err := cache.InitSqliteSchema(lite); err != nil {
		lite.Close()
		return nil, nil, fmt.Errorf("open geocode cache: %w", err)
	}
	return cache.NewSqliteGeocodeCache(lite), func() { lite.Close() }, nil
}

func openSqlite(dbPath string) (*sql.DB, error) {
	lite, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := lite.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return lite, nil
}

// openRouteCache returns a Redis-backed route cache when REDIS_ADDR is
// configured; computed routes are simply not cached otherwise.
func openRouteCache() ports.RouteCache {
	addr := os.Getenv("REDIS_ADDR")
	if strings.TrimSpace(addr) == "" {
		return nil
	}

	ttl, err := time.ParseDuration(config.Get("ROUTE_CACHE_TTL", "24h"))
	if err != nil {
		log.Fatalf("invalid ROUTE_CACHE_TTL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	return cache.NewRedisRouteCache(rdb, ttl)
}
