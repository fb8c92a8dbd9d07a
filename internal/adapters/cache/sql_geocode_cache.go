package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/ports"
)

// SQLGeocodeCache is the Postgres variant of the reverse-geocode cache,
// shared between service instances when DATABASE_URL is configured.
type SQLGeocodeCache struct {
	DB *sql.DB
}

func NewSQLGeocodeCache(db *sql.DB) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db}
}

// Fetch the cached address for one coordinate key.
func (s *SQLGeocodeCache) Get(ctx context.Context, key string) (_ ports.ResolvedAddress, _ bool, err error) {
	defer obs.Time(ctx, "geocode.cache.Get")(&err)

	if s.DB == nil {
		return ports.ResolvedAddress{}, false, errors.New("geocode cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return ports.ResolvedAddress{}, false, errors.New("geocode cache: empty key")
	}

	q := `
	SELECT street, city, country, full_address
    FROM geocode_cache
    WHERE coord_key = $1;
	`

	var addr ports.ResolvedAddress
	err = s.DB.QueryRowContext(ctx, q, key).Scan(&addr.Street, &addr.City, &addr.Country, &addr.FullAddress)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.ResolvedAddress{}, false, nil
	}
	if err != nil {
		return ports.ResolvedAddress{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return addr, true, nil
}

// Store one coordinate key -> address mapping.
func (s *SQLGeocodeCache) Put(ctx context.Context, key string, addr ports.ResolvedAddress) (err error) {
	defer obs.Time(ctx, "geocode.cache.Put")(&err)

	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("insert geocode cache: empty key")
	}

	q := `
	INSERT INTO geocode_cache (coord_key, street, city, country, full_address)
    VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (coord_key) DO UPDATE
	SET street = EXCLUDED.street,
		city = EXCLUDED.city,
		country = EXCLUDED.country,
		full_address = EXCLUDED.full_address;
	`

	if _, err := s.DB.ExecContext(ctx, q, key, addr.Street, addr.City, addr.Country, addr.FullAddress); err != nil {
		return fmt.Errorf("insert geocode cache key=%q: %w", key, err)
	}

	return nil
}
