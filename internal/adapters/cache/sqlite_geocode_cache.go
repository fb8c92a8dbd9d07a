package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"trip-planner-service/internal/ports"
)

// SQLite backed reverse-geocode cache. Keys are rounded coordinate strings
// (domain.Coordinates.Key) and are expected to be consistent across callers.
type SqliteGeocodeCache struct {
	DB *sql.DB
}

func NewSqliteGeocodeCache(db *sql.DB) *SqliteGeocodeCache {
	return &SqliteGeocodeCache{DB: db}
}

// Fetch the cached address for one coordinate key.
func (s *SqliteGeocodeCache) Get(ctx context.Context, key string) (ports.ResolvedAddress, bool, error) {
	if s.DB == nil {
		return ports.ResolvedAddress{}, false, errors.New("geocode cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return ports.ResolvedAddress{}, false, errors.New("geocode cache: empty key")
	}

	q := `
	SELECT
        street,
        city,
        country,
        full_address
    FROM geocode_cache
    WHERE coord_key = ?;
	`

	var addr ports.ResolvedAddress
	err := s.DB.QueryRowContext(ctx, q, key).Scan(&addr.Street, &addr.City, &addr.Country, &addr.FullAddress)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.ResolvedAddress{}, false, nil
	}
	if err != nil {
		return ports.ResolvedAddress{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return addr, true, nil
}

// Store one coordinate key -> address mapping.
func (s *SqliteGeocodeCache) Put(ctx context.Context, key string, addr ports.ResolvedAddress) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("insert geocode cache: empty key")
	}

	q := `
	INSERT OR REPLACE INTO geocode_cache (
        coord_key,
        street,
        city,
        country,
        full_address
    )
    VALUES (?, ?, ?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, key, addr.Street, addr.City, addr.Country, addr.FullAddress); err != nil {
		return fmt.Errorf("insert geocode cache key=%q: %w", key, err)
	}

	return nil
}
