package planner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

const (
	// CountryDefault is the slug used when no country can be resolved.
	CountryDefault = "default"
	// AddressUnavailable is the degraded address substituted when the
	// geocoding provider cannot be reached or parsed.
	AddressUnavailable = "Unable to retrieve address"
	// AddressUnknown fills individual address parts the provider omitted.
	AddressUnknown = "Unknown"
)

// territoryAliases remaps disputed-territory slugs onto the country whose
// road rules apply. Applied after normalization.
var territoryAliases = map[string]string{
	"south-ossetia":   "georgia",
	"abkhazia":        "georgia",
	"northern-cyprus": "cyprus",
}

// Resolved is a normalized geocoding outcome: address parts plus the
// country slug used for flags and road-rule lookups.
type Resolved struct {
	Street      string
	City        string
	Country     string
	FullAddress string
}

// GeoResolver wraps the geocoding provider and normalizes its results.
// Provider failure degrades the result instead of propagating: a marker
// must never be blocked by geocoding trouble.
type GeoResolver struct {
	geocoder ports.Geocoder
}

func NewGeoResolver(geocoder ports.Geocoder) *GeoResolver {
	return &GeoResolver{geocoder: geocoder}
}

// ResolveAddress resolves a coordinate to a normalized address.
// It never returns an error; transport or parse failures yield the
// degraded value.
func (r *GeoResolver) ResolveAddress(ctx context.Context, coord domain.Coordinates) Resolved {
	addr, err := r.geocoder.ReverseGeocode(ctx, coord)
	if err != nil {
		log.Printf("reverse geocode failed: coord=%s err=%v", coord.Key(), err)
		return Resolved{
			Street:      AddressUnknown,
			City:        AddressUnknown,
			Country:     CountryDefault,
			FullAddress: AddressUnavailable,
		}
	}

	street := addr.Street
	if street == "" {
		street = AddressUnknown
	}
	city := addr.City
	if city == "" {
		city = AddressUnknown
	}
	full := addr.FullAddress
	if full == "" {
		full = AddressUnknown
	}

	return Resolved{
		Street:      street,
		City:        city,
		Country:     NormalizeCountry(addr.Country),
		FullAddress: full,
	}
}

// ResolveCountry resolves a coordinate to its normalized country slug.
func (r *GeoResolver) ResolveCountry(ctx context.Context, coord domain.Coordinates) string {
	return r.ResolveAddress(ctx, coord).Country
}

// SearchPlace resolves a free-text query to coordinates.
// An empty provider result set is ErrPlaceNotFound, a reported condition.
func (r *GeoResolver) SearchPlace(ctx context.Context, query string) (domain.Coordinates, error) {
	coord, err := r.geocoder.Search(ctx, query)
	if errors.Is(err, ports.ErrNoResults) {
		return domain.Coordinates{}, ErrPlaceNotFound
	}
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("search place %q: %w", query, err)
	}

	return coord, nil
}

// NormalizeCountry lowercases a country name, collapses whitespace to
// hyphens and applies the territory remap. Empty input maps to the
// default slug.
func NormalizeCountry(name string) string {
	slug := strings.ToLower(strings.Join(strings.Fields(name), "-"))
	if slug == "" {
		return CountryDefault
	}

	if mapped, ok := territoryAliases[slug]; ok {
		return mapped
	}

	return slug
}
