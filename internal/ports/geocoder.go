package ports

import (
	"context"
	"errors"

	"trip-planner-service/internal/domain"
)

// ErrNoResults is returned by Search when the provider finds nothing for
// the query. It is a reported condition, not a transport failure.
var ErrNoResults = errors.New("geocoder: no results")

// ResolvedAddress is the raw (not yet normalized) outcome of a reverse
// geocode lookup. Country normalization happens in the planner.
type ResolvedAddress struct {
	Street      string
	City        string
	Country     string
	FullAddress string
}

// Contract for reverse and forward geocoding against an external provider.
type Geocoder interface {
	// Resolve a coordinate to a human-readable address.
	ReverseGeocode(ctx context.Context, coord domain.Coordinates) (ResolvedAddress, error)
	// Resolve a free-text place query to coordinates.
	// Returns ErrNoResults when the provider result list is empty.
	Search(ctx context.Context, query string) (domain.Coordinates, error)
}
