package ports

import "context"

// GeocodeCache stores resolved addresses under rounded coordinate keys
// (domain.Coordinates.Key). Misses are reported via ok=false, not an error.
type GeocodeCache interface {
	Get(ctx context.Context, key string) (ResolvedAddress, bool, error)
	Put(ctx context.Context, key string, addr ResolvedAddress) error
}

// RouteCache stores computed route results under a key derived from the
// rounded coordinate sequence of the stops.
type RouteCache interface {
	Get(ctx context.Context, key string) (RouteResult, bool, error)
	Put(ctx context.Context, key string, result RouteResult) error
}
