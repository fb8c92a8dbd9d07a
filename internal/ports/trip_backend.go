package ports

import (
	"context"

	"trip-planner-service/internal/domain"
)

// TokenSource supplies the bearer token for backend calls. An absent token
// does not gate the call client-side; the backend alone rejects
// unauthenticated requests.
type TokenSource interface {
	Token() (string, bool)
}

// Contract for the trip backend that persists visited markers and saved
// route plans. The backend owns its storage; this port only shapes the
// requests and responses.
type TripBackend interface {
	SaveVisited(ctx context.Context, marker domain.Marker) error
	ListVisited(ctx context.Context) ([]domain.Marker, error)
	SaveRoutePlan(ctx context.Context, plan domain.RoutePlan) (domain.RoutePlan, error)
	ListRoutePlans(ctx context.Context) ([]domain.RoutePlan, error)
	RoadRegulations(ctx context.Context, country string) (domain.StreetRule, error)
}
