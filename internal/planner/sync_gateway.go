package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// SyncGateway persists visited markers and route plans to the trip
// backend. Persistence is optimistic: local state is already mutated when
// a save goes out, and a failed save does not roll it back.
type SyncGateway struct {
	backend ports.TripBackend
}

func NewSyncGateway(backend ports.TripBackend) *SyncGateway {
	return &SyncGateway{backend: backend}
}

func (g *SyncGateway) SaveVisited(ctx context.Context, marker domain.Marker) error {
	if err := g.backend.SaveVisited(ctx, marker); err != nil {
		return fmt.Errorf("save visited marker: %w", err)
	}
	return nil
}

func (g *SyncGateway) ListVisited(ctx context.Context) ([]domain.Marker, error) {
	markers, err := g.backend.ListVisited(ctx)
	if err != nil {
		return nil, fmt.Errorf("list visited markers: %w", err)
	}
	return markers, nil
}

// SaveRoutePlan snapshots the ordered stops into a named plan and persists
// it. An empty name is rejected locally; no network call is issued.
// Transient UI-only fields are stripped from the persisted stops.
func (g *SyncGateway) SaveRoutePlan(
	ctx context.Context,
	name string,
	stops []domain.Marker,
) (domain.RoutePlan, error) {
	if strings.TrimSpace(name) == "" {
		return domain.RoutePlan{}, ErrEmptyTripName
	}

	planStops := make([]domain.PlanStop, 0, len(stops))
	for _, s := range stops {
		planStops = append(planStops, domain.StripForPlan(s))
	}

	plan := domain.RoutePlan{
		Name:        name,
		Stops:       planStops,
		DateCreated: time.Now().UTC(),
	}

	saved, err := g.backend.SaveRoutePlan(ctx, plan)
	if err != nil {
		return domain.RoutePlan{}, fmt.Errorf("save route plan %q: %w", name, err)
	}

	return saved, nil
}

func (g *SyncGateway) ListRoutePlans(ctx context.Context) ([]domain.RoutePlan, error) {
	plans, err := g.backend.ListRoutePlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("list route plans: %w", err)
	}
	return plans, nil
}

func (g *SyncGateway) RoadRegulations(ctx context.Context, country string) (domain.StreetRule, error) {
	rule, err := g.backend.RoadRegulations(ctx, country)
	if err != nil {
		return domain.StreetRule{}, fmt.Errorf("road regulations for %q: %w", country, err)
	}
	return rule, nil
}
