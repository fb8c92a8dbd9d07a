package planner

import (
	"context"
	"sync"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// stubGeocoder implements ports.Geocoder with injectable behavior.
type stubGeocoder struct {
	reverseFunc func(ctx context.Context, coord domain.Coordinates) (ports.ResolvedAddress, error)
	searchFunc  func(ctx context.Context, query string) (domain.Coordinates, error)
}

func (s *stubGeocoder) ReverseGeocode(ctx context.Context, coord domain.Coordinates) (ports.ResolvedAddress, error) {
	return s.reverseFunc(ctx, coord)
}

func (s *stubGeocoder) Search(ctx context.Context, query string) (domain.Coordinates, error) {
	return s.searchFunc(ctx, query)
}

// stubRouteProvider counts calls and returns a fixed result.
type stubRouteProvider struct {
	mu     sync.Mutex
	calls  int
	result ports.RouteResult
	err    error

	// when set, GetRoute blocks until the channel is closed
	block chan struct{}
}

func (s *stubRouteProvider) GetRoute(_ context.Context, _ []domain.Coordinates) (ports.RouteResult, error) {
	s.mu.Lock()
	s.calls++
	block := s.block
	s.mu.Unlock()

	if block != nil {
		<-block
	}
	return s.result, s.err
}

func (s *stubRouteProvider) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// stubBackend records persisted markers and plans.
type stubBackend struct {
	mu            sync.Mutex
	savedVisited  []domain.Marker
	savedPlans    []domain.RoutePlan
	visitedResult []domain.Marker
	plansResult   []domain.RoutePlan
	ruleResult    domain.StreetRule
	err           error

	// closed-over signal for async saves
	visitedSaved chan struct{}
}

func (s *stubBackend) SaveVisited(_ context.Context, marker domain.Marker) error {
	s.mu.Lock()
	s.savedVisited = append(s.savedVisited, marker)
	saved := s.visitedSaved
	s.mu.Unlock()

	if saved != nil {
		close(saved)
	}
	return s.err
}

func (s *stubBackend) ListVisited(_ context.Context) ([]domain.Marker, error) {
	return s.visitedResult, s.err
}

func (s *stubBackend) SaveRoutePlan(_ context.Context, plan domain.RoutePlan) (domain.RoutePlan, error) {
	s.mu.Lock()
	s.savedPlans = append(s.savedPlans, plan)
	s.mu.Unlock()

	if s.err != nil {
		return domain.RoutePlan{}, s.err
	}
	return plan, nil
}

func (s *stubBackend) ListRoutePlans(_ context.Context) ([]domain.RoutePlan, error) {
	return s.plansResult, s.err
}

func (s *stubBackend) RoadRegulations(_ context.Context, _ string) (domain.StreetRule, error) {
	return s.ruleResult, s.err
}

func (s *stubBackend) savedVisitedMarkers() []domain.Marker {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Marker, len(s.savedVisited))
	copy(out, s.savedVisited)
	return out
}

func (s *stubBackend) savedRoutePlans() []domain.RoutePlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.RoutePlan, len(s.savedPlans))
	copy(out, s.savedPlans)
	return out
}

// stubRouteCache is an in-memory RouteCache.
type stubRouteCache struct {
	mu      sync.Mutex
	entries map[string]ports.RouteResult
}

func newStubRouteCache() *stubRouteCache {
	return &stubRouteCache{entries: map[string]ports.RouteResult{}}
}

func (c *stubRouteCache) Get(_ context.Context, key string) (ports.RouteResult, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	result, ok := c.entries[key]
	return result, ok, nil
}

func (c *stubRouteCache) Put(_ context.Context, key string, result ports.RouteResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = result
	return nil
}

// okGeocoder returns a geocoder that resolves every coordinate to a fixed
// address in the given country.
func okGeocoder(country string) *stubGeocoder {
	return &stubGeocoder{
		reverseFunc: func(_ context.Context, coord domain.Coordinates) (ports.ResolvedAddress, error) {
			return ports.ResolvedAddress{
				Street:      "Main Street 1",
				City:        "Springfield",
				Country:     country,
				FullAddress: "Main Street 1, Springfield",
			}, nil
		},
		searchFunc: func(_ context.Context, _ string) (domain.Coordinates, error) {
			return domain.Coordinates{Lat: 1, Lon: 2}, nil
		},
	}
}
