package planner

import (
	"context"
	"log"
	"sync"
	"time"

	"trip-planner-service/internal/domain"
)

// RouteState is a read snapshot of the current route: the ordered stops,
// the last computed geometry and leg durations, and whether that
// computation is stale (the sequence changed since it landed).
type RouteState struct {
	Stops        []domain.Marker
	Geometry     domain.RouteGeometry
	LegDurations []string
	Stale        bool
}

// Planner is the trip-planning state engine. It owns the marker
// collection and the route-stop sequence and coordinates the resolver,
// route computer and sync gateway around them.
//
// User actions arrive as interleaved HTTP requests rather than a
// single-threaded event loop, so a mutex serializes state mutation while
// provider calls stay outside the lock. Every sequence change bumps a
// generation counter; a computation that resolves after a newer change is
// discarded instead of overwriting fresher state.
type Planner struct {
	resolver *GeoResolver
	computer *RouteComputer
	gateway  *SyncGateway

	mu           sync.Mutex
	store        *MarkerStore
	routeStops   []domain.Marker
	geometry     domain.RouteGeometry
	legDurations []string
	stale        bool
	routeGen     uint64
}

func New(resolver *GeoResolver, computer *RouteComputer, gateway *SyncGateway) *Planner {
	return &Planner{
		resolver: resolver,
		computer: computer,
		gateway:  gateway,
		store:    NewMarkerStore(),
	}
}

// AddMarker geocodes the coordinate, stores the marker and applies the
// per-type side effect: route markers join the stop sequence, visited
// markers are persisted asynchronously (the local add is confirmed before
// the save resolves, and a failed save is logged, not rolled back).
func (p *Planner) AddMarker(
	ctx context.Context,
	lat, lon float64,
	t domain.MarkerType,
) (domain.Marker, error) {
	if !t.Valid() {
		return domain.Marker{}, ErrInvalidMarkerType
	}

	// Resolution happens outside the lock: it is a network call and must
	// not serialize unrelated actions.
	resolved := p.resolver.ResolveAddress(ctx, domain.Coordinates{Lat: lat, Lon: lon})

	candidate := domain.Marker{
		Lat:     lat,
		Lon:     lon,
		Address: resolved.FullAddress,
		Country: resolved.Country,
		Type:    t,
		Visited: t == domain.MarkerVisited,
	}

	p.mu.Lock()
	marker := p.store.Add(candidate)
	if t == domain.MarkerRoute {
		p.routeStops = append(p.routeStops, marker)
		p.invalidateLocked()
	}
	p.mu.Unlock()

	if t == domain.MarkerVisited {
		go p.persistVisited(ctx, marker)
	}

	return marker, nil
}

// persistVisited runs the optimistic save for a visited marker. The
// failure is swallowed after logging: local state already holds the
// marker.
func (p *Planner) persistVisited(ctx context.Context, marker domain.Marker) {
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 15*time.Second)
	defer cancel()

	if err := p.gateway.SaveVisited(saveCtx, marker); err != nil {
		log.Printf("visited marker save failed: id=%s err=%v", marker.ID, err)
	}
}

// RemoveMarker deletes every marker at exactly the given coordinates and
// drops matching route stops from the sequence.
func (p *Planner) RemoveMarker(lat, lon float64) []domain.Marker {
	p.mu.Lock()
	defer p.mu.Unlock()

	removed := p.store.Remove(lat, lon)

	kept := p.routeStops[:0]
	droppedStops := false
	for _, s := range p.routeStops {
		if s.Lat == lat && s.Lon == lon {
			droppedStops = true
			continue
		}
		kept = append(kept, s)
	}
	p.routeStops = kept

	if droppedStops {
		p.invalidateLocked()
	}

	return removed
}

// Markers lists markers of one type in insertion order.
func (p *Planner) Markers(t domain.MarkerType) []domain.Marker {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.store.ListByType(t)
}

// SearchPlace resolves a free-text city query to coordinates.
func (p *Planner) SearchPlace(ctx context.Context, query string) (domain.Coordinates, error) {
	return p.resolver.SearchPlace(ctx, query)
}

// ComputeRoute computes geometry and leg durations across the current
// stop sequence. A result that resolves after a newer sequence change is
// returned to the caller but not written into planner state.
func (p *Planner) ComputeRoute(ctx context.Context) (RouteComputed, error) {
	p.mu.Lock()
	stops := make([]domain.Marker, len(p.routeStops))
	copy(stops, p.routeStops)
	gen := p.routeGen
	p.mu.Unlock()

	computed, err := p.computer.Compute(ctx, stops)
	if err != nil {
		return RouteComputed{}, err
	}

	p.mu.Lock()
	if p.routeGen == gen {
		p.geometry = computed.Geometry
		p.legDurations = computed.LegDurations
		p.stale = false
	}
	p.mu.Unlock()

	return computed, nil
}

// ReorderStops moves the stop at from to position to and immediately
// recomputes the route: a reordered sequence with old geometry must never
// be presented as valid.
func (p *Planner) ReorderStops(ctx context.Context, from, to int) (RouteComputed, error) {
	p.mu.Lock()
	moved, err := Reorder(p.routeStops, from, to)
	if err != nil {
		p.mu.Unlock()
		return RouteComputed{}, err
	}
	p.routeStops = moved
	p.invalidateLocked()
	p.mu.Unlock()

	return p.ComputeRoute(ctx)
}

// ClearRoute resets geometry and leg durations without touching stop
// membership or order.
func (p *Planner) ClearRoute() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.geometry = nil
	p.legDurations = nil
	p.stale = false
	p.routeGen++
}

// Route returns a snapshot of the current route state.
func (p *Planner) Route() RouteState {
	p.mu.Lock()
	defer p.mu.Unlock()

	state := RouteState{
		Stops:        make([]domain.Marker, len(p.routeStops)),
		Geometry:     make(domain.RouteGeometry, len(p.geometry)),
		LegDurations: make([]string, len(p.legDurations)),
		Stale:        p.stale,
	}
	copy(state.Stops, p.routeStops)
	copy(state.Geometry, p.geometry)
	copy(state.LegDurations, p.legDurations)

	return state
}

// SaveTrip snapshots the current stop sequence into a named plan and
// persists it. On success the computed route is cleared from view; the
// stops themselves stay in the sequence.
func (p *Planner) SaveTrip(ctx context.Context, name string) (domain.RoutePlan, error) {
	p.mu.Lock()
	stops := make([]domain.Marker, len(p.routeStops))
	copy(stops, p.routeStops)
	p.mu.Unlock()

	plan, err := p.gateway.SaveRoutePlan(ctx, name, stops)
	if err != nil {
		return domain.RoutePlan{}, err
	}

	p.ClearRoute()
	return plan, nil
}

// VisitedPlaces lists the visited markers persisted on the backend.
func (p *Planner) VisitedPlaces(ctx context.Context) ([]domain.Marker, error) {
	return p.gateway.ListVisited(ctx)
}

// SavedTrips lists the route plans persisted on the backend.
func (p *Planner) SavedTrips(ctx context.Context) ([]domain.RoutePlan, error) {
	return p.gateway.ListRoutePlans(ctx)
}

// RoadRegulations fetches road rules for one country slug.
func (p *Planner) RoadRegulations(ctx context.Context, country string) (domain.StreetRule, error) {
	return p.gateway.RoadRegulations(ctx, country)
}

// invalidateLocked marks computed route data stale and bumps the
// generation so in-flight computations for the old sequence are
// discarded. Callers hold p.mu.
func (p *Planner) invalidateLocked() {
	p.stale = true
	p.routeGen++
}
