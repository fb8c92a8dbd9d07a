package planner

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

func routeStops(n int) []domain.Marker {
	stops := make([]domain.Marker, 0, n)
	for i := 0; i < n; i++ {
		stops = append(stops, domain.Marker{
			Lat:  float64(i),
			Lon:  float64(i),
			Type: domain.MarkerRoute,
		})
	}
	return stops
}

func TestComputeRejectsFewerThanTwoStopsWithoutProviderCall(t *testing.T) {
	provider := &stubRouteProvider{}
	computer := NewRouteComputer(provider, nil, nil)

	for _, n := range []int{0, 1} {
		_, err := computer.Compute(context.Background(), routeStops(n))
		if !errors.Is(err, ErrInsufficientStops) {
			t.Fatalf("%d stops: err = %v, want ErrInsufficientStops", n, err)
		}
	}

	if provider.callCount() != 0 {
		t.Fatalf("provider called %d times, want 0", provider.callCount())
	}
}

func TestComputeFormatsLegDurations(t *testing.T) {
	provider := &stubRouteProvider{
		result: ports.RouteResult{
			Geometry:            domain.RouteGeometry{{Lat: 1, Lon: 1}, {Lat: 2, Lon: 2}},
			LegDurationsSeconds: []float64{5400, 90},
		},
	}
	computer := NewRouteComputer(provider, nil, nil)

	got, err := computer.Compute(context.Background(), routeStops(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"1h 30m", "0h 2m"}
	if !reflect.DeepEqual(got.LegDurations, want) {
		t.Fatalf("leg durations = %v, want %v", got.LegDurations, want)
	}
	if len(got.Geometry) != 2 {
		t.Fatalf("geometry length = %d, want 2", len(got.Geometry))
	}
}

func TestComputeFillsMissingLegsWithNA(t *testing.T) {
	provider := &stubRouteProvider{
		result: ports.RouteResult{
			LegDurationsSeconds: []float64{60},
		},
	}
	computer := NewRouteComputer(provider, nil, nil)

	got, err := computer.Compute(context.Background(), routeStops(4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"0h 1m", "N/A", "N/A"}
	if !reflect.DeepEqual(got.LegDurations, want) {
		t.Fatalf("leg durations = %v, want %v", got.LegDurations, want)
	}
}

func TestComputeDropsSurplusLegs(t *testing.T) {
	provider := &stubRouteProvider{
		result: ports.RouteResult{
			LegDurationsSeconds: []float64{60, 120, 180},
		},
	}
	computer := NewRouteComputer(provider, nil, nil)

	got, err := computer.Compute(context.Background(), routeStops(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got.LegDurations) != 1 {
		t.Fatalf("leg durations = %v, want exactly one entry", got.LegDurations)
	}
}

func TestComputePropagatesNoRoute(t *testing.T) {
	provider := &stubRouteProvider{err: ports.ErrNoRoute}
	computer := NewRouteComputer(provider, nil, nil)

	_, err := computer.Compute(context.Background(), routeStops(2))
	if !errors.Is(err, ports.ErrNoRoute) {
		t.Fatalf("err = %v, want ErrNoRoute", err)
	}
}

func TestComputeUsesCacheOnRepeat(t *testing.T) {
	provider := &stubRouteProvider{
		result: ports.RouteResult{
			LegDurationsSeconds: []float64{600},
		},
	}
	computer := NewRouteComputer(provider, newStubRouteCache(), nil)

	stops := routeStops(2)
	if _, err := computer.Compute(context.Background(), stops); err != nil {
		t.Fatalf("first compute: %v", err)
	}
	got, err := computer.Compute(context.Background(), stops)
	if err != nil {
		t.Fatalf("second compute: %v", err)
	}

	if provider.callCount() != 1 {
		t.Fatalf("provider called %d times, want 1 (second compute served from cache)", provider.callCount())
	}
	if got.LegDurations[0] != "0h 10m" {
		t.Fatalf("cached leg duration = %q, want %q", got.LegDurations[0], "0h 10m")
	}
}

func TestComputeCacheKeyDependsOnStopOrder(t *testing.T) {
	provider := &stubRouteProvider{
		result: ports.RouteResult{LegDurationsSeconds: []float64{60}},
	}
	computer := NewRouteComputer(provider, newStubRouteCache(), nil)

	stops := routeStops(2)
	reversed := []domain.Marker{stops[1], stops[0]}

	if _, err := computer.Compute(context.Background(), stops); err != nil {
		t.Fatalf("forward compute: %v", err)
	}
	if _, err := computer.Compute(context.Background(), reversed); err != nil {
		t.Fatalf("reversed compute: %v", err)
	}

	if provider.callCount() != 2 {
		t.Fatalf("provider called %d times, want 2 (reversed stops are a different route)", provider.callCount())
	}
}
