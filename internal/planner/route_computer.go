package planner

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/metrics"
	"trip-planner-service/internal/ports"
)

// legUnavailable fills leg slots the provider did not report. The UI must
// always render one duration per adjacent stop pair.
const legUnavailable = "N/A"

// RouteComputed is a finished computation: decoded geometry plus one
// formatted duration per adjacent stop pair.
type RouteComputed struct {
	Geometry     domain.RouteGeometry
	LegDurations []string
}

// RouteComputer requests driving routes across ordered stops, decodes the
// geometry and formats per-leg durations. Computed results are cached
// under the rounded coordinate sequence when a cache is configured.
type RouteComputer struct {
	provider ports.RouteProvider
	cache    ports.RouteCache
	metrics  *metrics.Metrics
}

func NewRouteComputer(provider ports.RouteProvider, cache ports.RouteCache, m *metrics.Metrics) *RouteComputer {
	return &RouteComputer{provider: provider, cache: cache, metrics: m}
}

// Compute requests a route across the stops in the given order.
// Fewer than two stops is ErrInsufficientStops and no provider call is
// made. An empty provider route list surfaces as ports.ErrNoRoute.
func (c *RouteComputer) Compute(ctx context.Context, stops []domain.Marker) (RouteComputed, error) {
	if len(stops) < 2 {
		return RouteComputed{}, ErrInsufficientStops
	}

	coords := make([]domain.Coordinates, 0, len(stops))
	for _, s := range stops {
		coords = append(coords, s.Coordinates())
	}

	key := routeKey(coords)

	if c.cache != nil {
		result, ok, err := c.cache.Get(ctx, key)
		if err != nil {
			log.Printf("route cache read failed: key=%s err=%v", key, err)
		}
		c.metrics.CacheLookup("route", ok)
		if ok {
			return c.finish(stops, result), nil
		}
	}

	result, err := c.provider.GetRoute(ctx, coords)
	if err != nil {
		return RouteComputed{}, fmt.Errorf("compute route: %w", err)
	}

	if c.cache != nil {
		if err := c.cache.Put(ctx, key, result); err != nil {
			log.Printf("route cache write failed: key=%s err=%v", key, err)
		}
	}

	c.metrics.RouteComputed()
	return c.finish(stops, result), nil
}

func (c *RouteComputer) finish(stops []domain.Marker, result ports.RouteResult) RouteComputed {
	return RouteComputed{
		Geometry:     result.Geometry,
		LegDurations: formatLegDurations(result.LegDurationsSeconds, len(stops)-1),
	}
}

// formatLegDurations converts provider leg seconds into "{h}h {m}m"
// strings, reconciled to exactly want entries. Legs the provider did not
// return are filled with "N/A"; surplus legs are dropped.
func formatLegDurations(seconds []float64, want int) []string {
	out := make([]string, 0, want)
	for i := 0; i < want; i++ {
		if i >= len(seconds) {
			out = append(out, legUnavailable)
			continue
		}

		totalMinutes := int(math.Round(seconds[i] / 60))
		out = append(out, fmt.Sprintf("%dh %dm", totalMinutes/60, totalMinutes%60))
	}
	return out
}

// routeKey derives a cache key from the rounded coordinate sequence.
// Order matters: reversing the stops is a different route.
func routeKey(coords []domain.Coordinates) string {
	keys := make([]string, 0, len(coords))
	for _, c := range coords {
		keys = append(keys, c.Key())
	}
	return strings.Join(keys, ";")
}
