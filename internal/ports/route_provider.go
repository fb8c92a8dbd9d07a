package ports

import (
	"context"
	"errors"

	"trip-planner-service/internal/domain"
)

// ErrNoRoute is returned when the provider responds with an empty route
// list: there is no drivable path across the given stops.
var ErrNoRoute = errors.New("route provider: no route found")

// RouteResult is the decoded outcome of one routing call: the full route
// geometry and the raw per-leg travel durations in provider point order.
type RouteResult struct {
	Geometry            domain.RouteGeometry `json:"geometry"`
	LegDurationsSeconds []float64            `json:"leg_durations_seconds"`
}

// Contract for computing a driving route across ordered stops.
type RouteProvider interface {
	// Request a route visiting the coordinates exactly in the given order.
	GetRoute(ctx context.Context, stops []domain.Coordinates) (RouteResult, error)
}
