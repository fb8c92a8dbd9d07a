package planner

import "errors"

var (
	// ErrPlaceNotFound reports an empty search result set ("City not found!").
	ErrPlaceNotFound = errors.New("planner: city not found")
	// ErrInsufficientStops reports a route request with fewer than two stops.
	ErrInsufficientStops = errors.New("planner: need at least two stops")
	// ErrEmptyTripName reports a save attempt without a trip name.
	// Raised before any network call.
	ErrEmptyTripName = errors.New("planner: trip name is required")
	// ErrInvalidMarkerType reports a marker type outside {visited, route}.
	ErrInvalidMarkerType = errors.New("planner: invalid marker type")
	// ErrIndexOutOfRange reports a reorder index outside the current stop
	// sequence. Client indices go stale legitimately (a stop deleted
	// between render and drag), so this is the caller's condition, not an
	// internal failure.
	ErrIndexOutOfRange = errors.New("planner: stop index out of range")
)
