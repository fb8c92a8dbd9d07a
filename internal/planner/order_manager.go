package planner

import (
	"fmt"

	"trip-planner-service/internal/domain"
)

// Reorder returns a copy of stops with the element at from moved to to;
// all other elements keep their relative order. The input slice is not
// modified.
//
// Reordering invalidates any previously computed geometry: callers must
// follow up with a recomputation immediately (Planner.ReorderStops does).
func Reorder(stops []domain.Marker, from, to int) ([]domain.Marker, error) {
	if from < 0 || from >= len(stops) {
		return nil, fmt.Errorf("reorder: from index %d outside [0,%d): %w", from, len(stops), ErrIndexOutOfRange)
	}
	if to < 0 || to >= len(stops) {
		return nil, fmt.Errorf("reorder: to index %d outside [0,%d): %w", to, len(stops), ErrIndexOutOfRange)
	}

	out := make([]domain.Marker, 0, len(stops))
	out = append(out, stops[:from]...)
	out = append(out, stops[from+1:]...)

	moved := stops[from]
	out = append(out[:to], append([]domain.Marker{moved}, out[to:]...)...)

	return out, nil
}
