package planner

import (
	"strconv"

	"trip-planner-service/internal/domain"
)

// MarkerStore is the in-memory ordered collection of markers. It assigns
// per-type ids and is the single owner of marker membership.
//
// Id assignment is count-based: the id is the number of same-type markers
// plus one, stringified. Deleting a marker therefore lets a later insert
// reuse an id that was already handed out. The rule is kept for
// compatibility with persisted data; see DESIGN.md before changing it.
//
// MarkerStore is not safe for concurrent use; the Planner serializes
// access.
type MarkerStore struct {
	markers []domain.Marker
}

func NewMarkerStore() *MarkerStore {
	return &MarkerStore{}
}

// Add assigns an id to the candidate and appends it in insertion order.
func (s *MarkerStore) Add(candidate domain.Marker) domain.Marker {
	n := 0
	for _, m := range s.markers {
		if m.Type == candidate.Type {
			n++
		}
	}
	candidate.ID = strconv.Itoa(n + 1)

	s.markers = append(s.markers, candidate)
	return candidate
}

// Remove deletes every marker at exactly the given coordinates and
// returns the removed markers. Coordinates are the deletion identity, not
// ids: two markers at the same point are indistinguishable here and both
// go.
func (s *MarkerStore) Remove(lat, lon float64) []domain.Marker {
	kept := s.markers[:0]
	var removed []domain.Marker

	for _, m := range s.markers {
		if m.Lat == lat && m.Lon == lon {
			removed = append(removed, m)
			continue
		}
		kept = append(kept, m)
	}

	s.markers = kept
	return removed
}

// ListByType returns markers of one type in insertion order.
func (s *MarkerStore) ListByType(t domain.MarkerType) []domain.Marker {
	out := make([]domain.Marker, 0, len(s.markers))
	for _, m := range s.markers {
		if m.Type == t {
			out = append(out, m)
		}
	}
	return out
}
