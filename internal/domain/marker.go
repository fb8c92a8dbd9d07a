package domain

// MarkerType classifies a marker as a visited place or a route stop.
// The two types keep independent id sequences.
type MarkerType string

const (
	MarkerVisited MarkerType = "visited"
	MarkerRoute   MarkerType = "route"
)

func (t MarkerType) Valid() bool {
	return t == MarkerVisited || t == MarkerRoute
}

// Marker is a geocoded point the user has placed on the map.
// Markers are immutable after creation; the only lifecycle transition is
// deletion (matched by coordinates, not id).
type Marker struct {
	ID      string     `json:"id"`
	Lat     float64    `json:"lat"`
	Lon     float64    `json:"lon"`
	Address string     `json:"address"`
	Country string     `json:"country"`
	Type    MarkerType `json:"type"`
	Visited bool       `json:"visited"`
}

func (m Marker) Coordinates() Coordinates {
	return Coordinates{Lat: m.Lat, Lon: m.Lon}
}
