package domain

import "time"

// RouteGeometry is the decoded provider polyline: an ordered sequence of
// points in provider order. It is derived data, recomputed whenever the
// stop sequence changes, and never persisted on its own.
type RouteGeometry []Coordinates

// PlanStop is the persistence shape of a route stop. Transient UI-only
// fields (the visited flag) are stripped before a plan leaves the process.
type PlanStop struct {
	ID      string     `json:"id"`
	Lat     float64    `json:"lat"`
	Lon     float64    `json:"lon"`
	Address string     `json:"address"`
	Country string     `json:"country"`
	Type    MarkerType `json:"type"`
}

// StripForPlan reduces a marker to the fields a persisted plan keeps.
func StripForPlan(m Marker) PlanStop {
	return PlanStop{
		ID:      m.ID,
		Lat:     m.Lat,
		Lon:     m.Lon,
		Address: m.Address,
		Country: m.Country,
		Type:    m.Type,
	}
}

// RoutePlan is a named, timestamped snapshot of an ordered route-stop
// sequence, created only on explicit save.
type RoutePlan struct {
	Name        string     `json:"name"`
	Stops       []PlanStop `json:"route"`
	DateCreated time.Time  `json:"date_created"`
	CreatorID   string     `json:"creator_id"`
}
