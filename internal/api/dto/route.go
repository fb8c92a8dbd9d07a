package dto

type ReorderRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Geometry points are [lat, lon] pairs in provider order.
type RouteResponse struct {
	Stops        []MarkerResponse `json:"stops"`
	Geometry     [][]float64      `json:"geometry"`
	LegDurations []string         `json:"leg_durations"`
	Stale        bool             `json:"stale"`
}
