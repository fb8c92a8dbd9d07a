package dto

type AddMarkerRequest struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Type string  `json:"type"`
}

type DeleteMarkerRequest struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type MarkerResponse struct {
	ID      string  `json:"id"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Address string  `json:"address"`
	Country string  `json:"country"`
	Type    string  `json:"type"`
	Visited bool    `json:"visited"`
}

type ListMarkersResponse struct {
	Markers []MarkerResponse `json:"markers"`
}

type DeleteMarkerResponse struct {
	Removed []MarkerResponse `json:"removed"`
}

type SearchResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
