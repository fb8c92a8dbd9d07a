package dto

import "time"

type SaveTripRequest struct {
	Name string `json:"name"`
}

type TripStopResponse struct {
	ID      string  `json:"id"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Address string  `json:"address"`
	Country string  `json:"country"`
	Type    string  `json:"type"`
}

type TripResponse struct {
	Name        string             `json:"name"`
	Stops       []TripStopResponse `json:"stops"`
	DateCreated time.Time          `json:"date_created"`
	CreatorID   string             `json:"creator_id"`
}

type ListTripsResponse struct {
	Trips []TripResponse `json:"trips"`
}
