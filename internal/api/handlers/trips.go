package handlers

import (
	"net/http"

	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/planner"
)

// TripHandler persists and lists named route plans via the backend.
type TripHandler struct {
	Planner *planner.Planner
}

func (h *TripHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.save(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *TripHandler) save(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveTripRequest
	if !decodeBody(w, r, &req) {
		return
	}

	plan, err := h.Planner.SaveTrip(r.Context(), req.Name)
	if err != nil {
		writePlannerError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, tripResponse(plan))
}

func (h *TripHandler) list(w http.ResponseWriter, r *http.Request) {
	plans, err := h.Planner.SavedTrips(r.Context())
	if err != nil {
		writePlannerError(w, r, err)
		return
	}

	res := dto.ListTripsResponse{Trips: make([]dto.TripResponse, 0, len(plans))}
	for _, p := range plans {
		res.Trips = append(res.Trips, tripResponse(p))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Visited lists the visited markers persisted on the backend.
func (h *TripHandler) Visited(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	markers, err := h.Planner.VisitedPlaces(r.Context())
	if err != nil {
		writePlannerError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ListMarkersResponse{Markers: markerResponses(markers)})
}
