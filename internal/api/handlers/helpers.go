package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/planner"
	"trip-planner-service/internal/ports"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writePlannerError maps the engine's reported conditions onto HTTP
// statuses with the messages the user sees. Anything unmapped is an
// internal error and is logged, not leaked.
func writePlannerError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, planner.ErrInsufficientStops):
		writeError(w, r, http.StatusBadRequest, "need at least two stops to determine a route")
	case errors.Is(err, ports.ErrNoRoute):
		writeError(w, r, http.StatusNotFound, "no route found between the selected stops")
	case errors.Is(err, planner.ErrPlaceNotFound):
		writeError(w, r, http.StatusNotFound, "City not found!")
	case errors.Is(err, planner.ErrEmptyTripName):
		writeError(w, r, http.StatusBadRequest, "trip name is required")
	case errors.Is(err, planner.ErrInvalidMarkerType):
		writeError(w, r, http.StatusBadRequest, "type must be either \"visited\" or \"route\"")
	case errors.Is(err, planner.ErrIndexOutOfRange):
		writeError(w, r, http.StatusBadRequest, "stop index out of range")
	default:
		log.Printf("request failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	return true
}

func markerResponse(m domain.Marker) dto.MarkerResponse {
	return dto.MarkerResponse{
		ID:      m.ID,
		Lat:     m.Lat,
		Lon:     m.Lon,
		Address: m.Address,
		Country: m.Country,
		Type:    string(m.Type),
		Visited: m.Visited,
	}
}

func markerResponses(markers []domain.Marker) []dto.MarkerResponse {
	out := make([]dto.MarkerResponse, 0, len(markers))
	for _, m := range markers {
		out = append(out, markerResponse(m))
	}
	return out
}

func geometryResponse(geometry domain.RouteGeometry) [][]float64 {
	out := make([][]float64, 0, len(geometry))
	for _, p := range geometry {
		out = append(out, []float64{p.Lat, p.Lon})
	}
	return out
}

func tripResponse(plan domain.RoutePlan) dto.TripResponse {
	stops := make([]dto.TripStopResponse, 0, len(plan.Stops))
	for _, s := range plan.Stops {
		stops = append(stops, dto.TripStopResponse{
			ID:      s.ID,
			Lat:     s.Lat,
			Lon:     s.Lon,
			Address: s.Address,
			Country: s.Country,
			Type:    string(s.Type),
		})
	}

	return dto.TripResponse{
		Name:        plan.Name,
		Stops:       stops,
		DateCreated: plan.DateCreated,
		CreatorID:   plan.CreatorID,
	}
}
