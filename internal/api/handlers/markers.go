package handlers

import (
	"net/http"

	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/planner"
)

// MarkerHandler exposes marker creation, listing and deletion.
type MarkerHandler struct {
	Planner *planner.Planner
}

func (h *MarkerHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.add(w, r)
	case http.MethodGet:
		h.list(w, r)
	case http.MethodDelete:
		h.remove(w, r)
	default:
		w.Header().Set("Allow", "GET, POST, DELETE")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *MarkerHandler) add(w http.ResponseWriter, r *http.Request) {
	var req dto.AddMarkerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	marker, err := h.Planner.AddMarker(r.Context(), req.Lat, req.Lon, domain.MarkerType(req.Type))
	if err != nil {
		writePlannerError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, markerResponse(marker))
}

func (h *MarkerHandler) list(w http.ResponseWriter, r *http.Request) {
	t := domain.MarkerType(r.URL.Query().Get("type"))
	if !t.Valid() {
		writeError(w, r, http.StatusBadRequest, "type must be either \"visited\" or \"route\"")
		return
	}

	markers := h.Planner.Markers(t)
	writeJSON(w, r, http.StatusOK, dto.ListMarkersResponse{Markers: markerResponses(markers)})
}

func (h *MarkerHandler) remove(w http.ResponseWriter, r *http.Request) {
	var req dto.DeleteMarkerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	removed := h.Planner.RemoveMarker(req.Lat, req.Lon)
	writeJSON(w, r, http.StatusOK, dto.DeleteMarkerResponse{Removed: markerResponses(removed)})
}

// Search resolves a free-text city query to coordinates.
type SearchHandler struct {
	Planner *planner.Planner
}

func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, r, http.StatusBadRequest, "q is required")
		return
	}

	coord, err := h.Planner.SearchPlace(r.Context(), query)
	if err != nil {
		writePlannerError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.SearchResponse{Lat: coord.Lat, Lon: coord.Lon})
}
