package handlers

import (
	"net/http"

	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/planner"
)

// RouteHandler exposes route computation, reordering and clearing over
// the current stop sequence.
type RouteHandler struct {
	Planner *planner.Planner
}

// Get returns the current route state without recomputing.
func (h *RouteHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, h.routeResponse())
}

// Compute determines a driving route across the current stops.
func (h *RouteHandler) Compute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if _, err := h.Planner.ComputeRoute(r.Context()); err != nil {
		writePlannerError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, h.routeResponse())
}

// Reorder moves one stop and recomputes the route with the new order.
func (h *RouteHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ReorderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if _, err := h.Planner.ReorderStops(r.Context(), req.From, req.To); err != nil {
		writePlannerError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, h.routeResponse())
}

// Clear drops computed geometry and timings; stops stay.
func (h *RouteHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	h.Planner.ClearRoute()
	writeJSON(w, r, http.StatusOK, h.routeResponse())
}

func (h *RouteHandler) routeResponse() dto.RouteResponse {
	state := h.Planner.Route()
	return dto.RouteResponse{
		Stops:        markerResponses(state.Stops),
		Geometry:     geometryResponse(state.Geometry),
		LegDurations: state.LegDurations,
		Stale:        state.Stale,
	}
}
