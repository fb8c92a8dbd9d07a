package handlers

import (
	"net/http"
	"strings"

	"trip-planner-service/internal/planner"
)

// RegulationHandler serves per-country road rules fetched from the
// backend. Country slugs are the normalized form markers carry.
type RegulationHandler struct {
	Planner *planner.Planner
}

func (h *RegulationHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	country := strings.TrimPrefix(r.URL.Path, "/regulations/")
	if country == "" || strings.Contains(country, "/") {
		writeError(w, r, http.StatusBadRequest, "country slug is required")
		return
	}

	rule, err := h.Planner.RoadRegulations(r.Context(), country)
	if err != nil {
		writePlannerError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, rule)
}
