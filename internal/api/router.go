package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"trip-planner-service/internal/api/handlers"
	"trip-planner-service/internal/planner"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root; handlers only see the
// planner, never concrete adapters.
func NewRouter(p *planner.Planner, reg *prometheus.Registry) http.Handler {
	mux := http.NewServeMux()

	markerHandler := &handlers.MarkerHandler{Planner: p}
	searchHandler := &handlers.SearchHandler{Planner: p}
	routeHandler := &handlers.RouteHandler{Planner: p}
	tripHandler := &handlers.TripHandler{Planner: p}
	regulationHandler := &handlers.RegulationHandler{Planner: p}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/markers", markerHandler.Handle)
	mux.HandleFunc("/search", searchHandler.Search)
	mux.HandleFunc("/route", routeHandler.Get)
	mux.HandleFunc("/route/compute", routeHandler.Compute)
	mux.HandleFunc("/route/reorder", routeHandler.Reorder)
	mux.HandleFunc("/route/clear", routeHandler.Clear)
	mux.HandleFunc("/trips", tripHandler.Handle)
	mux.HandleFunc("/visited", tripHandler.Visited)
	mux.HandleFunc("/regulations/", regulationHandler.Get)

	if reg != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	return loggingMiddleware(mux)
}
