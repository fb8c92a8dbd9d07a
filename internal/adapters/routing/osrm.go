package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/metrics"
	"trip-planner-service/internal/platform/httpkit"
	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/ports"
)

// OSRMRouteProvider implements the RouteProvider port against an OSRM
// routing server. Stops are sent exactly in the given order; OSRM is asked
// for full geometry and per-leg summaries.
type OSRMRouteProvider struct {
	client  *httpkit.Client
	baseURL string
	profile string
	metrics *metrics.Metrics
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Geometry string `json:"geometry"`
		Legs     []struct {
			Duration float64 `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
}

func NewOSRMRouteProvider(baseURL string, m *metrics.Metrics) *OSRMRouteProvider {
	if baseURL == "" {
		baseURL = "https://router.project-osrm.org"
	}
	return &OSRMRouteProvider{
		client:  httpkit.NewClient(15 * time.Second),
		baseURL: baseURL,
		profile: "driving",
		metrics: m,
	}
}

// NewOSRMRouteProviderWithDoer builds a provider around a custom Doer for tests.
func NewOSRMRouteProviderWithDoer(baseURL string, doer httpkit.Doer) *OSRMRouteProvider {
	p := NewOSRMRouteProvider(baseURL, nil)
	p.client = &httpkit.Client{Session: doer}
	return p
}

// GetRoute requests a driving route across the ordered stops.
// Returns ports.ErrNoRoute when OSRM finds no path.
func (o *OSRMRouteProvider) GetRoute(
	ctx context.Context,
	stops []domain.Coordinates,
) (_ ports.RouteResult, err error) {
	defer obs.Time(ctx, "osrm.GetRoute")(&err)

	if len(stops) < 2 {
		return ports.RouteResult{}, errors.New("get route: need at least two stops")
	}

	coords := make([]string, 0, len(stops))
	for _, s := range stops {
		pair := s.CoordsToList()
		coords = append(coords,
			strconv.FormatFloat(pair[0], 'f', -1, 64)+","+strconv.FormatFloat(pair[1], 'f', -1, 64))
	}

	endpoint := fmt.Sprintf(
		"%s/route/v1/%s/%s?overview=full&steps=false",
		o.baseURL, o.profile, strings.Join(coords, ";"),
	)

	start := time.Now()
	resp, err := o.client.DoWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	o.metrics.ObserveProvider("osrm", time.Since(start).Seconds())
	if err != nil {
		o.metrics.ProviderError("osrm")
		return ports.RouteResult{}, fmt.Errorf("route request: %w", err)
	}
	defer resp.Body.Close()

	var decoded osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		o.metrics.ProviderError("osrm")
		return ports.RouteResult{}, fmt.Errorf("decode route response: %w", err)
	}

	if len(decoded.Routes) == 0 {
		return ports.RouteResult{}, ports.ErrNoRoute
	}

	route := decoded.Routes[0]

	geometry, err := decodePolyline(route.Geometry)
	if err != nil {
		o.metrics.ProviderError("osrm")
		return ports.RouteResult{}, fmt.Errorf("decode route response: %w", err)
	}

	durations := make([]float64, 0, len(route.Legs))
	for _, leg := range route.Legs {
		durations = append(durations, leg.Duration)
	}

	return ports.RouteResult{
		Geometry:            geometry,
		LegDurationsSeconds: durations,
	}, nil
}
