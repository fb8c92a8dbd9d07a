package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/metrics"
	"trip-planner-service/internal/platform/httpkit"
	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/ports"
)

// NominatimClient implements the Geocoder port against OpenStreetMap's
// Nominatim API (reverse geocoding and place search).
//
// Nominatim's fair-use policy allows about 1 request/second and requires
// an identifying User-Agent.
type NominatimClient struct {
	client    *httpkit.Client
	baseURL   string
	userAgent string
	metrics   *metrics.Metrics
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		Country     string `json:"country"`
		Road        string `json:"road"`
		HouseNumber string `json:"house_number"`
		City        string `json:"city"`
		Town        string `json:"town"`
		Village     string `json:"village"`
	} `json:"address"`
}

// Search results carry coordinates as strings.
type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func NewNominatimClient(baseURL string, m *metrics.Metrics) *NominatimClient {
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}
	return &NominatimClient{
		client:    httpkit.NewClient(10 * time.Second),
		baseURL:   baseURL,
		userAgent: "trip-planner-service/1.0",
		metrics:   m,
	}
}

// NewNominatimClientWithDoer builds a client around a custom Doer for tests.
func NewNominatimClientWithDoer(baseURL string, doer httpkit.Doer) *NominatimClient {
	c := NewNominatimClient(baseURL, nil)
	c.client = &httpkit.Client{Session: doer}
	return c
}

// ReverseGeocode resolves a coordinate to its address components.
func (n *NominatimClient) ReverseGeocode(
	ctx context.Context,
	coord domain.Coordinates,
) (_ ports.ResolvedAddress, err error) {
	defer obs.Time(ctx, "nominatim.ReverseGeocode")(&err)

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(coord.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(coord.Lon, 'f', -1, 64))
	params.Set("format", "json")
	params.Set("accept-language", "en")

	endpoint := n.baseURL + "/reverse?" + params.Encode()

	start := time.Now()
	resp, err := n.client.DoWithRetry(ctx, func() (*http.Request, error) {
		return n.newRequest(ctx, endpoint)
	})
	n.metrics.ObserveProvider("nominatim", time.Since(start).Seconds())
	if err != nil {
		n.metrics.ProviderError("nominatim")
		return ports.ResolvedAddress{}, fmt.Errorf("reverse geocode request: %w", err)
	}
	defer resp.Body.Close()

	var decoded reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		n.metrics.ProviderError("nominatim")
		return ports.ResolvedAddress{}, fmt.Errorf("decode reverse geocode response: %w", err)
	}

	street := strings.TrimSpace(decoded.Address.Road + " " + decoded.Address.HouseNumber)

	// Nominatim reports exactly one of city/town/village per place.
	city := decoded.Address.City
	if city == "" {
		city = decoded.Address.Town
	}
	if city == "" {
		city = decoded.Address.Village
	}

	return ports.ResolvedAddress{
		Street:      street,
		City:        city,
		Country:     decoded.Address.Country,
		FullAddress: decoded.DisplayName,
	}, nil
}

// Search resolves a free-text query to the first matching coordinate.
func (n *NominatimClient) Search(
	ctx context.Context,
	query string,
) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "nominatim.Search")(&err)

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("accept-language", "en")
	params.Set("limit", "1")

	endpoint := n.baseURL + "/search?" + params.Encode()

	start := time.Now()
	resp, err := n.client.DoWithRetry(ctx, func() (*http.Request, error) {
		return n.newRequest(ctx, endpoint)
	})
	n.metrics.ObserveProvider("nominatim", time.Since(start).Seconds())
	if err != nil {
		n.metrics.ProviderError("nominatim")
		return domain.Coordinates{}, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		n.metrics.ProviderError("nominatim")
		return domain.Coordinates{}, fmt.Errorf("decode search response: %w", err)
	}

	if len(results) == 0 {
		return domain.Coordinates{}, ports.ErrNoResults
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse search latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse search longitude %q: %w", results[0].Lon, err)
	}

	return domain.Coordinates{Lat: lat, Lon: lon}, nil
}

func (n *NominatimClient) newRequest(ctx context.Context, endpoint string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", n.userAgent)
	req.Header.Set("Accept", "application/json")

	return req, nil
}
