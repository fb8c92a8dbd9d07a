package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/metrics"
	"trip-planner-service/internal/platform/httpkit"
	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/ports"
)

// Client implements the TripBackend port over the backend's REST surface.
//
// Every call carries a bearer token when the TokenSource has one; an absent
// token is not a client-side gate. The backend alone decides whether an
// unauthenticated call is rejected.
type Client struct {
	client  *httpkit.Client
	baseURL string
	tokens  ports.TokenSource
	metrics *metrics.Metrics
}

func NewClient(baseURL string, tokens ports.TokenSource, m *metrics.Metrics) *Client {
	return &Client{
		client:  httpkit.NewClient(10 * time.Second),
		baseURL: baseURL,
		tokens:  tokens,
		metrics: m,
	}
}

// NewClientWithDoer builds a client around a custom Doer for tests.
func NewClientWithDoer(baseURL string, tokens ports.TokenSource, doer httpkit.Doer) *Client {
	c := NewClient(baseURL, tokens, nil)
	c.client = &httpkit.Client{Session: doer}
	return c
}

func (c *Client) SaveVisited(ctx context.Context, marker domain.Marker) (err error) {
	defer obs.Time(ctx, "backend.SaveVisited")(&err)

	return c.post(ctx, "/route_plans/save_destination", marker, nil)
}

func (c *Client) ListVisited(ctx context.Context) (_ []domain.Marker, err error) {
	defer obs.Time(ctx, "backend.ListVisited")(&err)

	var markers []domain.Marker
	if err := c.get(ctx, "/route_plans/get_destinations", &markers); err != nil {
		return nil, err
	}
	return markers, nil
}

func (c *Client) SaveRoutePlan(ctx context.Context, plan domain.RoutePlan) (_ domain.RoutePlan, err error) {
	defer obs.Time(ctx, "backend.SaveRoutePlan")(&err)

	var saved domain.RoutePlan
	if err := c.post(ctx, "/route_plans/create_route_plan", plan, &saved); err != nil {
		return domain.RoutePlan{}, err
	}
	return saved, nil
}

func (c *Client) ListRoutePlans(ctx context.Context) (_ []domain.RoutePlan, err error) {
	defer obs.Time(ctx, "backend.ListRoutePlans")(&err)

	var plans []domain.RoutePlan
	if err := c.get(ctx, "/route_plans/get_my_route_plans", &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (c *Client) RoadRegulations(ctx context.Context, country string) (_ domain.StreetRule, err error) {
	defer obs.Time(ctx, "backend.RoadRegulations")(&err)

	var rule domain.StreetRule
	path := "/regulations/road_regulations/" + url.PathEscape(country)
	if err := c.get(ctx, path, &rule); err != nil {
		return domain.StreetRule{}, err
	}
	return rule, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", path, err)
	}

	resp, err := c.do(ctx, http.MethodPost, path, payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// do executes a request with retry; the body is rebuilt per attempt
// because request bodies are single-use.
func (c *Client) do(ctx context.Context, method, path string, payload []byte) (*http.Response, error) {
	start := time.Now()
	resp, err := c.client.DoWithRetry(ctx, func() (*http.Request, error) {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}
		return c.newRequest(ctx, method, c.baseURL+path, body)
	})
	c.metrics.ObserveProvider("backend", time.Since(start).Seconds())
	if err != nil {
		c.metrics.ProviderError("backend")
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return req, nil
}
