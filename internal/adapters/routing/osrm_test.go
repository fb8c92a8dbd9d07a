package routing

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

type mockDoer struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockDoer) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func TestDecodePolyline(t *testing.T) {
	// Reference polyline from the encoding spec.
	points, err := decodePolyline("_p~iF~ps|U_ulLnnqC_mqNvxq`@")

	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.InDelta(t, 38.5, points[0].Lat, 1e-9)
	assert.InDelta(t, -120.2, points[0].Lon, 1e-9)
	assert.InDelta(t, 40.7, points[1].Lat, 1e-9)
	assert.InDelta(t, -120.95, points[1].Lon, 1e-9)
	assert.InDelta(t, 43.252, points[2].Lat, 1e-9)
	assert.InDelta(t, -126.453, points[2].Lon, 1e-9)
}

func TestDecodePolylineEmpty(t *testing.T) {
	points, err := decodePolyline("")
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestDecodePolylineTruncated(t *testing.T) {
	// Cut mid-varint: the latitude delta of the second point never
	// terminates. Corrupted provider data must error, not panic.
	for _, encoded := range []string{"_p~iF~ps|U_", "_p~iF", "~"} {
		_, err := decodePolyline(encoded)
		require.Error(t, err, "encoded %q", encoded)
	}
}

func TestGetRoute(t *testing.T) {
	ctx := context.Background()

	stops := []domain.Coordinates{
		{Lat: 38.5, Lon: -120.2},
		{Lat: 40.7, Lon: -120.95},
	}

	t.Run("successful route", func(t *testing.T) {
		doer := &mockDoer{
			doFunc: func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, http.MethodGet, req.Method)
				// Coordinates go out as lon,lat pairs joined with semicolons.
				assert.Contains(t, req.URL.Path, "/route/v1/driving/-120.2,38.5;-120.95,40.7")
				assert.Equal(t, "full", req.URL.Query().Get("overview"))
				assert.Equal(t, "false", req.URL.Query().Get("steps"))

				body := `{"code":"Ok","routes":[{"geometry":"_p~iF~ps|U_ulLnnqC_mqNvxq` + "`" + `@","legs":[{"duration":5400.2}]}]}`
				return jsonResponse(http.StatusOK, body), nil
			},
		}

		provider := NewOSRMRouteProviderWithDoer("http://osrm.test", doer)
		result, err := provider.GetRoute(ctx, stops)

		require.NoError(t, err)
		assert.Len(t, result.Geometry, 3)
		require.Len(t, result.LegDurationsSeconds, 1)
		assert.InDelta(t, 5400.2, result.LegDurationsSeconds[0], 1e-9)
	})

	t.Run("no route found", func(t *testing.T) {
		doer := &mockDoer{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `{"code":"NoRoute","routes":[]}`), nil
			},
		}

		provider := NewOSRMRouteProviderWithDoer("http://osrm.test", doer)
		_, err := provider.GetRoute(ctx, stops)

		require.ErrorIs(t, err, ports.ErrNoRoute)
	})

	t.Run("fewer than two stops", func(t *testing.T) {
		calls := 0
		doer := &mockDoer{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				calls++
				return jsonResponse(http.StatusOK, `{}`), nil
			},
		}

		provider := NewOSRMRouteProviderWithDoer("http://osrm.test", doer)
		_, err := provider.GetRoute(ctx, stops[:1])

		require.Error(t, err)
		assert.Equal(t, 0, calls, "no request should go out for an unroutable stop count")
	})

	t.Run("client error status", func(t *testing.T) {
		doer := &mockDoer{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusBadRequest, `{"code":"InvalidQuery"}`), nil
			},
		}

		provider := NewOSRMRouteProviderWithDoer("http://osrm.test", doer)
		_, err := provider.GetRoute(ctx, stops)

		require.Error(t, err)
		assert.NotErrorIs(t, err, ports.ErrNoRoute)
	})

	t.Run("corrupted geometry string", func(t *testing.T) {
		doer := &mockDoer{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				body := `{"code":"Ok","routes":[{"geometry":"_p~iF~ps|U_","legs":[{"duration":60}]}]}`
				return jsonResponse(http.StatusOK, body), nil
			},
		}

		provider := NewOSRMRouteProviderWithDoer("http://osrm.test", doer)
		_, err := provider.GetRoute(ctx, stops)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode route response")
	})

	t.Run("malformed response body", func(t *testing.T) {
		doer := &mockDoer{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `not json`), nil
			},
		}

		provider := NewOSRMRouteProviderWithDoer("http://osrm.test", doer)
		_, err := provider.GetRoute(ctx, stops)

		require.Error(t, err)
	})

	t.Run("context cancellation", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		doer := &mockDoer{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return nil, errors.New("should not be called")
			},
		}

		provider := NewOSRMRouteProviderWithDoer("http://osrm.test", doer)
		_, err := provider.GetRoute(cancelled, stops)

		require.Error(t, err)
	})
}
