package geocode

import (
	"context"
	"log"

	"golang.org/x/sync/singleflight"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/metrics"
	"trip-planner-service/internal/ports"
)

// CachingGeocoder wraps a Geocoder with a persistent reverse-geocode cache
// and in-flight deduplication. Rapid double-clicks on the same point share
// one provider call instead of racing two.
//
// Keys are rounded coordinates (domain.Coordinates.Key), so lookups within
// key precision of each other collapse to the same entry.
type CachingGeocoder struct {
	inner   ports.Geocoder
	cache   ports.GeocodeCache
	metrics *metrics.Metrics
	group   singleflight.Group
}

func NewCachingGeocoder(inner ports.Geocoder, cache ports.GeocodeCache, m *metrics.Metrics) *CachingGeocoder {
	return &CachingGeocoder{inner: inner, cache: cache, metrics: m}
}

func (g *CachingGeocoder) ReverseGeocode(
	ctx context.Context,
	coord domain.Coordinates,
) (ports.ResolvedAddress, error) {
	key := coord.Key()

	v, err, _ := g.group.Do(key, func() (any, error) {
		if g.cache != nil {
			addr, ok, cerr := g.cache.Get(ctx, key)
			if cerr != nil {
				// Cache trouble must not block geocoding.
				log.Printf("geocode cache read failed: key=%s err=%v", key, cerr)
			}
			g.metrics.CacheLookup("geocode", ok)
			if ok {
				return addr, nil
			}
		}

		addr, err := g.inner.ReverseGeocode(ctx, coord)
		if err != nil {
			return ports.ResolvedAddress{}, err
		}

		if g.cache != nil {
			if cerr := g.cache.Put(ctx, key, addr); cerr != nil {
				log.Printf("geocode cache write failed: key=%s err=%v", key, cerr)
			}
		}

		return addr, nil
	})
	if err != nil {
		return ports.ResolvedAddress{}, err
	}

	return v.(ports.ResolvedAddress), nil
}

// Search is deduplicated in-flight but not cached: queries are free text
// and the map view they drive is transient.
func (g *CachingGeocoder) Search(ctx context.Context, query string) (domain.Coordinates, error) {
	v, err, _ := g.group.Do("q:"+query, func() (any, error) {
		return g.inner.Search(ctx, query)
	})
	if err != nil {
		return domain.Coordinates{}, err
	}

	return v.(domain.Coordinates), nil
}
