package routing

import (
	"fmt"

	"trip-planner-service/internal/domain"
)

// decodePolyline decodes a Google-format encoded polyline (the OSRM
// default, 1e-5 precision) into points preserving provider order.
// A truncated or corrupted string is reported as an error, never a panic.
func decodePolyline(encoded string) (domain.RouteGeometry, error) {
	var points domain.RouteGeometry
	index, lat, lon := 0, 0, 0

	readDelta := func() (int, error) {
		shift, result := 0, 0
		for {
			if index >= len(encoded) {
				return 0, fmt.Errorf("decode polyline: truncated varint at byte %d", index)
			}
			b := int(encoded[index]) - 63
			index++
			result |= (b & 0x1f) << shift
			shift += 5
			if b < 0x20 {
				break
			}
		}
		if result&1 != 0 {
			return ^(result >> 1), nil
		}
		return result >> 1, nil
	}

	for index < len(encoded) {
		dLat, err := readDelta()
		if err != nil {
			return nil, err
		}
		lat += dLat

		dLon, err := readDelta()
		if err != nil {
			return nil, err
		}
		lon += dLon

		points = append(points, domain.Coordinates{
			Lat: float64(lat) / 1e5,
			Lon: float64(lon) / 1e5,
		})
	}

	return points, nil
}
