package domain

import (
	"math"
	"strconv"
)

// keyPrecision is the number of decimal places coordinates are rounded to
// when building cache and dedup keys (~1m at the equator). Keep this
// consistent across geocode caching and route caching.
const keyPrecision = 5

// Immutable geographic coordinates (WGS84).
type Coordinates struct {
	Lat float64
	Lon float64
}

// Return coordinates as [lon, lat] for external API compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// Key returns a stable identity key with coordinates rounded to
// keyPrecision decimal places. Two clicks landing on effectively the same
// point produce the same key, so duplicate lookups collapse.
func (c Coordinates) Key() string {
	lat := strconv.FormatFloat(roundTo(c.Lat, keyPrecision), 'f', keyPrecision, 64)
	lon := strconv.FormatFloat(roundTo(c.Lon, keyPrecision), 'f', keyPrecision, 64)
	return lat + "," + lon
}

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
