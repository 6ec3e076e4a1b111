// Package location computes geodesic distances and resolves
// nearest-station queries against a snapshot.
package location

import (
	"math"

	"github.com/hmonga/NYC-Citi-Bike-Station-Status/internal/models"
)

const earthRadiusKm = 6371.0

// Distance returns the great-circle distance between two points in
// kilometers (haversine).
func Distance(a, b models.Coordinate) float64 {
	lat1Rad := a.Lat * math.Pi / 180
	lat2Rad := b.Lat * math.Pi / 180
	deltaLat := (b.Lat - a.Lat) * math.Pi / 180
	deltaLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}
