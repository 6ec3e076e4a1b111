package location

import "github.com/hmonga/NYC-Citi-Bike-Station-Status/internal/models"

// NearestBike returns the closest station that currently has a rentable
// bike of the requested type. With a specific mode only that sub-count
// qualifies; with BikeTypeAny a station needs at least one bike of either
// type. Stations without geography are skipped (distance is undefined).
// The second return value is false when no candidate qualifies.
func NearestBike(from models.Coordinate, snapshot []models.Station, mode models.BikeType) (models.NearestResult, bool) {
	return scan(from, snapshot, func(s models.Station) bool {
		if s.Bikes <= 0 {
			return false
		}
		switch mode {
		case models.BikeTypeMechanical:
			return s.Mechanical > 0
		case models.BikeTypeEBike:
			return s.EBike > 0
		default:
			return s.Mechanical > 0 || s.EBike > 0
		}
	})
}

// NearestDock returns the closest station with an open dock.
func NearestDock(from models.Coordinate, snapshot []models.Station) (models.NearestResult, bool) {
	return scan(from, snapshot, func(s models.Station) bool {
		return s.Docks > 0
	})
}

// scan is a linear pass with a running minimum; ~2000 stations per query
// needs no spatial index. An exact distance tie keeps the earlier row.
func scan(from models.Coordinate, snapshot []models.Station, usable func(models.Station) bool) (models.NearestResult, bool) {
	var (
		best     models.NearestResult
		bestDist float64
		found    bool
	)

	for _, station := range snapshot {
		if !station.HasLocation() || !usable(station) {
			continue
		}

		dist := Distance(from, station.Location())
		if !found || dist < bestDist {
			found = true
			bestDist = dist
			best = models.NearestResult{
				StationID: station.StationID,
				Lat:       *station.Lat,
				Lon:       *station.Lon,
			}
		}
	}

	return best, found
}
