package stations

import (
	"math"

	"github.com/hmonga/NYC-Citi-Bike-Station-Status/internal/models"
)

// Summary aggregates a station set for the dashboard header.
type Summary struct {
	Stations           int     `json:"stations"`
	TotalBikes         int     `json:"total_bikes"`
	TotalDocks         int     `json:"total_docks"`
	AvgBikesPerStation float64 `json:"avg_bikes_per_station"`
}

// Summarize computes totals and the average bikes per station, rounded
// to one decimal. An empty set yields an all-zero summary.
func Summarize(snapshot []models.Station) Summary {
	s := Summary{Stations: len(snapshot)}
	for _, station := range snapshot {
		s.TotalBikes += station.Bikes
		s.TotalDocks += station.Docks
	}
	if s.Stations > 0 {
		s.AvgBikesPerStation = math.Round(float64(s.TotalBikes)/float64(s.Stations)*10) / 10
	}
	return s
}

// Availability tiers for map marker coloring.
const (
	TierGreen  = "green"  // more than 3 bikes
	TierYellow = "yellow" // 1-3 bikes
	TierRed    = "red"    // none
)

// AvailabilityTier buckets a bike count into a marker color tier.
func AvailabilityTier(bikes int) string {
	switch {
	case bikes > 3:
		return TierGreen
	case bikes > 0:
		return TierYellow
	default:
		return TierRed
	}
}
