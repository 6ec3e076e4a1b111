// Package stations filters and summarizes reconciled station snapshots.
package stations

import (
	"strings"

	"github.com/hmonga/NYC-Citi-Bike-Station-Status/internal/models"
)

// Filters holds the user-selectable station predicates. The zero value
// applies no constraints. Predicates combine with AND.
type Filters struct {
	MinBikes     int
	MinDocks     int
	BikeType     models.BikeType
	NameContains string
}

// Apply returns the stations satisfying every predicate. The input slice
// is never mutated; a fresh slice is returned even when nothing is
// filtered out.
func (f Filters) Apply(snapshot []models.Station) []models.Station {
	filtered := make([]models.Station, 0, len(snapshot))
	for _, station := range snapshot {
		if f.matches(station) {
			filtered = append(filtered, station)
		}
	}
	return filtered
}

func (f Filters) matches(s models.Station) bool {
	if s.Bikes < f.MinBikes || s.Docks < f.MinDocks {
		return false
	}

	switch f.BikeType {
	case models.BikeTypeMechanical:
		if s.Mechanical <= 0 {
			return false
		}
	case models.BikeTypeEBike:
		if s.EBike <= 0 {
			return false
		}
	}

	if f.NameContains != "" {
		// Stations without a name never match a non-empty search.
		if s.Name == "" {
			return false
		}
		if !strings.Contains(strings.ToLower(s.Name), strings.ToLower(f.NameContains)) {
			return false
		}
	}

	return true
}
