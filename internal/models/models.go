// Package models defines shared data types
package models

import "time"

// Coordinate is a WGS84 point in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Station is one row of the reconciled station snapshot: live status
// left-joined onto static station information. All counts are normalized,
// non-negative integers; a station whose status record had no matching
// info record keeps nil Lat/Lon but is not dropped.
type Station struct {
	StationID    string    `json:"station_id"`
	Name         string    `json:"name,omitempty"`
	Lat          *float64  `json:"lat,omitempty"`
	Lon          *float64  `json:"lon,omitempty"`
	Bikes        int       `json:"num_bikes_available"`
	Docks        int       `json:"num_docks_available"`
	Mechanical   int       `json:"mechanical"`
	EBike        int       `json:"ebike"`
	Capacity     int       `json:"capacity"`
	RegionID     string    `json:"region_id,omitempty"`
	LastReported time.Time `json:"last_reported"`
	LastUpdated  time.Time `json:"last_updated"`
}

// HasLocation reports whether the station carries usable geography.
func (s Station) HasLocation() bool {
	return s.Lat != nil && s.Lon != nil
}

// Location returns the station's coordinate. Only valid when HasLocation.
func (s Station) Location() Coordinate {
	return Coordinate{Lat: *s.Lat, Lon: *s.Lon}
}

// BikeType selects which bike sub-category a query cares about.
type BikeType string

const (
	BikeTypeAny        BikeType = "any"
	BikeTypeMechanical BikeType = "mechanical"
	BikeTypeEBike      BikeType = "ebike"
)

// ParseBikeType maps a user-supplied mode string to a BikeType.
// The empty string means no preference.
func ParseBikeType(s string) (BikeType, bool) {
	switch BikeType(s) {
	case "", BikeTypeAny:
		return BikeTypeAny, true
	case BikeTypeMechanical:
		return BikeTypeMechanical, true
	case BikeTypeEBike:
		return BikeTypeEBike, true
	}
	return "", false
}

// NearestResult identifies the closest matching station: the minimal
// identity needed to highlight a marker and request a route.
type NearestResult struct {
	StationID string  `json:"station_id"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
}

// Route is a driving route returned by the routing service, with
// coordinates in (lat, lon) order and duration in minutes.
type Route struct {
	Geometry        []Coordinate `json:"geometry"`
	DurationMinutes float64      `json:"duration_minutes"`
}

// QueryState is the complete, immutable result of one nearest-station
// query. At most one of NearestBike / NearestDock is set: resolving a new
// bike query never carries over a previous dock result, and vice versa.
type QueryState struct {
	UserLocation Coordinate     `json:"user_location"`
	NearestBike  *NearestResult `json:"nearest_bike,omitempty"`
	NearestDock  *NearestResult `json:"nearest_dock,omitempty"`
	Route        *Route         `json:"route,omitempty"`
}
