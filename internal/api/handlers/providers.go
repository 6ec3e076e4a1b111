package handlers

import (
	"context"

	"github.com/hmonga/NYC-Citi-Bike-Station-Status/internal/models"
)

// SnapshotProvider abstracts the station data source for testability.
type SnapshotProvider interface {
	Snapshot(ctx context.Context) ([]models.Station, error)
	Refresh()
}

// GeocodeProvider abstracts the address-to-coordinate service.
type GeocodeProvider interface {
	Geocode(ctx context.Context, address string) (models.Coordinate, bool, error)
}

// RouteProvider abstracts the driving-directions service.
type RouteProvider interface {
	Route(ctx context.Context, origin, destination models.Coordinate) (*models.Route, error)
}
