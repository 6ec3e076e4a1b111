package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/hmonga/NYC-Citi-Bike-Station-Status/internal/location"
	"github.com/hmonga/NYC-Citi-Bike-Station-Status/internal/models"
)

// NearestHandler resolves "nearest station with bikes/docks" queries:
// geocode (or raw coordinates) -> snapshot -> proximity scan -> route.
// Each query returns a fresh, self-contained QueryState; a bike result
// never carries over a previous dock result or vice versa.
type NearestHandler struct {
	snapshot SnapshotProvider
	geocoder GeocodeProvider
	routes   RouteProvider
	logger   *zap.Logger
}

func NewNearestHandler(snapshot SnapshotProvider, geocoder GeocodeProvider, routes RouteProvider, logger *zap.Logger) *NearestHandler {
	return &NearestHandler{
		snapshot: snapshot,
		geocoder: geocoder,
		routes:   routes,
		logger:   logger,
	}
}

// Bikes returns the nearest station with a rentable bike, honoring an
// optional bike_type mode.
func (h *NearestHandler) Bikes(w http.ResponseWriter, r *http.Request) {
	mode, modeOK := models.ParseBikeType(r.URL.Query().Get("bike_type"))
	if !modeOK {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "Invalid bike_type",
			"message": "bike_type must be one of: any, mechanical, ebike",
		})
		return
	}

	h.resolve(w, r, func(origin models.Coordinate, snapshot []models.Station) (models.NearestResult, bool) {
		return location.NearestBike(origin, snapshot, mode)
	}, func(state *models.QueryState, result models.NearestResult) {
		state.NearestBike = &result
	})
}

// Docks returns the nearest station with an open dock.
func (h *NearestHandler) Docks(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, func(origin models.Coordinate, snapshot []models.Station) (models.NearestResult, bool) {
		return location.NearestDock(origin, snapshot)
	}, func(state *models.QueryState, result models.NearestResult) {
		state.NearestDock = &result
	})
}

func (h *NearestHandler) resolve(
	w http.ResponseWriter,
	r *http.Request,
	nearest func(models.Coordinate, []models.Station) (models.NearestResult, bool),
	attach func(*models.QueryState, models.NearestResult),
) {
	origin, ok := h.origin(w, r)
	if !ok {
		return
	}

	snapshot, err := h.snapshot.Snapshot(r.Context())
	if err != nil {
		respondSnapshotError(w, h.logger, err)
		return
	}

	result, found := nearest(origin, snapshot)
	if !found {
		// No stale highlight: a miss returns nothing to render.
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error":   "No matching station found",
			"message": "No station currently satisfies the availability constraints",
		})
		return
	}

	state := models.QueryState{UserLocation: origin}
	attach(&state, result)

	destination := models.Coordinate{Lat: result.Lat, Lon: result.Lon}
	route, err := h.routes.Route(r.Context(), origin, destination)
	if err != nil {
		// A missing route is "no route available", not a failure.
		h.logger.Warn("route lookup failed", zap.Error(err))
	} else {
		state.Route = route
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"result":  state,
	})
}

// origin resolves the query origin from either a free-text address or
// raw lat/lon parameters.
func (h *NearestHandler) origin(w http.ResponseWriter, r *http.Request) (models.Coordinate, bool) {
	if address := r.URL.Query().Get("address"); address != "" {
		coord, found, err := h.geocoder.Geocode(r.Context(), address)
		if err != nil {
			h.logger.Warn("geocoding failed", zap.String("address", address), zap.Error(err))
		}
		if err != nil || !found {
			// A geocode miss is a user-input problem, not a system failure.
			writeJSON(w, http.StatusNotFound, map[string]any{
				"error":   "Location not found",
				"message": "Could not resolve the address; try a different one",
			})
			return models.Coordinate{}, false
		}
		return coord, true
	}

	lat, latOK := parseFloatQueryParam(r, "lat")
	lon, lonOK := parseFloatQueryParam(r, "lon")
	if !latOK || !lonOK {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "Missing query origin",
			"message": "Provide either address= or both lat= and lon=",
		})
		return models.Coordinate{}, false
	}

	return models.Coordinate{Lat: lat, Lon: lon}, true
}
