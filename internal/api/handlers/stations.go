// Package handlers contains HTTP request handlers
package handlers

import (
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/hmonga/NYC-Citi-Bike-Station-Status/internal/gbfs"
	"github.com/hmonga/NYC-Citi-Bike-Station-Status/internal/models"
	"github.com/hmonga/NYC-Citi-Bike-Station-Status/internal/stations"
)

// stationView decorates a snapshot row with its map marker tier.
type stationView struct {
	models.Station
	AvailabilityTier string `json:"availability_tier"`
}

type StationsHandler struct {
	snapshot SnapshotProvider
	logger   *zap.Logger
}

func NewStationsHandler(snapshot SnapshotProvider, logger *zap.Logger) *StationsHandler {
	return &StationsHandler{
		snapshot: snapshot,
		logger:   logger,
	}
}

// List returns the reconciled snapshot, filtered by the query parameters,
// together with summary metrics over the filtered set.
func (h *StationsHandler) List(w http.ResponseWriter, r *http.Request) {
	bikeType, ok := models.ParseBikeType(r.URL.Query().Get("bike_type"))
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "Invalid bike_type",
			"message": "bike_type must be one of: any, mechanical, ebike",
		})
		return
	}

	filters := stations.Filters{
		MinBikes:     parseIntQueryParam(r, "min_bikes", 0, 0, math.MaxInt),
		MinDocks:     parseIntQueryParam(r, "min_docks", 0, 0, math.MaxInt),
		BikeType:     bikeType,
		NameContains: r.URL.Query().Get("name"),
	}

	snapshot, err := h.snapshot.Snapshot(r.Context())
	if err != nil {
		respondSnapshotError(w, h.logger, err)
		return
	}

	filtered := filters.Apply(snapshot)

	var lastUpdated time.Time
	if len(snapshot) > 0 {
		lastUpdated = snapshot[0].LastUpdated
	}

	views := make([]stationView, len(filtered))
	for i, station := range filtered {
		views[i] = stationView{
			Station:          station,
			AvailabilityTier: stations.AvailabilityTier(station.Bikes),
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"last_updated": lastUpdated,
		"summary":      stations.Summarize(filtered),
		"stations":     views,
		"count":        len(views),
	})
}

// Get returns a single station by id (the detail/popup view).
func (h *StationsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stationID := mux.Vars(r)["stationId"]

	snapshot, err := h.snapshot.Snapshot(r.Context())
	if err != nil {
		respondSnapshotError(w, h.logger, err)
		return
	}

	for _, station := range snapshot {
		if station.StationID == stationID {
			writeJSON(w, http.StatusOK, map[string]any{
				"success": true,
				"station": stationView{
					Station:          station,
					AvailabilityTier: stations.AvailabilityTier(station.Bikes),
				},
			})
			return
		}
	}

	writeJSON(w, http.StatusNotFound, map[string]any{
		"error":   "Station not found",
		"message": "No station with id " + stationID + " in the current snapshot",
	})
}

// Refresh drops all cached feed data so the next request refetches.
func (h *StationsHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	h.snapshot.Refresh()
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Feed caches invalidated; the next request fetches fresh data",
	})
}

func respondSnapshotError(w http.ResponseWriter, logger *zap.Logger, err error) {
	if errors.Is(err, gbfs.ErrUnavailable) {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"error":   "Station data unavailable",
			"message": "The Citi Bike feeds could not be fetched or returned no stations",
		})
		return
	}

	logger.Error("snapshot failed", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, map[string]any{
		"error":   "Failed to load station data",
		"message": err.Error(),
	})
}
