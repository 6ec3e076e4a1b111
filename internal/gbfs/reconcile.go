package gbfs

import (
	"time"

	"github.com/hmonga/NYC-Citi-Bike-Station-Status/internal/models"
)

type dedupeKey struct {
	stationID    string
	lastReported int64
}

// Reconcile merges the live status feed with the static information feed
// into a per-station snapshot:
//
//  1. Stations that are not both renting and returning are dropped.
//  2. Repeated (station_id, last_reported) status records collapse to one.
//  3. Epoch timestamps become UTC instants; the feed-wide last_updated is
//     stamped on every row.
//  4. Status rows left-join onto info by string station id; a row with no
//     matching info keeps nil geography but is not dropped.
//
// If either feed is empty the snapshot short-circuits to empty; the
// station service turns that into an explicit unavailable signal.
func Reconcile(status *StatusFeed, info *InfoFeed) []models.Station {
	if status == nil || len(status.Stations) == 0 {
		return nil
	}
	if info == nil || len(info.Stations) == 0 {
		return nil
	}

	infoByID := make(map[string]InfoRecord, len(info.Stations))
	for _, rec := range info.Stations {
		infoByID[rec.StationID] = rec
	}

	lastUpdated := time.Unix(status.LastUpdated, 0).UTC()
	seen := make(map[dedupeKey]bool, len(status.Stations))

	snapshot := make([]models.Station, 0, len(status.Stations))
	for _, rec := range status.Stations {
		if !rec.IsRenting || !rec.IsReturning {
			continue
		}

		key := dedupeKey{stationID: rec.StationID, lastReported: rec.LastReported}
		if seen[key] {
			continue
		}
		seen[key] = true

		station := models.Station{
			StationID:    rec.StationID,
			Bikes:        rec.Bikes,
			Docks:        rec.Docks,
			Mechanical:   rec.Mechanical,
			EBike:        rec.EBike,
			LastReported: time.Unix(rec.LastReported, 0).UTC(),
			LastUpdated:  lastUpdated,
		}

		if meta, ok := infoByID[rec.StationID]; ok {
			lat, lon := meta.Lat, meta.Lon
			station.Lat = &lat
			station.Lon = &lon
			station.Name = meta.Name
			station.Capacity = meta.Capacity
			station.RegionID = meta.RegionID
		}

		snapshot = append(snapshot, station)
	}

	return snapshot
}
