package gbfs

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeStatus(t *testing.T, doc string) *StatusFeed {
	t.Helper()
	var feed StatusFeed
	require.NoError(t, json.Unmarshal([]byte(doc), &feed))
	return &feed
}

func decodeInfo(t *testing.T, doc string) *InfoFeed {
	t.Helper()
	var feed InfoFeed
	require.NoError(t, json.Unmarshal([]byte(doc), &feed))
	return &feed
}

const infoDoc = `{
	"data": {"stations": [
		{"station_id": "72", "lat": 40.767, "lon": -73.993, "name": "W 52 St & 11 Ave", "capacity": 55, "region_id": "71"},
		{"station_id": "79", "lat": 40.719, "lon": -74.006, "name": "Franklin St & W Broadway", "capacity": 33}
	]}
}`

func TestReconcileMergesStatusAndInfo(t *testing.T) {
	status := decodeStatus(t, `{
		"last_updated": 1700000000,
		"data": {"stations": [
			{"station_id": "72", "is_renting": 1, "is_returning": 1,
			 "num_bikes_available": 5, "num_docks_available": 10, "last_reported": 1699999900,
			 "num_bikes_available_types": {"mechanical": 3, "ebike": 2}}
		]}
	}`)
	info := decodeInfo(t, infoDoc)

	snapshot := Reconcile(status, info)
	require.Len(t, snapshot, 1)

	s := snapshot[0]
	assert.Equal(t, "72", s.StationID)
	assert.Equal(t, "W 52 St & 11 Ave", s.Name)
	require.True(t, s.HasLocation())
	assert.Equal(t, 40.767, *s.Lat)
	assert.Equal(t, -73.993, *s.Lon)
	assert.Equal(t, 5, s.Bikes)
	assert.Equal(t, 10, s.Docks)
	assert.Equal(t, 3, s.Mechanical)
	assert.Equal(t, 2, s.EBike)
	assert.Equal(t, 55, s.Capacity)
	assert.Equal(t, "71", s.RegionID)
	assert.Equal(t, time.Unix(1699999900, 0).UTC(), s.LastReported)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), s.LastUpdated)
}

func TestReconcileDropsClosedStations(t *testing.T) {
	status := decodeStatus(t, `{
		"last_updated": 1700000000,
		"data": {"stations": [
			{"station_id": "72", "is_renting": 0, "is_returning": 1,
			 "num_bikes_available": 5, "num_docks_available": 10, "last_reported": 1699999900},
			{"station_id": "79", "is_renting": 1, "is_returning": 0,
			 "num_bikes_available": 5, "num_docks_available": 10, "last_reported": 1699999900}
		]}
	}`)

	snapshot := Reconcile(status, decodeInfo(t, infoDoc))
	assert.Empty(t, snapshot)
}

func TestReconcileDeduplicatesRepeatedReports(t *testing.T) {
	status := decodeStatus(t, `{
		"last_updated": 1700000000,
		"data": {"stations": [
			{"station_id": "72", "is_renting": 1, "is_returning": 1,
			 "num_bikes_available": 5, "num_docks_available": 10, "last_reported": 1699999900},
			{"station_id": "72", "is_renting": 1, "is_returning": 1,
			 "num_bikes_available": 5, "num_docks_available": 10, "last_reported": 1699999900},
			{"station_id": "72", "is_renting": 1, "is_returning": 1,
			 "num_bikes_available": 4, "num_docks_available": 11, "last_reported": 1699999960}
		]}
	}`)

	snapshot := Reconcile(status, decodeInfo(t, infoDoc))
	require.Len(t, snapshot, 2, "identical (station_id, last_reported) pairs collapse, newer report survives")
	assert.Equal(t, 5, snapshot[0].Bikes)
	assert.Equal(t, 4, snapshot[1].Bikes)
}

func TestReconcileKeepsStatusWithoutInfo(t *testing.T) {
	status := decodeStatus(t, `{
		"last_updated": 1700000000,
		"data": {"stations": [
			{"station_id": "999", "is_renting": 1, "is_returning": 1,
			 "num_bikes_available": 2, "num_docks_available": 3, "last_reported": 1699999900}
		]}
	}`)

	snapshot := Reconcile(status, decodeInfo(t, infoDoc))
	require.Len(t, snapshot, 1)

	s := snapshot[0]
	assert.Equal(t, "999", s.StationID)
	assert.False(t, s.HasLocation(), "unmatched station keeps nil geography but is not dropped")
	assert.Empty(t, s.Name)
	assert.Zero(t, s.Capacity)
}

func TestReconcileCoercesMessyFeedValues(t *testing.T) {
	status := decodeStatus(t, `{
		"last_updated": 1700000000,
		"data": {"stations": [
			{"station_id": 72, "is_renting": true, "is_returning": "1",
			 "num_bikes_available": "7", "num_docks_available": -3, "last_reported": 1699999900,
			 "num_bikes_available_types": {"Mechanical": "4", "ebike": null}}
		]}
	}`)

	snapshot := Reconcile(status, decodeInfo(t, infoDoc))
	require.Len(t, snapshot, 1)

	s := snapshot[0]
	assert.Equal(t, "72", s.StationID, "numeric station ids are normalized to strings")
	assert.Equal(t, 7, s.Bikes, "quoted counts are coerced")
	assert.Equal(t, 0, s.Docks, "negative counts clamp to zero")
	assert.Equal(t, 4, s.Mechanical, "capitalized breakdown keys are recognized")
	assert.Equal(t, 0, s.EBike, "null sub-counts default to zero")
}

func TestReconcileSynthesizesMissingBreakdown(t *testing.T) {
	status := decodeStatus(t, `{
		"last_updated": 1700000000,
		"data": {"stations": [
			{"station_id": "72", "is_renting": 1, "is_returning": 1,
			 "num_bikes_available": 6, "num_docks_available": 1, "last_reported": 1699999900}
		]}
	}`)

	snapshot := Reconcile(status, decodeInfo(t, infoDoc))
	require.Len(t, snapshot, 1)
	assert.Zero(t, snapshot[0].Mechanical)
	assert.Zero(t, snapshot[0].EBike)
}

func TestReconcileNonNegativeInvariant(t *testing.T) {
	status := decodeStatus(t, `{
		"last_updated": 1700000000,
		"data": {"stations": [
			{"station_id": "72", "is_renting": 1, "is_returning": 1,
			 "num_bikes_available": "garbage", "num_docks_available": 3.9, "last_reported": 1699999900,
			 "num_bikes_available_types": {"mechanical": -1, "ebike": "x"}}
		]}
	}`)

	snapshot := Reconcile(status, decodeInfo(t, infoDoc))
	require.Len(t, snapshot, 1)

	s := snapshot[0]
	assert.GreaterOrEqual(t, s.Bikes, 0)
	assert.GreaterOrEqual(t, s.Docks, 0)
	assert.GreaterOrEqual(t, s.Mechanical, 0)
	assert.GreaterOrEqual(t, s.EBike, 0)
	assert.GreaterOrEqual(t, s.Capacity, 0)
}

func TestReconcileEmptyInputsShortCircuit(t *testing.T) {
	status := decodeStatus(t, `{
		"last_updated": 1700000000,
		"data": {"stations": [
			{"station_id": "72", "is_renting": 1, "is_returning": 1,
			 "num_bikes_available": 5, "num_docks_available": 10, "last_reported": 1699999900}
		]}
	}`)
	emptyStatus := decodeStatus(t, `{"last_updated": 1700000000, "data": {"stations": []}}`)
	emptyInfo := decodeInfo(t, `{"data": {"stations": []}}`)

	assert.Empty(t, Reconcile(emptyStatus, decodeInfo(t, infoDoc)))
	assert.Empty(t, Reconcile(status, emptyInfo))
	assert.Empty(t, Reconcile(nil, nil))
}
