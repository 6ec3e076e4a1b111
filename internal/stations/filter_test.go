package stations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmonga/NYC-Citi-Bike-Station-Status/internal/models"
)

func sampleSnapshot() []models.Station {
	return []models.Station{
		{StationID: "1", Name: "W 52 St & 11 Ave", Bikes: 8, Docks: 2, Mechanical: 6, EBike: 2},
		{StationID: "2", Name: "Franklin St & W Broadway", Bikes: 2, Docks: 12, Mechanical: 2, EBike: 0},
		{StationID: "3", Name: "St Marks Pl & 2 Ave", Bikes: 0, Docks: 20, Mechanical: 0, EBike: 0},
		{StationID: "4", Bikes: 5, Docks: 5, Mechanical: 0, EBike: 5}, // no name
	}
}

func TestApplyNoConstraintsReturnsIdenticalRows(t *testing.T) {
	snapshot := sampleSnapshot()

	got := Filters{}.Apply(snapshot)
	assert.Equal(t, snapshot, got)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	snapshot := sampleSnapshot()
	original := sampleSnapshot()

	Filters{MinBikes: 5, BikeType: models.BikeTypeEBike, NameContains: "st"}.Apply(snapshot)
	assert.Equal(t, original, snapshot)
}

func TestApplyPredicates(t *testing.T) {
	tests := []struct {
		name    string
		filters Filters
		wantIDs []string
	}{
		{"min bikes", Filters{MinBikes: 3}, []string{"1", "4"}},
		{"min docks", Filters{MinDocks: 10}, []string{"2", "3"}},
		{"mechanical only", Filters{BikeType: models.BikeTypeMechanical}, []string{"1", "2"}},
		{"ebike only", Filters{BikeType: models.BikeTypeEBike}, []string{"1", "4"}},
		{"any type is no constraint", Filters{BikeType: models.BikeTypeAny}, []string{"1", "2", "3", "4"}},
		{"name substring case-insensitive", Filters{NameContains: "fRaNkLiN"}, []string{"2"}},
		{"missing name never matches", Filters{NameContains: "st"}, []string{"1", "3"}},
		{"combined AND", Filters{MinBikes: 2, MinDocks: 2, BikeType: models.BikeTypeMechanical}, []string{"1", "2"}},
		{"nothing matches", Filters{MinBikes: 100}, []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.filters.Apply(sampleSnapshot())
			ids := make([]string, 0, len(got))
			for _, s := range got {
				ids = append(ids, s.StationID)
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestEBikeOnlyExcludesMechanicalStock(t *testing.T) {
	snapshot := []models.Station{
		{StationID: "1", Name: "a", Bikes: 5, Mechanical: 5, EBike: 0},
	}

	got := Filters{BikeType: models.BikeTypeEBike}.Apply(snapshot)
	assert.Empty(t, got, "total bikes > 0 is not enough for a specific mode")
}

func TestModeOnNormalizedFeedWithoutBreakdown(t *testing.T) {
	// A feed without a bike-type breakdown reconciles to all-zero
	// sub-counts, so a specific mode yields the empty set.
	snapshot := []models.Station{
		{StationID: "1", Name: "a", Bikes: 9, Docks: 1},
		{StationID: "2", Name: "b", Bikes: 4, Docks: 2},
	}

	assert.Empty(t, Filters{BikeType: models.BikeTypeMechanical}.Apply(snapshot))
	assert.Empty(t, Filters{BikeType: models.BikeTypeEBike}.Apply(snapshot))
}

func TestSummarize(t *testing.T) {
	summary := Summarize(sampleSnapshot())

	require.Equal(t, 4, summary.Stations)
	assert.Equal(t, 15, summary.TotalBikes)
	assert.Equal(t, 39, summary.TotalDocks)
	assert.InDelta(t, 3.8, summary.AvgBikesPerStation, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	assert.Zero(t, summary.Stations)
	assert.Zero(t, summary.TotalBikes)
	assert.Zero(t, summary.TotalDocks)
	assert.Zero(t, summary.AvgBikesPerStation)
}

func TestAvailabilityTier(t *testing.T) {
	tests := []struct {
		bikes int
		want  string
	}{
		{0, TierRed},
		{1, TierYellow},
		{3, TierYellow},
		{4, TierGreen},
		{50, TierGreen},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, AvailabilityTier(tc.bikes), "bikes=%d", tc.bikes)
	}
}
