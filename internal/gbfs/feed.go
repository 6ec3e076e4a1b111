// Package gbfs fetches the Citi Bike GBFS feeds and reconciles them into
// per-station snapshots.
package gbfs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrUnavailable signals that no usable station data could be produced,
// either because a feed could not be fetched or because it came back
// empty. Callers present an explicit "data unavailable" state instead of
// an empty station list.
var ErrUnavailable = errors.New("station data unavailable")

// StatusFeed is the decoded station_status.json document.
type StatusFeed struct {
	LastUpdated int64
	Stations    []StatusRecord
}

// StatusRecord is one station's live status, normalized during decode:
// the station id is always a string, counts are non-negative ints, and
// bike-type sub-counts default to 0 when the feed has no breakdown.
type StatusRecord struct {
	StationID    string
	IsRenting    bool
	IsReturning  bool
	Bikes        int
	Docks        int
	Mechanical   int
	EBike        int
	LastReported int64
}

// InfoFeed is the decoded station_information.json document.
type InfoFeed struct {
	Stations []InfoRecord
}

// InfoRecord is one station's static metadata.
type InfoRecord struct {
	StationID string
	Lat       float64
	Lon       float64
	Name      string
	Capacity  int
	RegionID  string
}

// UnmarshalJSON flattens the GBFS envelope.
func (f *StatusFeed) UnmarshalJSON(b []byte) error {
	var raw struct {
		LastUpdated int64 `json:"last_updated"`
		Data        struct {
			Stations []StatusRecord `json:"stations"`
		} `json:"data"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	f.LastUpdated = raw.LastUpdated
	f.Stations = raw.Data.Stations
	return nil
}

func (r *StatusRecord) UnmarshalJSON(b []byte) error {
	var raw struct {
		StationID    any            `json:"station_id"`
		IsRenting    any            `json:"is_renting"`
		IsReturning  any            `json:"is_returning"`
		NumBikes     any            `json:"num_bikes_available"`
		NumDocks     any            `json:"num_docks_available"`
		LastReported any            `json:"last_reported"`
		BikeTypes    map[string]any `json:"num_bikes_available_types"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	r.StationID = asString(raw.StationID)
	r.IsRenting = asBool(raw.IsRenting)
	r.IsReturning = asBool(raw.IsReturning)
	r.Bikes = asCount(raw.NumBikes)
	r.Docks = asCount(raw.NumDocks)
	r.LastReported = asEpoch(raw.LastReported)

	// Some feeds capitalize the breakdown keys; absent sub-types stay 0.
	for key, count := range raw.BikeTypes {
		switch strings.ToLower(key) {
		case "mechanical":
			r.Mechanical = asCount(count)
		case "ebike":
			r.EBike = asCount(count)
		}
	}
	return nil
}

// UnmarshalJSON flattens the GBFS envelope.
func (f *InfoFeed) UnmarshalJSON(b []byte) error {
	var raw struct {
		Data struct {
			Stations []InfoRecord `json:"stations"`
		} `json:"data"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	f.Stations = raw.Data.Stations
	return nil
}

func (r *InfoRecord) UnmarshalJSON(b []byte) error {
	var raw struct {
		StationID any     `json:"station_id"`
		Lat       float64 `json:"lat"`
		Lon       float64 `json:"lon"`
		Name      string  `json:"name"`
		Capacity  any     `json:"capacity"`
		RegionID  any     `json:"region_id"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	r.StationID = asString(raw.StationID)
	r.Lat = raw.Lat
	r.Lon = raw.Lon
	r.Name = raw.Name
	r.Capacity = asCount(raw.Capacity)
	r.RegionID = asString(raw.RegionID)
	return nil
}

// Client fetches the two GBFS endpoints with a bounded timeout.
type Client struct {
	httpClient *http.Client
	statusURL  string
	infoURL    string
}

// NewClient creates a feed client for the given endpoints.
func NewClient(statusURL, infoURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		statusURL:  statusURL,
		infoURL:    infoURL,
	}
}

// FetchStatus retrieves and decodes the station status feed.
func (c *Client) FetchStatus(ctx context.Context) (*StatusFeed, error) {
	var feed StatusFeed
	if err := c.fetch(ctx, c.statusURL, &feed); err != nil {
		return nil, fmt.Errorf("fetching station status: %w", err)
	}
	return &feed, nil
}

// FetchInfo retrieves and decodes the station information feed.
func (c *Client) FetchInfo(ctx context.Context) (*InfoFeed, error) {
	var feed InfoFeed
	if err := c.fetch(ctx, c.infoURL, &feed); err != nil {
		return nil, fmt.Errorf("fetching station information: %w", err)
	}
	return &feed, nil
}

func (c *Client) fetch(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetching feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing feed JSON: %w", err)
	}
	return nil
}
