// Package geocode resolves free-text addresses through the Nominatim API.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hmonga/NYC-Citi-Bike-Station-Status/internal/models"
)

// The bike network is NYC-only, so results are biased (not restricted)
// toward the city's bounding box.
const nycViewbox = "-74.2591,40.9176,-73.7004,40.4774"

const userAgent = "nyc-citibike-station-status/1.0"

// Client is a Nominatim search client.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a geocoder against the given Nominatim base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Geocode resolves an address to a coordinate. A miss is not an error:
// the second return value is false when the service finds no match, so
// callers can surface "location not found" without failing the request.
func (c *Client) Geocode(ctx context.Context, address string) (models.Coordinate, bool, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return models.Coordinate{}, false, nil
	}

	params := url.Values{}
	params.Set("q", address)
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("viewbox", nycViewbox)

	searchURL := c.baseURL + "/search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return models.Coordinate{}, false, fmt.Errorf("building request: %w", err)
	}
	// Nominatim's usage policy requires an identifying user agent.
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.Coordinate{}, false, fmt.Errorf("geocoding %q: %w", address, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Coordinate{}, false, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	// Nominatim emits lat/lon as JSON strings.
	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return models.Coordinate{}, false, fmt.Errorf("parsing geocoder response: %w", err)
	}
	if len(results) == 0 {
		return models.Coordinate{}, false, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return models.Coordinate{}, false, fmt.Errorf("parsing latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return models.Coordinate{}, false, fmt.Errorf("parsing longitude %q: %w", results[0].Lon, err)
	}

	return models.Coordinate{Lat: lat, Lon: lon}, true, nil
}
