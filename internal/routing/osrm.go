// Package routing requests driving routes from an OSRM server.
package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/hmonga/NYC-Citi-Bike-Station-Status/internal/models"
)

// Client is an OSRM route client.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a routing client against the given OSRM base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

type osrmResponse struct {
	Routes []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// Route requests a driving route between two points. OSRM speaks
// (lon,lat) GeoJSON and seconds; the result is converted to (lat,lon)
// pairs and minutes rounded to one decimal. A response with no routes
// yields (nil, nil) — callers treat a nil route as "no route available".
func (c *Client) Route(ctx context.Context, origin, destination models.Coordinate) (*models.Route, error) {
	routeURL := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?geometries=geojson",
		c.baseURL, origin.Lon, origin.Lat, destination.Lon, destination.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, routeURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching route: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("routing service returned status %d", resp.StatusCode)
	}

	var parsed osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("parsing route response: %w", err)
	}
	if len(parsed.Routes) == 0 {
		return nil, nil
	}

	best := parsed.Routes[0]
	geometry := make([]models.Coordinate, 0, len(best.Geometry.Coordinates))
	for _, pair := range best.Geometry.Coordinates {
		if len(pair) < 2 {
			continue
		}
		geometry = append(geometry, models.Coordinate{Lat: pair[1], Lon: pair[0]})
	}

	return &models.Route{
		Geometry:        geometry,
		DurationMinutes: math.Round(best.Duration/60*10) / 10,
	}, nil
}
