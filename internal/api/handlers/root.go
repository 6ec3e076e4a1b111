package handlers

import (
	"net/http"
)

type RootHandler struct{}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

func (h *RootHandler) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":        "nyc-citibike-station-status",
		"description": "Live NYC Citi Bike station availability, filtering, and nearest-station routing",
		"version":     "1.0.0",
		"endpoints": map[string]string{
			"GET /api":                        "API information",
			"GET /health":                     "Health check",
			"GET /api/v1/stations":            "Filtered station snapshot with summary",
			"GET /api/v1/stations/{id}":       "Single station detail",
			"POST /api/v1/refresh":            "Invalidate feed caches",
			"GET /api/v1/nearest/bikes":       "Nearest station with bikes (address= or lat=&lon=)",
			"GET /api/v1/nearest/docks":       "Nearest station with docks (address= or lat=&lon=)",
		},
	})
}

func (h *RootHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]any{
		"error":   "Route not found",
		"message": "Check the /api endpoint for available routes",
	})
}
