package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/hmonga/NYC-Citi-Bike-Station-Status/internal/api/handlers"
	"github.com/hmonga/NYC-Citi-Bike-Station-Status/internal/config"
)

// NewRouter creates and configures the HTTP router with all routes and middleware
func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	snapshot handlers.SnapshotProvider,
	geocoder handlers.GeocodeProvider,
	routes handlers.RouteProvider,
) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	rootHandler := handlers.NewRootHandler()
	stationsHandler := handlers.NewStationsHandler(snapshot, logger)
	nearestHandler := handlers.NewNearestHandler(snapshot, geocoder, routes, logger)

	// Core routes
	r.HandleFunc("/", rootHandler.Index).Methods(http.MethodGet)
	r.HandleFunc("/api", rootHandler.Index).Methods(http.MethodGet)
	r.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)

	// Station pipeline routes
	v1 := r.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/stations", stationsHandler.List).Methods(http.MethodGet)
	v1.HandleFunc("/stations/{stationId}", stationsHandler.Get).Methods(http.MethodGet)
	v1.HandleFunc("/refresh", stationsHandler.Refresh).Methods(http.MethodPost)
	v1.HandleFunc("/nearest/bikes", nearestHandler.Bikes).Methods(http.MethodGet)
	v1.HandleFunc("/nearest/docks", nearestHandler.Docks).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(rootHandler.NotFound)

	// Apply middleware stack
	handler := Chain(r,
		Recovery(logger),
		Logging(logger),
		CORS,
		Timeout(cfg.HTTPTimeout),
	)

	return handler
}
