// Package main is the entry point for the station status server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hmonga/NYC-Citi-Bike-Station-Status/internal/api"
	"github.com/hmonga/NYC-Citi-Bike-Station-Status/internal/config"
	"github.com/hmonga/NYC-Citi-Bike-Station-Status/internal/gbfs"
	"github.com/hmonga/NYC-Citi-Bike-Station-Status/internal/geocode"
	"github.com/hmonga/NYC-Citi-Bike-Station-Status/internal/routing"
)

func main() {
	cfg := config.Load()

	if err := cfg.Validate(); err != nil {
		log.Fatal("Configuration error: ", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatal("Logger error: ", err)
	}
	defer logger.Sync()

	feedClient := gbfs.NewClient(cfg.StatusFeedURL, cfg.InfoFeedURL, cfg.FeedTimeout)
	stationSvc := gbfs.NewService(feedClient, cfg.StatusTTL, cfg.InfoTTL, logger)
	defer stationSvc.Close()

	geocoder := geocode.NewClient(cfg.NominatimURL, cfg.FeedTimeout)
	router := routing.NewClient(cfg.OSRMURL, cfg.RouteTimeout)

	handler := api.NewRouter(cfg, logger, stationSvc, geocoder, router)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			zap.String("port", cfg.Port),
			zap.String("env", cfg.Env),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
