package gbfs

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hmonga/NYC-Citi-Bike-Station-Status/internal/cache"
	"github.com/hmonga/NYC-Citi-Bike-Station-Status/internal/models"
)

const (
	statusCacheKey   = "station_status"
	infoCacheKey     = "station_information"
	snapshotCacheKey = "snapshot"
)

// Service owns the feed client and its caches and produces reconciled
// station snapshots on demand. The status feed is volatile and cached
// briefly; the information feed is near-static and cached for an hour.
// A snapshot is built fully off to the side and published by cache
// replacement, so readers never observe a half-updated snapshot.
type Service struct {
	client    *Client
	statusTTL time.Duration
	infoTTL   time.Duration
	logger    *zap.Logger

	statusCache   *cache.Cache[*StatusFeed]
	infoCache     *cache.Cache[*InfoFeed]
	snapshotCache *cache.Cache[[]models.Station]
}

// NewService creates a station service with distinct feed TTLs.
func NewService(client *Client, statusTTL, infoTTL time.Duration, logger *zap.Logger) *Service {
	return &Service{
		client:        client,
		statusTTL:     statusTTL,
		infoTTL:       infoTTL,
		logger:        logger,
		statusCache:   cache.New[*StatusFeed](),
		infoCache:     cache.New[*InfoFeed](),
		snapshotCache: cache.New[[]models.Station](),
	}
}

// Snapshot returns the reconciled station snapshot, fetching feeds only
// when their cached copies have expired. Returns ErrUnavailable when a
// feed cannot be fetched or reconciliation produces no rows, so callers
// can tell "no data" apart from "every station filtered out". Callers
// must treat the returned slice as immutable.
func (s *Service) Snapshot(ctx context.Context) ([]models.Station, error) {
	return s.snapshotCache.GetOrLoad(snapshotCacheKey, s.statusTTL, func() ([]models.Station, error) {
		return s.build(ctx)
	})
}

func (s *Service) build(ctx context.Context) ([]models.Station, error) {
	status, err := s.statusCache.GetOrLoad(statusCacheKey, s.statusTTL, func() (*StatusFeed, error) {
		return s.client.FetchStatus(ctx)
	})
	if err != nil {
		s.logger.Warn("status feed unavailable", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	info, err := s.infoCache.GetOrLoad(infoCacheKey, s.infoTTL, func() (*InfoFeed, error) {
		return s.client.FetchInfo(ctx)
	})
	if err != nil {
		s.logger.Warn("information feed unavailable", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	snapshot := Reconcile(status, info)
	if len(snapshot) == 0 {
		return nil, ErrUnavailable
	}

	s.logger.Info("snapshot reconciled",
		zap.Int("stations", len(snapshot)),
		zap.Time("last_updated", snapshot[0].LastUpdated),
	)
	return snapshot, nil
}

// Refresh drops all cached feed data and the reconciled snapshot, forcing
// the next Snapshot call to hit the feeds again.
func (s *Service) Refresh() {
	s.statusCache.Clear()
	s.infoCache.Clear()
	s.snapshotCache.Clear()
	s.logger.Info("feed caches invalidated")
}

// Close stops the cache sweep goroutines.
func (s *Service) Close() {
	s.statusCache.Close()
	s.infoCache.Close()
	s.snapshotCache.Close()
}
