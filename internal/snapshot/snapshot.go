// Package snapshot keeps a bounded in-memory history of daily dashboard
// metrics so the trend of the portfolio is observable without a database.
package snapshot

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"property-dashboard/internal/query"
	"property-dashboard/internal/store"
)

// MetricsSnapshot is one captured point of portfolio metrics
type MetricsSnapshot struct {
	CapturedAt time.Time              `json:"captured_at"` // truncated to date
	Metrics    query.DashboardMetrics `json:"metrics"`
}

// Service captures and serves metrics snapshots
type Service struct {
	store  *store.Store
	logger *zap.Logger

	mu      sync.RWMutex
	history []MetricsSnapshot // newest first
	limit   int
}

// NewService creates a new snapshot service. Limit bounds how many daily
// snapshots are retained; zero or negative means keep 90.
func NewService(st *store.Store, logger *zap.Logger, limit int) *Service {
	if limit <= 0 {
		limit = 90
	}
	return &Service{store: st, logger: logger, limit: limit}
}

// Capture records the current dashboard metrics under now's date. A second
// capture on the same day replaces the first, so the history holds at most
// one snapshot per day.
func (s *Service) Capture(now time.Time) MetricsSnapshot {
	snap := MetricsSnapshot{
		CapturedAt: now.Truncate(24 * time.Hour),
		Metrics:    query.Metrics(s.store),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.history) > 0 && s.history[0].CapturedAt.Equal(snap.CapturedAt) {
		s.history[0] = snap
	} else {
		s.history = append([]MetricsSnapshot{snap}, s.history...)
		if len(s.history) > s.limit {
			s.history = s.history[:s.limit]
		}
	}

	s.logger.Info("captured metrics snapshot",
		zap.Time("captured_at", snap.CapturedAt),
		zap.Int("occupancy_rate", snap.Metrics.OccupancyRate),
		zap.Int("open_maintenance", snap.Metrics.OpenMaintenance))

	return snap
}

// History returns up to limit snapshots, newest first. A non-positive limit
// returns the full retained history.
func (s *Service) History(limit int) []MetricsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.history) {
		limit = len(s.history)
	}
	return append([]MetricsSnapshot(nil), s.history[:limit]...)
}
