package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"property-dashboard/internal/config"
	"property-dashboard/internal/snapshot"
)

// Scheduler runs the daily metrics snapshot capture
type Scheduler struct {
	cron      *cron.Cron
	snapshot  *snapshot.Service
	config    *config.Config
	logger    *zap.Logger
	isRunning bool
}

// NewScheduler creates a new scheduler
func NewScheduler(snap *snapshot.Service, cfg *config.Config, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		snapshot: snap,
		config:   cfg,
		logger:   logger,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	if !s.config.Snapshot.DailyEnabled {
		s.logger.Info("scheduler: daily snapshot is disabled in configuration")
		return nil
	}

	// Parse daily run time (HH:MM format in config)
	cronSpec := s.parseDailyRunTime(s.config.Snapshot.DailyTime)

	_, err := s.cron.AddFunc(cronSpec, func() {
		s.logger.Info("scheduler: capturing daily metrics snapshot")
		s.snapshot.Capture(time.Now())
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.isRunning = true
	s.logger.Info("scheduler: started",
		zap.String("daily_time", s.config.Snapshot.DailyTime),
		zap.String("cron", cronSpec))

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	if s.isRunning {
		s.cron.Stop()
		s.isRunning = false
		s.logger.Info("scheduler: stopped")
	}
}

// RunNow immediately captures a snapshot (for manual trigger)
func (s *Scheduler) RunNow() snapshot.MetricsSnapshot {
	s.logger.Info("scheduler: manual snapshot trigger")
	return s.snapshot.Capture(time.Now())
}

// parseDailyRunTime converts HH:MM format to cron specification
// Example: "02:00" -> "0 2 * * *" (run at 2:00 AM every day)
func (s *Scheduler) parseDailyRunTime(timeStr string) string {
	var hour, minute int
	n, _ := fmt.Sscanf(timeStr, "%d:%d", &hour, &minute)
	if n == 2 {
		return fmt.Sprintf("%d %d * * *", minute, hour)
	}

	// Default to 2:00 AM if parsing fails
	s.logger.Warn("scheduler: failed to parse time, using default 02:00",
		zap.String("value", timeStr))
	return "0 2 * * *"
}
