package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"property-dashboard/internal/config"
	"property-dashboard/internal/snapshot"
	"property-dashboard/internal/store"
)

func setupScheduler(t *testing.T, cfg *config.Config) *Scheduler {
	t.Helper()
	st := store.New()
	st.LoadDemoData()
	snap := snapshot.NewService(st, zap.NewNop(), 10)
	return NewScheduler(snap, cfg, zap.NewNop())
}

func TestParseDailyRunTime(t *testing.T) {
	s := setupScheduler(t, config.DefaultConfig())

	assert.Equal(t, "0 2 * * *", s.parseDailyRunTime("02:00"))
	assert.Equal(t, "30 14 * * *", s.parseDailyRunTime("14:30"))
	assert.Equal(t, "0 2 * * *", s.parseDailyRunTime("garbage"))
}

func TestStart_DisabledIsNoop(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Snapshot.DailyEnabled = false

	s := setupScheduler(t, cfg)
	require.NoError(t, s.Start())
	assert.False(t, s.isRunning)
	s.Stop()
}

func TestStartAndStop(t *testing.T) {
	s := setupScheduler(t, config.DefaultConfig())

	require.NoError(t, s.Start())
	assert.True(t, s.isRunning)

	s.Stop()
	assert.False(t, s.isRunning)
}

func TestRunNow(t *testing.T) {
	s := setupScheduler(t, config.DefaultConfig())

	snap := s.RunNow()
	assert.Equal(t, 10, snap.Metrics.TotalUnits)
}
