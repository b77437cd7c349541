package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadterm/acadterm/internal/calendar"
	"github.com/acadterm/acadterm/pkg/config"
	"github.com/acadterm/acadterm/pkg/logger"
)

func testJob(t *testing.T) *RolloverJob {
	t.Helper()

	reg := calendar.NewRegistry()
	require.NoError(t, calendar.RegisterPresets(reg))

	log := logger.New(&config.Config{Env: "development", LogLevel: "error", LogFormat: "json"})
	return NewRolloverJob(reg, log)
}

func TestRolloverJob_TracksCurrentPeriod(t *testing.T) {
	j := testJob(t)

	j.now = func() time.Time { return time.Date(2027, 7, 1, 6, 0, 0, 0, time.UTC) }
	require.NoError(t, j.Run(context.Background()))

	j.mu.Lock()
	summer := j.last["semester"]
	j.mu.Unlock()
	assert.Equal(t, "26-27_20276_summer", summer)

	// Next morning run inside the same period leaves state unchanged.
	j.now = func() time.Time { return time.Date(2027, 7, 2, 6, 0, 0, 0, time.UTC) }
	require.NoError(t, j.Run(context.Background()))

	j.mu.Lock()
	assert.Equal(t, summer, j.last["semester"])
	j.mu.Unlock()
}

func TestRolloverJob_DetectsRollover(t *testing.T) {
	j := testJob(t)

	j.now = func() time.Time { return time.Date(2027, 8, 22, 6, 0, 0, 0, time.UTC) }
	require.NoError(t, j.Run(context.Background()))

	// Fall starts on the 23rd for the semester preset.
	j.now = func() time.Time { return time.Date(2027, 8, 23, 6, 0, 0, 0, time.UTC) }
	require.NoError(t, j.Run(context.Background()))

	j.mu.Lock()
	defer j.mu.Unlock()
	assert.Equal(t, "27-28_20278_fall", j.last["semester"])
	// The quarter preset rolls later in September and must not move yet.
	assert.Equal(t, "26-27_20276_summer", j.last["quarter"])
}

func TestRolloverJob_Metadata(t *testing.T) {
	j := testJob(t)
	assert.Equal(t, "period-rollover", j.Name())
	assert.Equal(t, "0 6 * * *", j.Schedule())
}
