// Package jobs holds the scheduled jobs run by the serve command.
package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/acadterm/acadterm/internal/calendar"
	"github.com/acadterm/acadterm/internal/period"
	"github.com/acadterm/acadterm/pkg/logger"
)

// RolloverJob checks each registered calendar once a day and logs when the
// current period has changed since the last check, e.g. Summer 2027 giving
// way to Fall 2027.
type RolloverJob struct {
	registry *calendar.Registry
	logger   *logger.Logger
	now      func() time.Time

	mu   sync.Mutex
	last map[string]string // calendar id -> key of last observed period
}

// NewRolloverJob creates the rollover job.
func NewRolloverJob(reg *calendar.Registry, log *logger.Logger) *RolloverJob {
	return &RolloverJob{
		registry: reg,
		logger:   log,
		now:      time.Now,
		last:     make(map[string]string),
	}
}

// Name implements scheduler.Job.
func (j *RolloverJob) Name() string { return "period-rollover" }

// Schedule implements scheduler.Job: every day at 06:00.
func (j *RolloverJob) Schedule() string { return "0 6 * * *" }

// Run implements scheduler.Job.
func (j *RolloverJob) Run(ctx context.Context) error {
	now := j.now()

	for _, id := range j.registry.List() {
		cfg, err := j.registry.Get(id)
		if err != nil {
			continue // unregistered between List and Get
		}

		current := period.Current(cfg, now)
		key, err := period.Format(current, period.FormatKey)
		if err != nil {
			return err
		}

		j.mu.Lock()
		prev, seen := j.last[id]
		j.last[id] = key
		j.mu.Unlock()

		if seen && prev != key {
			j.logger.WithFields(map[string]interface{}{
				"calendar": id,
				"from":     prev,
				"to":       key,
				"period":   current.String(),
				"ay":       current.AY(),
			}).Info("Academic period rollover")
		}
	}
	return nil
}
