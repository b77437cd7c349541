// Package scheduler runs periodic maintenance jobs on cron schedules.
package scheduler

import (
	"context"
	"time"
)

// Job is a scheduled unit of work.
type Job interface {
	// Name returns the job name.
	Name() string

	// Run executes the job.
	Run(ctx context.Context) error

	// Schedule returns the cron schedule expression,
	// e.g. "0 6 * * *" or "@daily".
	Schedule() string
}

// JobResult records one job execution.
type JobResult struct {
	JobName   string        `json:"job_name"`
	StartTime time.Time     `json:"start_time"`
	Duration  time.Duration `json:"duration"`
	Success   bool          `json:"success"`
	Error     string        `json:"error,omitempty"`
}

// JobHistory keeps the most recent results for one job.
type JobHistory struct {
	Results []JobResult
}

// Add appends a result, keeping at most the last 50.
func (h *JobHistory) Add(result JobResult) {
	h.Results = append(h.Results, result)
	if len(h.Results) > 50 {
		h.Results = h.Results[len(h.Results)-50:]
	}
}
