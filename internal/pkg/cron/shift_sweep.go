package cron

import (
	"context"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/service/sweep"
)

// SweepJobs wires the shift reconciliation sweep into the scheduler.
// The interval matches shift start granularity: one tick per minute, so
// a shift occurrence is reconciled the moment its successor starts.
type SweepJobs struct {
	sweeper  *sweep.Service
	interval time.Duration
}

func NewSweepJobs(sweeper *sweep.Service, interval time.Duration) *SweepJobs {
	if interval <= 0 {
		interval = time.Minute
	}
	return &SweepJobs{sweeper: sweeper, interval: interval}
}

func (j *SweepJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("shift_reconciliation_sweep", j.interval, j.RunSweep)
}

func (j *SweepJobs) RunSweep(ctx context.Context) error {
	// Truncate so the tick matches shifts by the minute regardless of
	// ticker drift within it.
	return j.sweeper.Run(ctx, time.Now().Truncate(time.Minute))
}
