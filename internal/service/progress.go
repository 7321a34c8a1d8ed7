package service

import (
	"context"
	"time"
)

// ProgressFunc receives a human-readable stage message and a percentage in
// [0,100]. It is invoked once per step, in declared order, with strictly
// increasing percentages ending at 100.
type ProgressFunc func(message string, percent int)

// progressStep is one unit of a multi-step operation: its progress
// announcement plus the work it performs.
type progressStep struct {
	message string
	percent int
	run     func() error
}

// runSteps executes steps strictly sequentially. Each step announces its
// progress, waits out the configured simulated latency, then runs its work.
// Cancellation is honored between steps, and the first failing step aborts
// the rest, so callers never commit partial results.
func runSteps(ctx context.Context, delay time.Duration, onProgress ProgressFunc, steps []progressStep) error {
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if onProgress != nil {
			onProgress(step.message, step.percent)
		}
		if delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			}
		}
		if step.run != nil {
			if err := step.run(); err != nil {
				return err
			}
		}
	}
	return nil
}
