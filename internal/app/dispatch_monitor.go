package app

import (
	"context"
	"time"

	"github.com/beliefted/beliefted-server/internal/domain"
)

// dispatchFailureMonitor drains notification fan-out failures and logs a
// count per interval.
type dispatchFailureMonitor struct {
	Errors   <-chan error
	Interval time.Duration
}

func (m *dispatchFailureMonitor) Run(ctx context.Context) error {
	logger := domain.LoggerFromContext(ctx)
	ticker := time.NewTicker(m.Interval)
	defer ticker.Stop()

	failures := 0
	var last error
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-m.Errors:
			failures++
			last = err
		case <-ticker.C:
			if failures > 0 {
				logger.WarnContext(ctx, "notification fan-out failures",
					"count", failures, "last_error", last)
				failures, last = 0, nil
			}
		}
	}
}
