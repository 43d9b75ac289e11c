package runner

import (
	"context"
	"log/slog"
	"time"

	"friend_tracker/internal/domain"
)

// Syncer defines the interface for sync operations.
type Syncer interface {
	Sync(ctx context.Context) (*domain.SyncStats, error)
}

// Runner executes a single reconciliation pass under a deadline.
type Runner struct {
	syncer  Syncer
	timeout time.Duration
	logger  *slog.Logger
}

func NewRunner(syncer Syncer, timeout time.Duration, logger *slog.Logger) *Runner {
	return &Runner{
		syncer:  syncer,
		timeout: timeout,
		logger:  logger,
	}
}

func (r *Runner) RunOnce(ctx context.Context) (*domain.SyncStats, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	r.logger.Info("reconciliation pass started", "timeout", r.timeout)

	stats, err := r.syncer.Sync(ctx)
	if err != nil {
		r.logger.Error("reconciliation pass failed",
			"kind", domain.Kind(err),
			"error", err,
		)
		return nil, err
	}

	r.logger.Info("reconciliation pass finished",
		"fetched", stats.Fetched,
		"changes", stats.Changes(),
		"duration", stats.Duration,
	)
	return stats, nil
}
