package database

import (
	"context"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/lumenkraft/hr-management/internal"
)

// Pinger re-establishes the store connection before a retry attempt. It is
// optional: an Executor without one skips the reconnect step.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Executor runs store operations with bounded retries and exponential
// backoff. Transient errors (per IsTransient) are retried up to the
// configured bound; anything else propagates immediately. Every repository
// round-trip in this codebase goes through an Executor, so callers only ever
// see a successful result or a terminal, non-retryable error.
type Executor struct {
	db           *gorm.DB
	pinger       Pinger
	retries      int
	initialDelay time.Duration
	logger       *slog.Logger
}

func NewExecutor(gdb *gorm.DB, cfg internal.RetryConfig, logger *slog.Logger) *Executor {
	retries := cfg.Retries
	if retries < 0 {
		retries = 0
	}
	delay := cfg.InitialDelay
	if delay <= 0 {
		delay = internal.DefaultInitialDelay
	}
	return &Executor{
		db:           gdb,
		retries:      retries,
		initialDelay: delay,
		logger:       logger,
	}
}

// WithPinger configures the reconnect hook used before each retry attempt.
func (e *Executor) WithPinger(p Pinger) *Executor {
	e.pinger = p
	return e
}

// Execute invokes op against the store handle. On a transient failure it
// sleeps initialDelay * 2^attempt and tries again, re-establishing the
// connection first; a reconnect failure is logged but does not abort, since
// the next operation attempt surfaces its own error.
func (e *Executor) Execute(ctx context.Context, op func(db *gorm.DB) error) error {
	var lastErr error

	for attempt := 0; attempt <= e.retries; attempt++ {
		if attempt > 0 && e.pinger != nil {
			if err := e.pinger.Ping(ctx); err != nil {
				e.logger.Warn("reconnect before retry failed",
					"attempt", attempt,
					"error", err)
			}
		}

		err := op(e.db.WithContext(ctx))
		if err == nil {
			return nil
		}

		lastErr = err
		if !IsTransient(err) {
			return err
		}

		if attempt == e.retries {
			break
		}

		delay := e.initialDelay * (1 << attempt)
		e.logger.Warn("transient database error, retrying",
			"attempt", attempt,
			"delay", delay,
			"error", err)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return lastErr
		}
	}

	e.logger.Error("exhausted database retries",
		"attempts", e.retries+1,
		"error", lastErr)
	return lastErr
}
