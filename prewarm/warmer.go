package prewarm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/panjf2000/ants/v2"
)

// Warmable is anything with a retryable warm-up step.
type Warmable interface {
	Warm(ctx context.Context) error
}

// Warmer runs warm-up jobs on a one-worker pool.
type Warmer struct {
	target      Warmable
	pool        *ants.Pool
	maxAttempts int
	baseDelay   time.Duration
	logger      *slog.Logger
}

// Option configures a Warmer.
type Option func(*Warmer) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(w *Warmer) error {
		if logger == nil {
			logger = slog.Default()
		}
		w.logger = logger
		return nil
	}
}

// WithMaxAttempts sets the number of warm attempts. Default is 5.
func WithMaxAttempts(n int) Option {
	return func(w *Warmer) error {
		if n <= 0 {
			return ErrInvalidMaxAttempts
		}
		w.maxAttempts = n
		return nil
	}
}

// WithBaseDelay sets the delay before the first retry. Default is 1 second.
func WithBaseDelay(d time.Duration) Option {
	return func(w *Warmer) error {
		if d < 0 {
			return ErrInvalidBaseDelay
		}
		w.baseDelay = d
		return nil
	}
}

// New creates a Warmer for target.
func New(target Warmable, opts ...Option) (*Warmer, error) {
	if target == nil {
		return nil, ErrTargetRequired
	}

	pool, err := ants.NewPool(1)
	if err != nil {
		return nil, err
	}

	w := &Warmer{
		target:      target,
		pool:        pool,
		maxAttempts: 5,
		baseDelay:   time.Second,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		if optErr := opt(w); optErr != nil {
			w.Release()
			return nil, optErr
		}
	}
	w.logger = w.logger.With("component", "prewarm")

	return w, nil
}

// Submit schedules a warm-up job. The returned channel receives the final
// error (nil on success) and is then closed. Submit blocks while another
// job holds the worker.
func (w *Warmer) Submit(ctx context.Context) <-chan error {
	done := make(chan error, 1)

	err := w.pool.Submit(func() {
		defer close(done)
		start := time.Now()
		err := retry(ctx, w.logger, w.target.Warm, w.maxAttempts, w.baseDelay)
		if err != nil {
			w.logger.Warn("warm-up failed", "attempts", w.maxAttempts, "err", err)
		} else {
			w.logger.Info("warm-up complete", "duration", time.Since(start))
		}
		done <- err
	})
	if err != nil {
		if errors.Is(err, ants.ErrPoolClosed) {
			err = ErrWarmerReleased
		}
		done <- fmt.Errorf("submit warm-up: %w", err)
		close(done)
	}

	return done
}

// Release stops the worker pool. Jobs already running finish on their own.
func (w *Warmer) Release() {
	if w.pool != nil {
		w.pool.Release()
	}
}
