package translation

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
)

// BreakerProvider fails fast once the wrapped provider has failed maxFailures times in a row.
// It never retries; an open breaker simply turns the call into an immediate error.
type BreakerProvider struct {
	inner Provider
	cb    *gobreaker.CircuitBreaker
}

// NewBreakerProvider wraps inner; the breaker half-opens after cooldown
func NewBreakerProvider(inner Provider, maxFailures uint32, cooldown time.Duration, logger zerolog.Logger) *BreakerProvider {
	if maxFailures == 0 {
		maxFailures = 5
	}
	log := logger.With().Str("component", "translation-breaker").Logger()

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        inner.Name(),
		MaxRequests: 1,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			var done *callerDoneError
			return err == nil || errors.As(err, &done)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("provider", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
		},
	})

	return &BreakerProvider{inner: inner, cb: cb}
}

func (b *BreakerProvider) Name() string {
	return b.inner.Name()
}

// Translate counts provider failures and per-call timeouts against the breaker.
// Errors caused by the caller's own context ending are passed through uncounted.
func (b *BreakerProvider) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	res, err := b.cb.Execute(func() (interface{}, error) {
		out, err := b.inner.Translate(ctx, text, targetLanguage)
		if err != nil && callerDone(ctx) {
			return nil, &callerDoneError{err: err}
		}
		return out, err
	})
	if err != nil {
		var done *callerDoneError
		if errors.As(err, &done) {
			return "", done.err
		}
		return "", err
	}
	return res.(string), nil
}

// callerDone reports whether ctx ended for a reason other than the per-call timeout
func callerDone(ctx context.Context) bool {
	return ctx.Err() != nil && !errors.Is(context.Cause(ctx), ErrCallTimeout)
}

// callerDoneError marks an error the breaker must not count
type callerDoneError struct {
	err error
}

func (e *callerDoneError) Error() string { return e.err.Error() }

func (e *callerDoneError) Unwrap() error { return e.err }

// Usage bypasses the breaker
func (b *BreakerProvider) Usage(ctx context.Context) (*Usage, error) {
	return QueryUsage(ctx, b.inner)
}

// State exposes the breaker state for diagnostics
func (b *BreakerProvider) State() gobreaker.State {
	return b.cb.State()
}
