package fetcher

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"ewintr.nl/hobbyplan/metrics"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/exp/slog"
)

type BreakerConfig struct {
	Name             string
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

func DefaultBreakerConfig(name string) BreakerConfig {
	return BreakerConfig{
		Name:             name,
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          5 * time.Minute,
		FailureThreshold: 5,
	}
}

// Breaker guards an upstream. It opens after a run of consecutive failures,
// or at once when the upstream reports an exhausted quota.
type Breaker struct {
	cb      *gobreaker.CircuitBreaker[any]
	exhaust atomic.Bool
	name    string
	logger  *slog.Logger
}

func NewBreaker(cfg BreakerConfig, logger *slog.Logger) *Breaker {
	b := &Breaker{
		name:   cfg.Name,
		logger: logger,
	}
	b.cb = gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		// a caller giving up says nothing about the upstream
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return b.exhaust.Load() || counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if to != gobreaker.StateOpen {
				b.exhaust.Store(false)
			}
			metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
			b.logger.Warn("circuit breaker changed state",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
	metrics.CircuitBreakerState.WithLabelValues(cfg.Name).Set(float64(gobreaker.StateClosed))

	return b
}

// Exhausted marks the quota as used up, so the next recorded failure opens
// the breaker.
func (b *Breaker) Exhausted() {
	b.exhaust.Store(true)
}

func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}

func execute[T any](b *Breaker, fn func() (T, error)) (T, error) {
	var zero T
	res, err := b.cb.Execute(func() (any, error) {
		v, err := fn()
		return v, err
	})
	if err != nil {
		return zero, err
	}
	return res.(T), nil
}
