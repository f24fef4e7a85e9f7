package breaker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"productReco/business/recommend"
	"productReco/domain"
	"productReco/pkg/logger"

	gobreaker "github.com/sony/gobreaker/v2"
)

const breakerName = "catalog-store"

// Settings tunes when the breaker opens and how long it stays open.
type Settings struct {
	// ConsecutiveFailures opens the circuit once reached.
	ConsecutiveFailures uint32
	// OpenTimeout is the wait before a half-open probe is let through.
	OpenTimeout time.Duration
}

// Store guards a slow or failing backing store. While the circuit is open
// reads fail immediately instead of waiting on the backend.
type Store struct {
	next recommend.Store
	cb   *gobreaker.CircuitBreaker[any]
}

func NewStore(next recommend.Store, s Settings) *Store {
	if s.ConsecutiveFailures == 0 {
		s.ConsecutiveFailures = 5
	}
	if s.OpenTimeout <= 0 {
		s.OpenTimeout = 30 * time.Second
	}

	BreakerState.WithLabelValues(breakerName).Set(stateToFloat(gobreaker.StateClosed))

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     s.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= s.ConsecutiveFailures
		},
		// a caller giving up is not a backend failure
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
			BreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})

	return &Store{next: next, cb: cb}
}

func (s *Store) Products(ctx context.Context) ([]domain.Product, error) {
	return execute(s, func() ([]domain.Product, error) { return s.next.Products(ctx) })
}

func (s *Store) Purchases(ctx context.Context) ([]domain.PurchaseRecord, error) {
	return execute(s, func() ([]domain.PurchaseRecord, error) { return s.next.Purchases(ctx) })
}

// State reports the current breaker state.
func (s *Store) State() gobreaker.State {
	return s.cb.State()
}

func execute[T any](s *Store, fn func() (T, error)) (T, error) {
	var zero T

	res, err := s.cb.Execute(func() (any, error) {
		return fn()
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			BreakerRejections.WithLabelValues(breakerName).Inc()
			return zero, fmt.Errorf("store unavailable: %w", err)
		}
		return zero, err
	}

	typed, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", res)
	}
	return typed, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
