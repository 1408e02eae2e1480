package implementation

import (
	"errors"
	"fmt"
	"time"

	"github.com/jt828/perfmon/pkg/circuitbreaker"
	"github.com/sony/gobreaker/v2"
)

type gobreakerCircuitBreaker struct {
	cb *gobreaker.CircuitBreaker[any]
}

func NewCircuitBreaker(settings circuitbreaker.Settings) circuitbreaker.CircuitBreaker {
	maxFailures := settings.MaxConsecutiveFailures
	if maxFailures == 0 {
		maxFailures = 5
	}
	timeout := settings.OpenTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &gobreakerCircuitBreaker{
		cb: gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
			Name:    settings.Name,
			Timeout: timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= maxFailures
			},
		}),
	}
}

func (g *gobreakerCircuitBreaker) Execute(fn func() (any, error)) (any, error) {
	result, err := g.cb.Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %s", circuitbreaker.ErrOpen, g.cb.Name())
	}
	return result, err
}

func (g *gobreakerCircuitBreaker) State() circuitbreaker.State {
	switch g.cb.State() {
	case gobreaker.StateClosed:
		return circuitbreaker.Closed
	case gobreaker.StateHalfOpen:
		return circuitbreaker.HalfOpen
	case gobreaker.StateOpen:
		return circuitbreaker.Open
	default:
		return circuitbreaker.Closed
	}
}
