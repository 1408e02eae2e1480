package circuitbreaker

import "time"

type State int

const (
	Closed State = iota
	HalfOpen
	Open
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case HalfOpen:
		return "half-open"
	case Open:
		return "open"
	default:
		return "unknown"
	}
}

type CircuitBreaker interface {
	Execute(fn func() (any, error)) (any, error)
	State() State
}

type Settings struct {
	Name string
	// MaxConsecutiveFailures trips the breaker; zero means 5.
	MaxConsecutiveFailures uint32
	// OpenTimeout is how long the breaker stays open before probing; zero means 30s.
	OpenTimeout time.Duration
}
