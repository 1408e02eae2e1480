package circuitbreaker

import "errors"

// ErrOpen is returned instead of calling fn while the breaker rejects requests.
var ErrOpen = errors.New("circuit breaker is open")
