package implementation_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jt828/perfmon/pkg/circuitbreaker"
	cbImpl "github.com/jt828/perfmon/pkg/circuitbreaker/implementation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircuitBreaker_Execute(t *testing.T) {
	t.Run("successful execution returns result", func(t *testing.T) {
		cb := cbImpl.NewCircuitBreaker(circuitbreaker.Settings{Name: "test"})

		result, err := cb.Execute(func() (any, error) {
			return "hello", nil
		})

		require.NoError(t, err)
		assert.Equal(t, "hello", result)
	})

	t.Run("opens after consecutive failures and rejects with ErrOpen", func(t *testing.T) {
		cb := cbImpl.NewCircuitBreaker(circuitbreaker.Settings{Name: "test", MaxConsecutiveFailures: 3})

		opErr := errors.New("fail")
		for i := 0; i < 3; i++ {
			_, err := cb.Execute(func() (any, error) { return nil, opErr })
			assert.ErrorIs(t, err, opErr)
		}

		assert.Equal(t, circuitbreaker.Open, cb.State())

		result, err := cb.Execute(func() (any, error) {
			t.Fatal("should not be called when circuit is open")
			return nil, nil
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, circuitbreaker.ErrOpen)
		assert.ErrorContains(t, err, "test")
	})
}

func TestCircuitBreaker_State(t *testing.T) {
	t.Run("initial state is closed", func(t *testing.T) {
		cb := cbImpl.NewCircuitBreaker(circuitbreaker.Settings{Name: "test"})
		assert.Equal(t, circuitbreaker.Closed, cb.State())
		assert.Equal(t, "closed", cb.State().String())
	})

	t.Run("state transitions to half-open after timeout", func(t *testing.T) {
		cb := cbImpl.NewCircuitBreaker(circuitbreaker.Settings{
			Name:                   "test",
			MaxConsecutiveFailures: 1,
			OpenTimeout:            time.Millisecond,
		})

		_, _ = cb.Execute(func() (any, error) { return nil, errors.New("fail") })
		time.Sleep(10 * time.Millisecond)
		assert.Equal(t, circuitbreaker.HalfOpen, cb.State())
		assert.Equal(t, "half-open", cb.State().String())
	})
}
