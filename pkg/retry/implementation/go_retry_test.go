package implementation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jt828/perfmon/pkg/retry"
	retryImpl "github.com/jt828/perfmon/pkg/retry/implementation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetry_Execute(t *testing.T) {
	t.Run("succeeds on first attempt", func(t *testing.T) {
		r := retryImpl.NewRetry(retry.WithInterval(time.Millisecond))
		callCount := 0

		err := r.Execute(context.Background(), func() error {
			callCount++
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, callCount)
	})

	t.Run("returns error after max retries exhausted", func(t *testing.T) {
		r := retryImpl.NewRetry(retry.WithMaxRetries(2), retry.WithInterval(time.Millisecond))
		callCount := 0

		err := r.Execute(context.Background(), func() error {
			callCount++
			return errors.New("persistent error")
		})

		assert.ErrorContains(t, err, "persistent error")
		// initial attempt + 2 retries
		assert.Equal(t, 3, callCount)
	})

	t.Run("default allows three retries", func(t *testing.T) {
		r := retryImpl.NewRetry(retry.WithInterval(time.Millisecond))
		callCount := 0

		_ = r.Execute(context.Background(), func() error {
			callCount++
			return errors.New("error")
		})

		assert.Equal(t, 4, callCount)
	})

	t.Run("non-retryable error fails immediately", func(t *testing.T) {
		fatal := errors.New("fatal error")
		r := retryImpl.NewRetry(
			retry.WithInterval(time.Millisecond),
			retry.WithRetryable(func(err error) bool { return !errors.Is(err, fatal) }),
		)
		callCount := 0

		err := r.Execute(context.Background(), func() error {
			callCount++
			return fatal
		})

		assert.ErrorIs(t, err, fatal)
		assert.Equal(t, 1, callCount)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		r := retryImpl.NewRetry(retry.WithMaxRetries(100), retry.WithInterval(time.Second))

		ctx, cancel := context.WithCancel(context.Background())
		callCount := 0

		go func() {
			time.Sleep(50 * time.Millisecond)
			cancel()
		}()

		err := r.Execute(ctx, func() error {
			callCount++
			return errors.New("keep failing")
		})

		assert.Error(t, err)
		assert.LessOrEqual(t, callCount, 3)
	})
}
