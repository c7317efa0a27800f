package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/libress/lending-service/pkg/circuit_breaker"
	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	successfulService := func() error {
		return nil
	}
	failingService := func() error {
		return errors.New("service error")
	}

	cb := circuit_breaker.NewCircuitBreaker(10, 100*time.Millisecond, 0.30, 3)

	for i := 0; i < 80; i++ {
		require.NoError(t, cb.Call(successfulService))
	}

	// enough failures to exceed the percentile and open the breaker
	var openSeen bool
	for i := 0; i < 40; i++ {
		if err := cb.Call(failingService); errors.Is(err, circuit_breaker.ErrOpenCB) {
			openSeen = true
		}
	}
	require.True(t, openSeen)

	// wait out the timeout so the breaker probes half-open
	time.Sleep(150 * time.Millisecond)

	for i := 0; i < 15; i++ {
		require.NoError(t, cb.Call(successfulService))
	}

	// recovered: calls pass through again
	require.NoError(t, cb.Call(successfulService))

	// a failure in half-open reopens immediately
	for i := 0; i < 40; i++ {
		cb.Call(failingService) //nolint:errcheck
	}
	require.ErrorIs(t, cb.Call(successfulService), circuit_breaker.ErrOpenCB)

	cb.Reset()
	require.NoError(t, cb.Call(successfulService))
}
