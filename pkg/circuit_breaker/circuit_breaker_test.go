package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Astemirdum/bike-rental/pkg/circuit_breaker"
	"github.com/stretchr/testify/require"
)

var (
	errService = errors.New("service error")

	successfulService = func() error { return nil }
	failingService    = func() error { return errService }
)

func Test_circuitBreaker_Call(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		calls     []func() error
		wantState circuit_breaker.Status
		wantErr   error
	}{
		{
			name:      "successful calls keep it closed",
			calls:     []func() error{successfulService, successfulService, successfulService},
			wantState: circuit_breaker.Closed,
		},
		{
			name:      "failures below percentile keep it closed",
			calls:     []func() error{failingService, successfulService, successfulService},
			wantState: circuit_breaker.Closed,
		},
		{
			name:      "failures reaching percentile open it",
			calls:     []func() error{failingService, failingService},
			wantState: circuit_breaker.Open,
		},
		{
			name:      "open rejects calls",
			calls:     []func() error{failingService, failingService, successfulService},
			wantState: circuit_breaker.Open,
			wantErr:   circuit_breaker.ErrOpen,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cb := circuit_breaker.New(4, time.Hour, 0.5, 2)
			var err error
			for _, call := range tt.calls {
				err = cb.Call(call)
			}
			require.Equal(t, tt.wantState, cb.State())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func Test_circuitBreaker_Recovery(t *testing.T) {
	t.Parallel()
	cb := circuit_breaker.New(2, 20*time.Millisecond, 0.5, 2)

	require.ErrorIs(t, cb.Call(failingService), errService)
	require.Equal(t, circuit_breaker.Open, cb.State())

	time.Sleep(40 * time.Millisecond)

	require.NoError(t, cb.Call(successfulService))
	require.Equal(t, circuit_breaker.HalfOpen, cb.State())
	require.NoError(t, cb.Call(successfulService))
	require.Equal(t, circuit_breaker.Closed, cb.State())
}

func Test_circuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	t.Parallel()
	cb := circuit_breaker.New(2, 20*time.Millisecond, 0.5, 3)

	_ = cb.Call(failingService)
	time.Sleep(40 * time.Millisecond)

	require.ErrorIs(t, cb.Call(failingService), errService)
	require.Equal(t, circuit_breaker.Open, cb.State())
	require.ErrorIs(t, cb.Call(successfulService), circuit_breaker.ErrOpen)

	cb.Reset()
	require.Equal(t, circuit_breaker.Closed, cb.State())
}
