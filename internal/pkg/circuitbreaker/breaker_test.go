package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/piresc/nebengjek-settlement/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
)

var errUpstream = errors.New("upstream down")

func fail(ctx context.Context) error { return errUpstream }
func ok(ctx context.Context) error   { return nil }

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cfg := DefaultConfig("rpc")
	cfg.FailureThreshold = 2
	cb := New(cfg, logger.NewNopLogger())
	ctx := context.Background()

	assert.ErrorIs(t, cb.Execute(ctx, fail), errUpstream)
	assert.Equal(t, StateClosed, cb.State())
	assert.ErrorIs(t, cb.Execute(ctx, fail), errUpstream)
	assert.Equal(t, StateOpen, cb.State())

	assert.ErrorIs(t, cb.Execute(ctx, ok), ErrCircuitBreakerOpen)
}

func TestCircuitBreaker_HalfOpenRecovers(t *testing.T) {
	cfg := DefaultConfig("rpc")
	cfg.FailureThreshold = 1
	cfg.Timeout = time.Second
	cb := New(cfg, logger.NewNopLogger())

	now := time.Now()
	cb.now = func() time.Time { return now }

	var transitions []State
	cb.config.OnStateChange = func(_ string, _ State, to State) { transitions = append(transitions, to) }

	ctx := context.Background()
	_ = cb.Execute(ctx, fail)
	assert.Equal(t, StateOpen, cb.State())

	now = now.Add(2 * time.Second)
	assert.NoError(t, cb.Execute(ctx, ok))
	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, []State{StateOpen, StateHalfOpen, StateClosed}, transitions)
}

func TestCircuitBreaker_CanceledIsNotFailure(t *testing.T) {
	cfg := DefaultConfig("rpc")
	cfg.FailureThreshold = 1
	cb := New(cfg, logger.NewNopLogger())

	_ = cb.Execute(context.Background(), func(context.Context) error { return context.Canceled })

	assert.Equal(t, StateClosed, cb.State())
}

func TestManager_GetStats(t *testing.T) {
	m := NewManager(logger.NewNopLogger())

	_ = m.Execute(context.Background(), "ledger-rpc", fail)
	_ = m.Execute(context.Background(), "ledger-rpc", ok)

	stats := m.GetStats()
	assert.Len(t, stats, 1)
	assert.Equal(t, "CLOSED", stats["ledger-rpc"].State)
	assert.Equal(t, uint32(2), stats["ledger-rpc"].TotalRequests)
	assert.Equal(t, uint32(1), stats["ledger-rpc"].TotalFailures)
}
