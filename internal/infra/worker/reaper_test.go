//go:build unit

package worker_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"ecommerce-api/internal/infra/worker"
	"ecommerce-api/internal/pkg/clock"
	"ecommerce-api/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

type countingDeleter struct {
	calls  atomic.Int64
	called chan struct{}
}

func (d *countingDeleter) DeleteExpired(_ context.Context, _ time.Time) (int64, error) {
	if d.calls.Add(1) == 1 {
		close(d.called)
	}
	return 1, nil
}

func TestReaperSweepsOnInterval(t *testing.T) {
	deleter := &countingDeleter{called: make(chan struct{})}
	cfg := config.EventsConfig{TTL: 300 * time.Second, ReapInterval: 10 * time.Millisecond}

	r := worker.NewReaper(deleter, clock.NewRealClock(), cfg)
	r.Start()

	select {
	case <-deleter.called:
	case <-time.After(2 * time.Second):
		t.Fatal("reaper never swept")
	}

	r.Stop()
	after := deleter.calls.Load()
	assert.GreaterOrEqual(t, after, int64(1))

	// No sweeps once stopped
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, deleter.calls.Load())
}
