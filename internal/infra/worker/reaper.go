package worker

import (
	"context"
	"log/slog"
	"time"

	"ecommerce-api/internal/pkg/clock"
	"ecommerce-api/internal/pkg/config"
)

// ExpiredDeleter removes event rows whose expiry has passed.
type ExpiredDeleter interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// Reaper sweeps expired events on a fixed interval. It is the only component
// allowed to delete from the event table.
type Reaper struct {
	store    ExpiredDeleter
	clock    clock.Clock
	interval time.Duration
	done     chan struct{}
	stopped  chan struct{}
}

func NewReaper(store ExpiredDeleter, c clock.Clock, cfg config.EventsConfig) *Reaper {
	return &Reaper{
		store:    store,
		clock:    c,
		interval: cfg.ReapInterval,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

func (r *Reaper) Start() {
	go r.run()
}

func (r *Reaper) Stop() {
	close(r.done)
	<-r.stopped
}

func (r *Reaper) run() {
	defer close(r.stopped)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.done:
			return
		case <-ticker.C:
			r.sweep()
		}
	}
}

func (r *Reaper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), r.interval)
	defer cancel()

	removed, err := r.store.DeleteExpired(ctx, r.clock.Now().UTC())
	if err != nil {
		slog.Error("failed to reap expired events", "error", err)
		return
	}
	if removed > 0 {
		slog.Debug("reaped expired events", "count", removed)
	}
}
