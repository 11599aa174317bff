// internal/poller/poller.go

// Package poller implements the fixed-interval, overlap-suppressed fetch
// loop shared by the room-list watcher and the session heartbeat.
package poller

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// Poller runs Fetch on a fixed Interval with an in-flight guard: a tick that
// fires while a fetch is outstanding is skipped, not queued. The guard is a
// non-blocking try-lock, so at most one fetch per Poller exists at any
// instant and responses apply in arrival order.
type Poller struct {
	Interval time.Duration
	Fetch    func(ctx context.Context) error
	Log      *logrus.Logger

	inFlight atomic.Bool
}

// Run fetches immediately, then on every tick until ctx is canceled. Fetch
// errors are logged and swallowed; a failed cycle never stops the loop.
// Fetch receives ctx and must not apply results once ctx is canceled.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	p.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

// tick starts one fetch unless one is already in flight. The fetch runs on
// its own goroutine so a hung request delays only later fetches, never the
// tick source itself.
func (p *Poller) tick(ctx context.Context) {
	if !p.inFlight.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer p.inFlight.Store(false)
		if err := p.Fetch(ctx); err != nil && ctx.Err() == nil && p.Log != nil {
			p.Log.WithError(err).Warn("poll cycle failed")
		}
	}()
}
