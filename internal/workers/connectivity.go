// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Durmanov

package workers

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/ndurmanov/medirates/internal/logger"
	"github.com/ndurmanov/medirates/models"
)

const dialProbeTimeout = 3 * time.Second

// dialProbe checks reachability by opening a TCP connection to a well-known
// address. The payload is never read; a successful dial is the signal.
type dialProbe struct {
	address string
}

// NewDialProbe returns a Probe dialling address ("host:port").
func NewDialProbe(address string) Probe {
	return &dialProbe{address: address}
}

func (p *dialProbe) Check(ctx context.Context) bool {
	dialer := net.Dialer{Timeout: dialProbeTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", p.address)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

type connectivityWatcher struct {
	probe    Probe
	interval time.Duration
	logger   *logger.Logger

	mu      sync.RWMutex
	state   models.Connectivity
	subs    map[int]func(state models.Connectivity)
	nextSub int

	runMu  sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewConnectivityWatcher creates a watcher that runs probe every interval,
// defaulting to 10 seconds if interval is zero or negative. The watcher is
// idle until Start is called.
func NewConnectivityWatcher(probe Probe, interval time.Duration, log *logger.Logger) ConnectivityWatcher {
	if interval <= 0 {
		interval = 10 * time.Second
	}

	return &connectivityWatcher{
		probe:    probe,
		interval: interval,
		logger:   log,
		state:    models.ConnectivityUnknown,
		subs:     make(map[int]func(state models.Connectivity)),
	}
}

func (w *connectivityWatcher) Start(ctx context.Context) {
	w.Stop()

	w.runMu.Lock()
	watchCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.runMu.Unlock()

	go func() {
		defer w.wg.Done()

		w.observe(w.check(watchCtx))

		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-watchCtx.Done():
				return
			case <-t.C:
				w.observe(w.check(watchCtx))
			}
		}
	}()
}

func (w *connectivityWatcher) Stop() {
	w.runMu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.runMu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *connectivityWatcher) Current() models.Connectivity {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.state
}

func (w *connectivityWatcher) OnChange(fn func(state models.Connectivity)) func() {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextSub
	w.nextSub++
	w.subs[id] = fn

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.subs, id)
	}
}

func (w *connectivityWatcher) check(ctx context.Context) models.Connectivity {
	if w.probe.Check(ctx) {
		return models.ConnectivityOnline
	}
	// a cancelled probe is not evidence of being offline
	if ctx.Err() != nil {
		return w.Current()
	}
	return models.ConnectivityOffline
}

// observe records the probed state and notifies observers on transitions.
func (w *connectivityWatcher) observe(state models.Connectivity) {
	w.mu.Lock()
	if w.state == state {
		w.mu.Unlock()
		return
	}
	previous := w.state
	w.state = state

	observers := make([]func(models.Connectivity), 0, len(w.subs))
	for _, fn := range w.subs {
		observers = append(observers, fn)
	}
	w.mu.Unlock()

	w.logger.Info().
		Str("from", previous.String()).
		Str("to", state.String()).
		Msg("connectivity changed")

	for _, fn := range observers {
		fn(state)
	}
}
