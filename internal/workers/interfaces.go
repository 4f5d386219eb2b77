// Package workers holds the client's background goroutines: the network
// reachability watcher feeding the sync layer its tri-state connectivity
// signal.
package workers

import (
	"context"

	"github.com/ndurmanov/medirates/models"
)

// Probe answers whether the network is reachable right now.
type Probe interface {
	// Check reports reachability. Implementations must honour ctx
	// cancellation and never block past their own timeout.
	Check(ctx context.Context) bool
}

// ConnectivityWatcher runs a Probe on an interval and exposes the last
// observed state. Until the first probe completes the state is
// ConnectivityUnknown.
type ConnectivityWatcher interface {
	// Start launches the probing goroutine. The first probe runs
	// immediately, subsequent ones on the configured interval.
	Start(ctx context.Context)

	// Stop signals the goroutine to exit and blocks until it has.
	Stop()

	// Current returns the last observed connectivity state.
	Current() models.Connectivity

	// OnChange registers an observer for state transitions and returns
	// its unsubscribe function.
	OnChange(fn func(state models.Connectivity)) func()
}
