// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Durmanov

package service

import (
	"context"
	"time"

	"github.com/ndurmanov/medirates/models"
)

// ClientCatalogService defines the read-only contract the directory screens
// are built on. All reads are served from the local cache; when the cache has
// never been populated a bundled category list keeps the filter bar usable.
type ClientCatalogService interface {
	// Services returns every cached service joined with its category,
	// ordered by category name and then by service name.
	Services(ctx context.Context) []models.ServiceWithCategory

	// Categories returns the cached categories ordered by name. When the
	// cache is empty the bundled defaults are returned instead so the
	// category filter is never blank on a fresh install.
	Categories(ctx context.Context) []models.Category

	// Search returns cached services whose name, description or category
	// name contains query, matched case-insensitively.
	Search(ctx context.Context, query string) []models.ServiceWithCategory

	// ServicesByCategory returns cached services linked to the given
	// category, ordered by name.
	ServicesByCategory(ctx context.Context, categoryID string) []models.Service

	// HasLocalData reports whether the cache has ever been populated.
	HasLocalData(ctx context.Context) bool
}

// ClientAdminService defines the contract for price-list mutations. Every
// mutation goes to the remote store first and, on success, schedules a sync so
// the local cache catches up.
type ClientAdminService interface {
	// CreateService validates the raw form input and creates the service
	// in the remote store. Returns the created row or a validation or
	// transport error.
	CreateService(ctx context.Context, input models.ServiceInput) (models.Service, error)

	// UpdateService validates the raw form input and updates the remote
	// service identified by id.
	UpdateService(ctx context.Context, id string, input models.ServiceInput) error

	// DeleteService removes the remote service identified by id.
	DeleteService(ctx context.Context, id string) error
}

// ClientAuthService defines the client-side contract for admin sign-in and
// sign-out against the remote auth service.
type ClientAuthService interface {
	// SignIn authenticates with an email and password and stores the
	// resulting session for subsequent admin mutations.
	SignIn(ctx context.Context, email, password string) (models.Session, error)

	// SignOut revokes the current session. The local session is always
	// dropped, even when revocation fails.
	SignOut(ctx context.Context) error

	// Session returns a copy of the current session, or nil when signed out.
	Session() *models.Session

	// OnSessionChange registers an observer for sign-in and sign-out
	// events and returns its unsubscribe function.
	OnSessionChange(fn func(event models.AuthEvent, session *models.Session)) func()
}

// ClientSyncService defines the contract for refreshing the local cache from
// the remote store. A sync replaces the whole cache atomically; a failed sync
// leaves the previous cache contents untouched.
type ClientSyncService interface {
	// Trigger runs one cache refresh and reports how it ended. Triggers
	// arriving while a refresh is already running are coalesced into it.
	Trigger(ctx context.Context, reason models.TriggerReason) models.SyncOutcome

	// State returns the current lifecycle state of the synchroniser.
	State() models.SyncState

	// OnStateChange registers an observer for state transitions and
	// returns its unsubscribe function.
	OnStateChange(fn func(state models.SyncState)) func()
}

// ClientSyncJob defines the contract for a background worker that triggers a
// scheduled sync on a fixed interval.
type ClientSyncJob interface {
	// Start launches the background goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}

// ConnectivitySource reports the device's network reachability. The zero
// moments right after startup may report ConnectivityUnknown until the first
// probe completes.
type ConnectivitySource interface {
	// Current returns the last observed connectivity state.
	Current() models.Connectivity
}
