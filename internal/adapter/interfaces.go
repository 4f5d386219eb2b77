package adapter

import (
	"context"

	"github.com/ndurmanov/medirates/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteGateway is the typed accessor over the hosted catalog and auth API.
// Every method normalizes network and server failures into returned errors
// (sentinels from this package where the condition is well-known); nothing
// panics or throws across this boundary.
type RemoteGateway interface {
	// FetchAllCategories reads the full category collection, ordered by
	// name on the server side.
	FetchAllCategories(ctx context.Context) ([]models.Category, error)

	// FetchAllServices reads the full service collection, ordered by name
	// on the server side.
	FetchAllServices(ctx context.Context) ([]models.Service, error)

	// CreateService inserts a new service row on the remote store and
	// returns it as persisted. Admin only: fails fast with
	// [ErrNotAuthenticated] before any network call when no valid session
	// is held.
	CreateService(ctx context.Context, draft models.ServiceDraft) (models.Service, error)

	// UpdateService replaces the mutable fields of an existing service and
	// always stamps a fresh updated_at. Admin only, same fail-fast rule.
	UpdateService(ctx context.Context, id string, draft models.ServiceDraft) error

	// DeleteService removes a service row. Admin only, same fail-fast rule.
	DeleteService(ctx context.Context, id string) error

	// SignInWithPassword exchanges email+password for a session. Invalid
	// credentials surface as [ErrInvalidCredentials].
	SignInWithPassword(ctx context.Context, email, password string) (models.Session, error)

	// SignOut revokes the current session, if any, and notifies observers.
	SignOut(ctx context.Context) error

	// CurrentSession returns the held session or nil. The returned value is
	// a copy; mutating it does not affect the gateway.
	CurrentSession() *models.Session

	// OnSessionChange registers an observer for session lifecycle events
	// and returns an unsubscribe function. Observers are invoked
	// synchronously on sign-in and sign-out.
	OnSessionChange(fn func(event models.AuthEvent, session *models.Session)) func()
}
