package adapter

import "errors"

// Sentinel errors returned by gateway methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotAuthenticated is returned by admin mutations when no valid
	// session is held. The request is rejected before reaching the network.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidCredentials is returned by SignInWithPassword when the
	// server rejects the email/password pair.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthorized is returned when the server rejects a request's
	// credentials (e.g. an expired or revoked session token).
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrNotFound is returned when the target row does not exist on the
	// remote store.
	ErrNotFound = errors.New("remote row not found")

	// ErrConflict is returned when a mutation violates a remote constraint
	// (e.g. a duplicate name).
	ErrConflict = errors.New("remote conflict")

	// ErrServerUnavailable is returned for 5xx responses.
	ErrServerUnavailable = errors.New("remote server unavailable")
)
