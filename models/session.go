package models

import "time"

// Session is an authenticated admin session issued by the remote auth
// service. The access token is attached as a bearer credential to admin
// mutations; guests browse without any session.
type Session struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
}

// Valid reports whether the session carries a token that has not expired.
func (s *Session) Valid() bool {
	if s == nil || s.AccessToken == "" {
		return false
	}
	if s.ExpiresAt.IsZero() {
		return true
	}
	return time.Now().Before(s.ExpiresAt)
}

// AuthEvent describes a session lifecycle change delivered to observers.
type AuthEvent string

const (
	AuthSignedIn  AuthEvent = "SIGNED_IN"
	AuthSignedOut AuthEvent = "SIGNED_OUT"
)
