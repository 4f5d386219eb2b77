package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndurmanov/medirates/internal/config"
	"github.com/ndurmanov/medirates/internal/logger"
	"github.com/ndurmanov/medirates/models"
)

func newTestGateway(t *testing.T, handler http.Handler) RemoteGateway {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := logger.Nop()
	gw, err := NewHTTPRemoteGateway(config.ClientAPI{
		BaseURL:        srv.URL,
		AnonKey:        "test-anon-key",
		RequestTimeout: 5 * time.Second,
	}, log)
	require.NoError(t, err)

	return gw
}

func signIn(t *testing.T, gw RemoteGateway) models.Session {
	t.Helper()

	session, err := gw.SignInWithPassword(context.Background(), "admin@clinic.test", "secret")
	require.NoError(t, err)
	return session
}

// authMux serves a fixed token endpoint plus whatever routes the test adds.
func authMux(t *testing.T) *http.ServeMux {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/v1/token", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "opaque-token",
			"token_type":   "bearer",
			"expires_in":   3600,
			"user":         map[string]string{"id": "u-1", "email": "admin@clinic.test"},
		})
	})
	return mux
}

func TestNewHTTPRemoteGateway_RequiresBaseURL(t *testing.T) {
	_, err := NewHTTPRemoteGateway(config.ClientAPI{}, logger.Nop())
	assert.Error(t, err)
}

func TestHTTPRemoteGateway_FetchAllCategories(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /rest/v1/categories", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "name", r.URL.Query().Get("order"))
		_ = json.NewEncoder(w).Encode([]models.Category{
			{ID: "c-1", Name: "Laboratory"},
			{ID: "c-2", Name: "Radiology"},
		})
	})
	gw := newTestGateway(t, mux)

	categories, err := gw.FetchAllCategories(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Laboratory", categories[0].Name)
}

func TestHTTPRemoteGateway_FetchAllServices_ServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /rest/v1/services", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "database unreachable", http.StatusInternalServerError)
	})
	gw := newTestGateway(t, mux)

	_, err := gw.FetchAllServices(context.Background())

	assert.ErrorIs(t, err, ErrServerUnavailable)
}

func TestHTTPRemoteGateway_CreateService_RequiresSession(t *testing.T) {
	gw := newTestGateway(t, http.NewServeMux())

	_, err := gw.CreateService(context.Background(), models.ServiceDraft{
		Name:       "MRI Scan",
		CategoryID: "c-2",
		Price:      420,
	})

	// fail fast: no network round trip is attempted without a session
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestHTTPRemoteGateway_CreateService(t *testing.T) {
	mux := authMux(t)

	var gotAuth string
	mux.HandleFunc("POST /rest/v1/services", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		var row models.Service
		require.NoError(t, json.NewDecoder(r.Body).Decode(&row))
		assert.NotEmpty(t, row.ID)
		assert.Equal(t, "MRI Scan", row.Name)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(row)
	})
	gw := newTestGateway(t, mux)
	signIn(t, gw)

	created, err := gw.CreateService(context.Background(), models.ServiceDraft{
		Name:       "MRI Scan",
		CategoryID: "c-2",
		Price:      420,
	})

	require.NoError(t, err)
	assert.Equal(t, "Bearer opaque-token", gotAuth)
	assert.Equal(t, "MRI Scan", created.Name)
	require.NotNil(t, created.CategoryID)
	assert.Equal(t, "c-2", *created.CategoryID)
}

func TestHTTPRemoteGateway_UpdateService(t *testing.T) {
	mux := authMux(t)
	mux.HandleFunc("PATCH /rest/v1/services", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "eq.s-1", r.URL.Query().Get("id"))
		w.WriteHeader(http.StatusNoContent)
	})
	gw := newTestGateway(t, mux)
	signIn(t, gw)

	err := gw.UpdateService(context.Background(), "s-1", models.ServiceDraft{
		Name:       "MRI Scan",
		CategoryID: "c-2",
		Price:      450,
	})

	assert.NoError(t, err)
}

func TestHTTPRemoteGateway_DeleteService_NotFound(t *testing.T) {
	mux := authMux(t)
	mux.HandleFunc("DELETE /rest/v1/services", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	gw := newTestGateway(t, mux)
	signIn(t, gw)

	err := gw.DeleteService(context.Background(), "s-404")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPRemoteGateway_SignInWithPassword_InvalidCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/v1/token", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	})
	gw := newTestGateway(t, mux)

	_, err := gw.SignInWithPassword(context.Background(), "admin@clinic.test", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, gw.CurrentSession())
}

func TestHTTPRemoteGateway_SessionLifecycle(t *testing.T) {
	mux := authMux(t)
	mux.HandleFunc("POST /auth/v1/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	gw := newTestGateway(t, mux)

	var (
		mu     sync.Mutex
		events []models.AuthEvent
	)
	unsubscribe := gw.OnSessionChange(func(event models.AuthEvent, _ *models.Session) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, event)
	})
	defer unsubscribe()

	session := signIn(t, gw)
	assert.Equal(t, "admin@clinic.test", session.Email)
	assert.True(t, session.ExpiresAt.After(time.Now()))

	current := gw.CurrentSession()
	require.NotNil(t, current)
	assert.Equal(t, session.AccessToken, current.AccessToken)

	require.NoError(t, gw.SignOut(context.Background()))
	assert.Nil(t, gw.CurrentSession())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []models.AuthEvent{models.AuthSignedIn, models.AuthSignedOut}, events)
}

func TestHTTPRemoteGateway_SignOut_DropsSessionOnServerError(t *testing.T) {
	mux := authMux(t)
	mux.HandleFunc("POST /auth/v1/logout", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "revocation failed", http.StatusInternalServerError)
	})
	gw := newTestGateway(t, mux)
	signIn(t, gw)

	err := gw.SignOut(context.Background())

	assert.Error(t, err)
	assert.Nil(t, gw.CurrentSession())
}

func TestHTTPRemoteGateway_OnSessionChange_Unsubscribe(t *testing.T) {
	gw := newTestGateway(t, authMux(t))

	calls := 0
	unsubscribe := gw.OnSessionChange(func(models.AuthEvent, *models.Session) { calls++ })
	unsubscribe()

	signIn(t, gw)

	assert.Zero(t, calls)
}
