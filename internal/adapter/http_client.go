package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ndurmanov/medirates/internal/config"
	"github.com/ndurmanov/medirates/internal/logger"
	"github.com/ndurmanov/medirates/internal/utils"
	"github.com/ndurmanov/medirates/models"
)

type httpRemoteGateway struct {
	client  *resty.Client
	anonKey string
	ids     *utils.UUIDGenerator
	logger  *logger.Logger

	mu      sync.RWMutex
	session *models.Session
	subs    map[int]func(event models.AuthEvent, session *models.Session)
	nextSub int
}

// NewHTTPRemoteGateway builds a [RemoteGateway] talking to the hosted API at
// cfg.BaseURL. The anon key is attached to every request; authenticated
// requests additionally carry the session's bearer token.
func NewHTTPRemoteGateway(cfg config.ClientAPI, log *logger.Logger) (RemoteGateway, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("remote gateway: base URL is required")
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetHeader("apikey", cfg.AnonKey)

	return &httpRemoteGateway{
		client:  cli,
		anonKey: cfg.AnonKey,
		ids:     utils.NewUUIDGenerator(),
		logger:  log,
		subs:    make(map[int]func(event models.AuthEvent, session *models.Session)),
	}, nil
}

func (h *httpRemoteGateway) FetchAllCategories(ctx context.Context) ([]models.Category, error) {
	resp, err := h.request(ctx).
		SetQueryParam("select", "*").
		SetQueryParam("order", "name").
		Get("/rest/v1/categories")
	if err != nil {
		return nil, fmt.Errorf("fetch categories request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.Category
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode categories response: %w", err)
	}

	h.logger.Debug().Str("func", "FetchAllCategories").Int("count", len(items)).Msg("fetched categories")
	return items, nil
}

func (h *httpRemoteGateway) FetchAllServices(ctx context.Context) ([]models.Service, error) {
	resp, err := h.request(ctx).
		SetQueryParam("select", "*").
		SetQueryParam("order", "name").
		Get("/rest/v1/services")
	if err != nil {
		return nil, fmt.Errorf("fetch services request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.Service
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode services response: %w", err)
	}

	h.logger.Debug().Str("func", "FetchAllServices").Int("count", len(items)).Msg("fetched services")
	return items, nil
}

func (h *httpRemoteGateway) CreateService(ctx context.Context, draft models.ServiceDraft) (models.Service, error) {
	if !h.hasValidSession() {
		return models.Service{}, ErrNotAuthenticated
	}

	now := time.Now().UTC().Format(time.RFC3339)
	row := models.Service{
		ID:          h.ids.Generate(),
		CategoryID:  &draft.CategoryID,
		Name:        draft.Name,
		Price:       draft.Price,
		Description: draft.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "return=representation").
		SetBody(row).
		Post("/rest/v1/services")
	if err != nil {
		return models.Service{}, fmt.Errorf("create service request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Service{}, err
	}

	var created models.Service
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		// some deployments answer 201 with an empty body; the row we sent
		// is then authoritative until the next sync
		return row, nil
	}

	return created, nil
}

func (h *httpRemoteGateway) UpdateService(ctx context.Context, id string, draft models.ServiceDraft) error {
	if !h.hasValidSession() {
		return ErrNotAuthenticated
	}

	patch := map[string]any{
		"name":        draft.Name,
		"category_id": draft.CategoryID,
		"price":       draft.Price,
		"description": draft.Description,
		"updated_at":  time.Now().UTC().Format(time.RFC3339),
	}

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("id", "eq."+id).
		SetBody(patch).
		Patch("/rest/v1/services")
	if err != nil {
		return fmt.Errorf("update service request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteGateway) DeleteService(ctx context.Context, id string) error {
	if !h.hasValidSession() {
		return ErrNotAuthenticated
	}

	resp, err := h.request(ctx).
		SetQueryParam("id", "eq."+id).
		Delete("/rest/v1/services")
	if err != nil {
		return fmt.Errorf("delete service request: %w", err)
	}

	return mapHTTPError(resp)
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	User        struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

func (h *httpRemoteGateway) SignInWithPassword(ctx context.Context, email, password string) (models.Session, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("grant_type", "password").
		SetBody(map[string]string{"email": email, "password": password}).
		Post("/auth/v1/token")
	if err != nil {
		return models.Session{}, fmt.Errorf("sign-in request: %w", err)
	}
	if code := resp.StatusCode(); code == http.StatusBadRequest || code == http.StatusUnauthorized {
		return models.Session{}, ErrInvalidCredentials
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	var tr tokenResponse
	if err = json.Unmarshal(resp.Body(), &tr); err != nil {
		return models.Session{}, fmt.Errorf("decode sign-in response: %w", err)
	}
	if tr.AccessToken == "" {
		return models.Session{}, fmt.Errorf("sign-in response carries no access token")
	}

	session := models.Session{
		AccessToken: tr.AccessToken,
		TokenType:   tr.TokenType,
		ExpiresAt:   sessionExpiry(tr),
		UserID:      tr.User.ID,
		Email:       tr.User.Email,
	}

	h.setSession(&session)
	h.notify(models.AuthSignedIn, &session)

	return session, nil
}

func (h *httpRemoteGateway) SignOut(ctx context.Context) error {
	session := h.CurrentSession()
	if session == nil {
		return nil
	}

	resp, err := h.request(ctx).Post("/auth/v1/logout")

	// the local session is dropped regardless: a failed revocation must not
	// leave the client believing it is still signed in
	h.setSession(nil)
	h.notify(models.AuthSignedOut, nil)

	if err != nil {
		return fmt.Errorf("sign-out request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpRemoteGateway) CurrentSession() *models.Session {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.session == nil {
		return nil
	}
	copied := *h.session
	return &copied
}

func (h *httpRemoteGateway) OnSessionChange(fn func(event models.AuthEvent, session *models.Session)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextSub
	h.nextSub++
	h.subs[id] = fn

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs, id)
	}
}

func (h *httpRemoteGateway) setSession(session *models.Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.session = session
}

func (h *httpRemoteGateway) hasValidSession() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.session.Valid()
}

func (h *httpRemoteGateway) notify(event models.AuthEvent, session *models.Session) {
	h.mu.RLock()
	observers := make([]func(models.AuthEvent, *models.Session), 0, len(h.subs))
	for _, fn := range h.subs {
		observers = append(observers, fn)
	}
	h.mu.RUnlock()

	for _, fn := range observers {
		fn(event, session)
	}
}

// request returns a context-bound request carrying the anon key and, when a
// session is held, its bearer token.
func (h *httpRemoteGateway) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if session := h.CurrentSession(); session != nil && session.AccessToken != "" {
		req.SetHeader("Authorization", "Bearer "+session.AccessToken)
	} else if h.anonKey != "" {
		req.SetHeader("Authorization", "Bearer "+h.anonKey)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return ErrUnauthorized
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusConflict:
		return ErrConflict
	case code >= http.StatusInternalServerError:
		if body == "" {
			body = http.StatusText(code)
		}
		return fmt.Errorf("%w: http %d: %s", ErrServerUnavailable, code, body)
	}

	if body == "" {
		body = http.StatusText(code)
	}
	return fmt.Errorf("http %d: %s", code, body)
}

// sessionExpiry prefers the exp claim embedded in the access token and falls
// back to the advertised expires_in window.
func sessionExpiry(tr tokenResponse) time.Time {
	token, _, err := jwt.NewParser().ParseUnverified(tr.AccessToken, jwt.MapClaims{})
	if err == nil {
		if exp, expErr := token.Claims.GetExpirationTime(); expErr == nil && exp != nil {
			return exp.Time
		}
	}
	if tr.ExpiresIn > 0 {
		return time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	}
	return time.Time{}
}
