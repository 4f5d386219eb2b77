// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Durmanov

// Command devserver is a self-contained stand-in for the hosted backend. It
// serves the same REST and auth surface the client talks to, backed by an
// in-memory price list, so the app can be developed and demoed without
// network access to the real deployment.
package main

import (
	"encoding/json"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ndurmanov/medirates/internal/logger"
	"github.com/ndurmanov/medirates/models"
)

const tokenTTL = time.Hour

type devServer struct {
	logger *logger.Logger
	secret []byte

	adminEmail    string
	adminPassword string

	mu         sync.RWMutex
	categories []models.Category
	services   []models.Service
}

func main() {
	log := logger.NewLogger("medirates-devserver")

	addr := getenv("DEVSERVER_ADDR", ":54321")
	srv := &devServer{
		logger:        log,
		secret:        []byte(getenv("DEVSERVER_JWT_SECRET", "dev-only-secret")),
		adminEmail:    getenv("DEVSERVER_ADMIN_EMAIL", "admin@clinic.test"),
		adminPassword: getenv("DEVSERVER_ADMIN_PASSWORD", "admin"),
	}
	srv.seed()

	log.Info().Str("addr", addr).Msg("devserver listening")
	if err := http.ListenAndServe(addr, srv.routes()); err != nil {
		log.Fatal().Err(err).Msg("devserver stopped")
	}
}

func (s *devServer) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.withLogging)

	router.Group(func(r chi.Router) {
		r.Get("/rest/v1/categories", s.listCategories)
		r.Get("/rest/v1/services", s.listServices)
		r.Post("/auth/v1/token", s.issueToken)
		r.Post("/auth/v1/logout", s.logout)
	})

	router.Group(func(r chi.Router) {
		r.Use(s.requireToken)
		r.Post("/rest/v1/services", s.createService)
		r.Patch("/rest/v1/services", s.updateService)
		r.Delete("/rest/v1/services", s.deleteService)
	})

	return router
}

// ── middleware ───────────────────────────────────────────────────────────────

func (s *devServer) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := s.logger.GetChildLogger()
		start := time.Now()

		next.ServeHTTP(w, r.WithContext(log.WithContext(r.Context())))

		log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Dur("duration", time.Since(start)).
			Send()
	})
}

func (s *devServer) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if raw == "" {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return s.secret, nil
		})
		if err != nil || !token.Valid {
			http.Error(w, "invalid or expired token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ── auth ─────────────────────────────────────────────────────────────────────

func (s *devServer) issueToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if r.URL.Query().Get("grant_type") != "password" {
		http.Error(w, "unsupported grant type", http.StatusBadRequest)
		return
	}

	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if creds.Email != s.adminEmail || creds.Password != s.adminPassword {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
		return
	}

	userID := uuid.NewString()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": creds.Email,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		log.Err(err).Msg("token signing failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"access_token": signed,
		"token_type":   "bearer",
		"expires_in":   int64(tokenTTL.Seconds()),
		"user":         map[string]string{"id": userID, "email": creds.Email},
	})
}

func (s *devServer) logout(w http.ResponseWriter, _ *http.Request) {
	// tokens are stateless here, nothing to revoke
	w.WriteHeader(http.StatusNoContent)
}

// ── catalog ──────────────────────────────────────────────────────────────────

func (s *devServer) listCategories(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	items := make([]models.Category, len(s.categories))
	copy(items, s.categories)
	s.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	writeJSON(w, http.StatusOK, items)
}

func (s *devServer) listServices(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	items := make([]models.Service, len(s.services))
	copy(items, s.services)
	s.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	writeJSON(w, http.StatusOK, items)
}

func (s *devServer) createService(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var row models.Service
	if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if row.CreatedAt == "" {
		row.CreatedAt = now
	}
	row.UpdatedAt = now

	s.mu.Lock()
	s.services = append(s.services, row)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, row)
}

func (s *devServer) updateService(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := idFilter(r)
	if !ok {
		http.Error(w, "missing id filter", http.StatusBadRequest)
		return
	}

	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.services {
		if s.services[i].ID != id {
			continue
		}
		applyPatch(&s.services[i], patch)
		s.services[i].UpdatedAt = time.Now().UTC().Format(time.RFC3339)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	http.Error(w, "service not found", http.StatusNotFound)
}

func (s *devServer) deleteService(w http.ResponseWriter, r *http.Request) {
	id, ok := idFilter(r)
	if !ok {
		http.Error(w, "missing id filter", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.services {
		if s.services[i].ID != id {
			continue
		}
		s.services = append(s.services[:i], s.services[i+1:]...)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	http.Error(w, "service not found", http.StatusNotFound)
}

// ── helpers ──────────────────────────────────────────────────────────────────

// idFilter extracts the row id from a PostgREST-style "id=eq.<uuid>" query.
func idFilter(r *http.Request) (string, bool) {
	raw := r.URL.Query().Get("id")
	if !strings.HasPrefix(raw, "eq.") {
		return "", false
	}
	id := strings.TrimPrefix(raw, "eq.")
	return id, id != ""
}

func applyPatch(row *models.Service, patch map[string]any) {
	if v, ok := patch["name"].(string); ok {
		row.Name = v
	}
	if v, ok := patch["price"].(float64); ok {
		row.Price = v
	}
	if v, ok := patch["category_id"].(string); ok {
		row.CategoryID = &v
	}
	if v, ok := patch["description"]; ok {
		if text, isString := v.(string); isString && text != "" {
			row.Description = &text
		} else {
			row.Description = nil
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (s *devServer) seed() {
	now := time.Now().UTC().Format(time.RFC3339)

	radiology := models.Category{ID: uuid.NewString(), Name: "Radiology", Icon: strPtr("🩻"), CreatedAt: now, UpdatedAt: now}
	laboratory := models.Category{ID: uuid.NewString(), Name: "Laboratory", Icon: strPtr("🧪"), CreatedAt: now, UpdatedAt: now}
	consultations := models.Category{ID: uuid.NewString(), Name: "Consultations", Icon: strPtr("🩺"), CreatedAt: now, UpdatedAt: now}
	s.categories = []models.Category{radiology, laboratory, consultations}

	s.services = []models.Service{
		{ID: uuid.NewString(), CategoryID: &radiology.ID, Name: "Chest X-Ray", Price: 45, Description: strPtr("Two-view chest radiograph"), CreatedAt: now, UpdatedAt: now},
		{ID: uuid.NewString(), CategoryID: &radiology.ID, Name: "Head MRI", Price: 420, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.NewString(), CategoryID: &laboratory.ID, Name: "Complete Blood Count", Price: 32.5, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.NewString(), CategoryID: &laboratory.ID, Name: "Lipid Panel", Price: 28, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.NewString(), CategoryID: &consultations.ID, Name: "General Practitioner Visit", Price: 60, CreatedAt: now, UpdatedAt: now},
	}
}

func strPtr(s string) *string { return &s }

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
