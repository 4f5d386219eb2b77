// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Durmanov

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/ndurmanov/medirates/internal/adapter"
	"github.com/ndurmanov/medirates/internal/logger"
	"github.com/ndurmanov/medirates/internal/store"
	"github.com/ndurmanov/medirates/models"
)

type clientSyncService struct {
	localStore   store.CatalogRepository
	adapter      adapter.RemoteGateway
	connectivity ConnectivitySource
	logger       *logger.Logger

	// inFlight serialises refreshes: a trigger that cannot take the lock
	// is coalesced into the refresh already running.
	inFlight sync.Mutex

	mu      sync.RWMutex
	state   models.SyncState
	subs    map[int]func(state models.SyncState)
	nextSub int
}

func NewClientSyncService(localStore store.CatalogRepository, gateway adapter.RemoteGateway, connectivity ConnectivitySource, log *logger.Logger) ClientSyncService {
	return &clientSyncService{
		localStore:   localStore,
		adapter:      gateway,
		connectivity: connectivity,
		logger:       log,
		state:        models.SyncIdle,
		subs:         make(map[int]func(state models.SyncState)),
	}
}

func (s *clientSyncService) Trigger(ctx context.Context, reason models.TriggerReason) models.SyncOutcome {
	log := s.logger.GetChildLogger()

	if !s.inFlight.TryLock() {
		log.Debug().Str("reason", string(reason)).Msg("sync already running, trigger coalesced")
		return models.SyncCoalesced
	}
	defer s.inFlight.Unlock()

	switch s.connectivity.Current() {
	case models.ConnectivityUnknown:
		log.Debug().Str("reason", string(reason)).Msg("connectivity not yet known, sync deferred")
		return models.SyncDeferred
	case models.ConnectivityOffline:
		log.Info().Str("reason", string(reason)).Msg("device offline, serving cached data")
		return models.SyncSkippedOffline
	}

	s.setState(models.SyncSyncing)

	snapshot, err := s.fetchSnapshot(ctx)
	if err != nil {
		log.Error().Err(err).Str("reason", string(reason)).Msg("remote fetch failed, keeping cached data")
		s.setState(models.SyncFailed)
		return models.SyncSoftFailed
	}

	if err = s.localStore.ReplaceAll(ctx, snapshot); err != nil {
		log.Error().Err(err).Str("reason", string(reason)).Msg("cache replace failed, keeping cached data")
		s.setState(models.SyncFailed)
		return models.SyncSoftFailed
	}

	log.Info().
		Str("reason", string(reason)).
		Int("categories", len(snapshot.Categories)).
		Int("services", len(snapshot.Services)).
		Msg("cache refreshed")
	s.setState(models.SyncSynced)

	return models.SyncCompleted
}

func (s *clientSyncService) State() models.SyncState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *clientSyncService) OnStateChange(fn func(state models.SyncState)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// fetchSnapshot pulls both remote tables concurrently and sanitises the
// result into a snapshot safe to persist.
func (s *clientSyncService) fetchSnapshot(ctx context.Context) (models.Snapshot, error) {
	var (
		wg          sync.WaitGroup
		categories  []models.Category
		services    []models.Service
		categoryErr error
		serviceErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		categories, categoryErr = s.adapter.FetchAllCategories(ctx)
	}()
	go func() {
		defer wg.Done()
		services, serviceErr = s.adapter.FetchAllServices(ctx)
	}()
	wg.Wait()

	if categoryErr != nil {
		return models.Snapshot{}, fmt.Errorf("fetch categories: %w", categoryErr)
	}
	if serviceErr != nil {
		return models.Snapshot{}, fmt.Errorf("fetch services: %w", serviceErr)
	}

	return s.sanitize(categories, services), nil
}

// sanitize drops services that reference a category missing from the same
// snapshot and normalises blank descriptions to NULL. A dangling reference
// would otherwise fail the cache's foreign key check and void the whole
// refresh.
func (s *clientSyncService) sanitize(categories []models.Category, services []models.Service) models.Snapshot {
	known := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		known[c.ID] = struct{}{}
	}

	kept := make([]models.Service, 0, len(services))
	for _, svc := range services {
		if svc.CategoryID == nil {
			s.logger.Warn().Str("service_id", svc.ID).Msg("dropping service without a category")
			continue
		}
		if _, ok := known[*svc.CategoryID]; !ok {
			s.logger.Warn().
				Str("service_id", svc.ID).
				Str("category_id", *svc.CategoryID).
				Msg("dropping service referencing unknown category")
			continue
		}

		if svc.Description != nil {
			if trimmed := strings.TrimSpace(*svc.Description); trimmed == "" {
				svc.Description = nil
			} else {
				svc.Description = &trimmed
			}
		}

		kept = append(kept, svc)
	}

	return models.Snapshot{Categories: categories, Services: kept}
}

func (s *clientSyncService) setState(state models.SyncState) {
	s.mu.Lock()
	if s.state == state {
		s.mu.Unlock()
		return
	}
	s.state = state

	observers := make([]func(models.SyncState), 0, len(s.subs))
	for _, fn := range s.subs {
		observers = append(observers, fn)
	}
	s.mu.Unlock()

	for _, fn := range observers {
		fn(state)
	}
}
