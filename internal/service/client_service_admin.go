// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Durmanov

package service

import (
	"context"

	"github.com/ndurmanov/medirates/internal/adapter"
	"github.com/ndurmanov/medirates/internal/logger"
	"github.com/ndurmanov/medirates/internal/validators"
	"github.com/ndurmanov/medirates/models"
)

type clientAdminService struct {
	adapter   adapter.RemoteGateway
	syncSvc   ClientSyncService
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientAdminService(gateway adapter.RemoteGateway, syncSvc ClientSyncService, log *logger.Logger) ClientAdminService {
	return &clientAdminService{
		adapter:   gateway,
		syncSvc:   syncSvc,
		validator: validators.NewServiceInputValidator(),
		logger:    log,
	}
}

func (a *clientAdminService) CreateService(ctx context.Context, input models.ServiceInput) (models.Service, error) {
	draft, err := validators.BuildServiceDraft(ctx, a.validator, input)
	if err != nil {
		return models.Service{}, err
	}

	created, err := a.adapter.CreateService(ctx, draft)
	if err != nil {
		return models.Service{}, mapAdapterError(err)
	}

	a.logger.Info().Str("service_id", created.ID).Str("name", created.Name).Msg("service created")
	a.refreshCache(ctx)

	return created, nil
}

func (a *clientAdminService) UpdateService(ctx context.Context, id string, input models.ServiceInput) error {
	draft, err := validators.BuildServiceDraft(ctx, a.validator, input)
	if err != nil {
		return err
	}

	if err = a.adapter.UpdateService(ctx, id, draft); err != nil {
		return mapAdapterError(err)
	}

	a.logger.Info().Str("service_id", id).Msg("service updated")
	a.refreshCache(ctx)

	return nil
}

func (a *clientAdminService) DeleteService(ctx context.Context, id string) error {
	if err := a.adapter.DeleteService(ctx, id); err != nil {
		return mapAdapterError(err)
	}

	a.logger.Info().Str("service_id", id).Msg("service deleted")
	a.refreshCache(ctx)

	return nil
}

// refreshCache brings the local cache in line with the mutation that just
// succeeded. The mutation itself already landed remotely, so a refresh
// failure is logged and not surfaced.
func (a *clientAdminService) refreshCache(ctx context.Context) {
	outcome := a.syncSvc.Trigger(ctx, models.TriggerPostMutation)
	if outcome != models.SyncCompleted {
		a.logger.Warn().Str("outcome", outcome.String()).Msg("cache refresh after mutation did not complete")
	}
}
