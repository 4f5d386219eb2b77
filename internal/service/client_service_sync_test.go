// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikolai Durmanov

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ndurmanov/medirates/internal/logger"
	"github.com/ndurmanov/medirates/internal/mock"
	"github.com/ndurmanov/medirates/models"
)

// stubConnectivity is a fixed-value ConnectivitySource, no mockgen needed.
type stubConnectivity struct {
	state models.Connectivity
}

func (s *stubConnectivity) Current() models.Connectivity { return s.state }

func newTestSyncSvc(
	t *testing.T,
	ctrl *gomock.Controller,
	conn models.Connectivity,
) (
	*clientSyncService,
	*mock.MockCatalogRepository,
	*mock.MockRemoteGateway,
) {
	t.Helper()
	mockRepo := mock.NewMockCatalogRepository(ctrl)
	mockGateway := mock.NewMockRemoteGateway(ctrl)

	svc := NewClientSyncService(mockRepo, mockGateway, &stubConnectivity{state: conn}, logger.Nop()).(*clientSyncService)

	return svc, mockRepo, mockGateway
}

func strPtr(s string) *string { return &s }

// ── Trigger: happy path ──────────────────────────────────────────────────────

func TestClientSyncService_Trigger_Completed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockGateway := newTestSyncSvc(t, ctrl, models.ConnectivityOnline)
	ctx := context.Background()

	categories := []models.Category{{ID: "c-1", Name: "Radiology"}}
	services := []models.Service{{ID: "s-1", CategoryID: strPtr("c-1"), Name: "Chest X-Ray", Price: 45}}

	mockGateway.EXPECT().FetchAllCategories(gomock.Any()).Return(categories, nil)
	mockGateway.EXPECT().FetchAllServices(gomock.Any()).Return(services, nil)
	mockRepo.EXPECT().ReplaceAll(gomock.Any(), models.Snapshot{Categories: categories, Services: services}).Return(nil)

	outcome := svc.Trigger(ctx, models.TriggerManual)

	assert.Equal(t, models.SyncCompleted, outcome)
	assert.Equal(t, models.SyncSynced, svc.State())
}

func TestClientSyncService_Trigger_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockGateway := newTestSyncSvc(t, ctrl, models.ConnectivityOnline)
	ctx := context.Background()

	categories := []models.Category{{ID: "c-1", Name: "Radiology"}}

	mockGateway.EXPECT().FetchAllCategories(gomock.Any()).Return(categories, nil).Times(2)
	mockGateway.EXPECT().FetchAllServices(gomock.Any()).Return(nil, nil).Times(2)
	mockRepo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	assert.Equal(t, models.SyncCompleted, svc.Trigger(ctx, models.TriggerAppStart))
	assert.Equal(t, models.SyncCompleted, svc.Trigger(ctx, models.TriggerManual))
	assert.Equal(t, models.SyncSynced, svc.State())
}

// ── Trigger: connectivity gating ─────────────────────────────────────────────

func TestClientSyncService_Trigger_Offline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no gateway or repo expectations: offline must not touch either
	svc, _, _ := newTestSyncSvc(t, ctrl, models.ConnectivityOffline)

	outcome := svc.Trigger(context.Background(), models.TriggerAppStart)

	assert.Equal(t, models.SyncSkippedOffline, outcome)
	assert.Equal(t, models.SyncIdle, svc.State())
}

func TestClientSyncService_Trigger_ConnectivityUnknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestSyncSvc(t, ctrl, models.ConnectivityUnknown)

	outcome := svc.Trigger(context.Background(), models.TriggerAppStart)

	assert.Equal(t, models.SyncDeferred, outcome)
	assert.Equal(t, models.SyncIdle, svc.State())
}

// ── Trigger: failure keeps cache ─────────────────────────────────────────────

func TestClientSyncService_Trigger_FetchErrorKeepsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockGateway := newTestSyncSvc(t, ctrl, models.ConnectivityOnline)

	mockGateway.EXPECT().FetchAllCategories(gomock.Any()).Return(nil, errors.New("network error"))
	mockGateway.EXPECT().FetchAllServices(gomock.Any()).Return(nil, nil)
	// ReplaceAll is never expected: the cache stays untouched

	outcome := svc.Trigger(context.Background(), models.TriggerManual)

	assert.Equal(t, models.SyncSoftFailed, outcome)
	assert.Equal(t, models.SyncFailed, svc.State())
}

func TestClientSyncService_Trigger_ServicesFetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockGateway := newTestSyncSvc(t, ctrl, models.ConnectivityOnline)

	mockGateway.EXPECT().FetchAllCategories(gomock.Any()).Return([]models.Category{{ID: "c-1"}}, nil)
	mockGateway.EXPECT().FetchAllServices(gomock.Any()).Return(nil, errors.New("timeout"))

	outcome := svc.Trigger(context.Background(), models.TriggerScheduled)

	assert.Equal(t, models.SyncSoftFailed, outcome)
	assert.Equal(t, models.SyncFailed, svc.State())
}

func TestClientSyncService_Trigger_ReplaceErrorKeepsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockGateway := newTestSyncSvc(t, ctrl, models.ConnectivityOnline)

	mockGateway.EXPECT().FetchAllCategories(gomock.Any()).Return(nil, nil)
	mockGateway.EXPECT().FetchAllServices(gomock.Any()).Return(nil, nil)
	mockRepo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	outcome := svc.Trigger(context.Background(), models.TriggerManual)

	assert.Equal(t, models.SyncSoftFailed, outcome)
	assert.Equal(t, models.SyncFailed, svc.State())
}

func TestClientSyncService_Trigger_RecoversAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockGateway := newTestSyncSvc(t, ctrl, models.ConnectivityOnline)
	ctx := context.Background()

	first := mockGateway.EXPECT().FetchAllCategories(gomock.Any()).Return(nil, errors.New("network error"))
	mockGateway.EXPECT().FetchAllCategories(gomock.Any()).Return(nil, nil).After(first)
	mockGateway.EXPECT().FetchAllServices(gomock.Any()).Return(nil, nil).Times(2)
	mockRepo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(nil)

	assert.Equal(t, models.SyncSoftFailed, svc.Trigger(ctx, models.TriggerManual))
	assert.Equal(t, models.SyncFailed, svc.State())

	assert.Equal(t, models.SyncCompleted, svc.Trigger(ctx, models.TriggerManual))
	assert.Equal(t, models.SyncSynced, svc.State())
}

// ── Trigger: snapshot sanitising ─────────────────────────────────────────────

func TestClientSyncService_Trigger_DropsOrphanServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockGateway := newTestSyncSvc(t, ctrl, models.ConnectivityOnline)

	categories := []models.Category{{ID: "c-1", Name: "Radiology"}}
	services := []models.Service{
		{ID: "s-1", CategoryID: strPtr("c-1"), Name: "Chest X-Ray"},
		{ID: "s-2", CategoryID: nil, Name: "No Category"},
		{ID: "s-3", CategoryID: strPtr("c-gone"), Name: "Dangling Reference"},
	}

	mockGateway.EXPECT().FetchAllCategories(gomock.Any()).Return(categories, nil)
	mockGateway.EXPECT().FetchAllServices(gomock.Any()).Return(services, nil)
	mockRepo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, snapshot models.Snapshot) error {
			require.Len(t, snapshot.Services, 1)
			assert.Equal(t, "s-1", snapshot.Services[0].ID)
			return nil
		},
	)

	outcome := svc.Trigger(context.Background(), models.TriggerManual)

	assert.Equal(t, models.SyncCompleted, outcome)
}

func TestClientSyncService_Trigger_NormalisesDescriptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockGateway := newTestSyncSvc(t, ctrl, models.ConnectivityOnline)

	categories := []models.Category{{ID: "c-1", Name: "Laboratory"}}
	services := []models.Service{
		{ID: "s-1", CategoryID: strPtr("c-1"), Name: "Blood Panel", Description: strPtr("  full blood count  ")},
		{ID: "s-2", CategoryID: strPtr("c-1"), Name: "Urinalysis", Description: strPtr("   ")},
	}

	mockGateway.EXPECT().FetchAllCategories(gomock.Any()).Return(categories, nil)
	mockGateway.EXPECT().FetchAllServices(gomock.Any()).Return(services, nil)
	mockRepo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, snapshot models.Snapshot) error {
			require.Len(t, snapshot.Services, 2)
			require.NotNil(t, snapshot.Services[0].Description)
			assert.Equal(t, "full blood count", *snapshot.Services[0].Description)
			assert.Nil(t, snapshot.Services[1].Description)
			return nil
		},
	)

	svc.Trigger(context.Background(), models.TriggerManual)
}

// ── Trigger: coalescing ──────────────────────────────────────────────────────

func TestClientSyncService_Trigger_CoalescesConcurrentTriggers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockGateway := newTestSyncSvc(t, ctrl, models.ConnectivityOnline)

	fetchStarted := make(chan struct{})
	release := make(chan struct{})

	mockGateway.EXPECT().FetchAllCategories(gomock.Any()).DoAndReturn(
		func(context.Context) ([]models.Category, error) {
			close(fetchStarted)
			<-release
			return nil, nil
		},
	)
	mockGateway.EXPECT().FetchAllServices(gomock.Any()).Return(nil, nil)
	mockRepo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(nil)

	var wg sync.WaitGroup
	wg.Add(1)
	var firstOutcome models.SyncOutcome
	go func() {
		defer wg.Done()
		firstOutcome = svc.Trigger(context.Background(), models.TriggerAppStart)
	}()

	select {
	case <-fetchStarted:
	case <-time.After(time.Second):
		t.Fatal("first sync never started fetching")
	}

	// a second trigger while the first is mid-flight folds into it
	assert.Equal(t, models.SyncCoalesced, svc.Trigger(context.Background(), models.TriggerConnectivity))

	close(release)
	wg.Wait()

	assert.Equal(t, models.SyncCompleted, firstOutcome)
}

// ── State observers ──────────────────────────────────────────────────────────

func TestClientSyncService_OnStateChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockGateway := newTestSyncSvc(t, ctrl, models.ConnectivityOnline)

	mockGateway.EXPECT().FetchAllCategories(gomock.Any()).Return(nil, nil)
	mockGateway.EXPECT().FetchAllServices(gomock.Any()).Return(nil, nil)
	mockRepo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(nil)

	var states []models.SyncState
	unsubscribe := svc.OnStateChange(func(state models.SyncState) {
		states = append(states, state)
	})
	defer unsubscribe()

	svc.Trigger(context.Background(), models.TriggerManual)

	assert.Equal(t, []models.SyncState{models.SyncSyncing, models.SyncSynced}, states)
}

func TestClientSyncService_OnStateChange_Unsubscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockGateway := newTestSyncSvc(t, ctrl, models.ConnectivityOnline)

	mockGateway.EXPECT().FetchAllCategories(gomock.Any()).Return(nil, nil)
	mockGateway.EXPECT().FetchAllServices(gomock.Any()).Return(nil, nil)
	mockRepo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(nil)

	calls := 0
	unsubscribe := svc.OnStateChange(func(models.SyncState) { calls++ })
	unsubscribe()

	svc.Trigger(context.Background(), models.TriggerManual)

	assert.Zero(t, calls)
}
