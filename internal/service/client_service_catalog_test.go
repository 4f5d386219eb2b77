package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ndurmanov/medirates/internal/logger"
	"github.com/ndurmanov/medirates/internal/mock"
	"github.com/ndurmanov/medirates/models"
)

func newTestCatalogSvc(t *testing.T, ctrl *gomock.Controller) (ClientCatalogService, *mock.MockCatalogRepository) {
	t.Helper()
	mockRepo := mock.NewMockCatalogRepository(ctrl)
	return NewClientCatalogService(mockRepo, logger.Nop()), mockRepo
}

func TestClientCatalogService_Services(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	rows := []models.ServiceWithCategory{
		{Service: models.Service{ID: "s-1", Name: "Blood Panel"}},
	}
	mockRepo.EXPECT().FetchServices(ctx).Return(rows)

	assert.Equal(t, rows, svc.Services(ctx))
}

func TestClientCatalogService_Categories_FromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	cached := []models.Category{{ID: "c-1", Name: "Radiology"}}
	mockRepo.EXPECT().HasAnyData(ctx).Return(true)
	mockRepo.EXPECT().FetchCategories(ctx).Return(cached)

	assert.Equal(t, cached, svc.Categories(ctx))
}

func TestClientCatalogService_Categories_BundledDefaultsOnEmptyCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().HasAnyData(ctx).Return(false)

	categories := svc.Categories(ctx)

	require.NotEmpty(t, categories)
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "Laboratory")
	assert.Contains(t, names, "Radiology")
}

func TestClientCatalogService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	hits := []models.ServiceWithCategory{
		{Service: models.Service{ID: "s-2", Name: "Chest X-Ray"}},
	}
	mockRepo.EXPECT().Search(ctx, "chest").Return(hits)

	assert.Equal(t, hits, svc.Search(ctx, "chest"))
}

func TestClientCatalogService_ServicesByCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	services := []models.Service{{ID: "s-1", Name: "Blood Panel"}}
	mockRepo.EXPECT().ServicesByCategory(ctx, "c-lab").Return(services)

	assert.Equal(t, services, svc.ServicesByCategory(ctx, "c-lab"))
}

func TestClientCatalogService_HasLocalData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestCatalogSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().HasAnyData(ctx).Return(true)

	assert.True(t, svc.HasLocalData(ctx))
}
