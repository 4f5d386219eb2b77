package service

import (
	"context"
	_ "embed"
	"encoding/json"

	"github.com/ndurmanov/medirates/internal/logger"
	"github.com/ndurmanov/medirates/internal/store"
	"github.com/ndurmanov/medirates/models"
)

// defaultCategoriesJSON ships a minimal category list so the filter bar has
// something to show before the first successful sync.
//
//go:embed default_categories.json
var defaultCategoriesJSON []byte

type clientCatalogService struct {
	localStore store.CatalogRepository
	logger     *logger.Logger
	defaults   []models.Category
}

func NewClientCatalogService(localStore store.CatalogRepository, log *logger.Logger) ClientCatalogService {
	var defaults []models.Category
	if err := json.Unmarshal(defaultCategoriesJSON, &defaults); err != nil {
		log.Error().Err(err).Msg("bundled category list is malformed")
	}

	return &clientCatalogService{localStore: localStore, logger: log, defaults: defaults}
}

func (c *clientCatalogService) Services(ctx context.Context) []models.ServiceWithCategory {
	return c.localStore.FetchServices(ctx)
}

func (c *clientCatalogService) Categories(ctx context.Context) []models.Category {
	if !c.localStore.HasAnyData(ctx) {
		return c.defaults
	}
	return c.localStore.FetchCategories(ctx)
}

func (c *clientCatalogService) Search(ctx context.Context, query string) []models.ServiceWithCategory {
	return c.localStore.Search(ctx, query)
}

func (c *clientCatalogService) ServicesByCategory(ctx context.Context, categoryID string) []models.Service {
	return c.localStore.ServicesByCategory(ctx, categoryID)
}

func (c *clientCatalogService) HasLocalData(ctx context.Context) bool {
	return c.localStore.HasAnyData(ctx)
}
