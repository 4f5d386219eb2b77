package service

import (
	"github.com/ndurmanov/medirates/internal/adapter"
	"github.com/ndurmanov/medirates/internal/logger"
	"github.com/ndurmanov/medirates/internal/store"
)

type ClientServices struct {
	CatalogService ClientCatalogService
	AdminService   ClientAdminService
	AuthService    ClientAuthService
	SyncService    ClientSyncService
	SyncJob        ClientSyncJob
}

func NewClientServices(storages *store.Storages, gateway adapter.RemoteGateway, connectivity ConnectivitySource, log *logger.Logger) *ClientServices {
	syncSvc := NewClientSyncService(storages.Catalog, gateway, connectivity, log)

	return &ClientServices{
		CatalogService: NewClientCatalogService(storages.Catalog, log),
		AdminService:   NewClientAdminService(gateway, syncSvc, log),
		AuthService:    NewClientAuthService(gateway, log),
		SyncService:    syncSvc,
		SyncJob:        NewClientSyncJob(syncSvc),
	}
}
