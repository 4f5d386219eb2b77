package store

import (
	"context"
	"fmt"

	"github.com/ndurmanov/medirates/internal/config"
	"github.com/ndurmanov/medirates/internal/logger"
)

// Storages groups all client-side storage repositories into a single value
// that can be passed around the service layer. Currently it holds only
// [CatalogRepository]; additional repositories can be added here as the
// feature set grows.
type Storages struct {
	// Catalog is the SQLite-backed local mirror of the remote catalog.
	Catalog CatalogRepository
}

// NewStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to a fresh
//     [CatalogRepository].
//
// Returns an error if the database connection cannot be established or if
// migration fails. Both are unrecoverable for the session: the caller is
// expected to treat this as fatal.
func NewStorages(cfg config.ClientStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Catalog: NewCatalogRepository(db, logger),
	}, nil
}
