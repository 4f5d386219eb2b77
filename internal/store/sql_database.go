package store

import (
	"database/sql"

	"github.com/ndurmanov/medirates/internal/logger"
	"github.com/ndurmanov/medirates/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
