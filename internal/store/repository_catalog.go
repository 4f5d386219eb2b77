package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/ndurmanov/medirates/internal/logger"
	"github.com/ndurmanov/medirates/models"
)

type catalogRepository struct {
	*DB
	logger *logger.Logger
}

func NewCatalogRepository(db *DB, logger *logger.Logger) CatalogRepository {
	return &catalogRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *catalogRepository) UpsertCategories(ctx context.Context, categories []models.Category) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.UpsertCategories").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = upsertCategoriesTx(ctx, tx, categories); err != nil {
		log.Err(err).
			Str("func", "catalogRepository.UpsertCategories").
			Int("count", len(categories)).
			Msg("failed to upsert categories")
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return nil
}

func (r *catalogRepository) UpsertServices(ctx context.Context, services []models.Service) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.UpsertServices").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = upsertServicesTx(ctx, tx, services); err != nil {
		log.Err(err).
			Str("func", "catalogRepository.UpsertServices").
			Int("count", len(services)).
			Msg("failed to upsert services")
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return nil
}

func (r *catalogRepository) ClearAll(ctx context.Context) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.ClearAll").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = clearAllTx(ctx, tx); err != nil {
		log.Err(err).
			Str("func", "catalogRepository.ClearAll").
			Msg("failed to clear catalog tables")
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return nil
}

// ReplaceAll is the atomic replace contract the sync orchestrator depends
// on: clear both tables and repopulate them from the snapshot inside one
// transaction. The deferred rollback guarantees the cache stays at its
// pre-call state when any step fails.
func (r *catalogRepository) ReplaceAll(ctx context.Context, snapshot models.Snapshot) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.ReplaceAll").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = clearAllTx(ctx, tx); err != nil {
		log.Err(err).
			Str("func", "catalogRepository.ReplaceAll").
			Msg("failed to clear catalog tables")
		return err
	}
	if err = upsertCategoriesTx(ctx, tx, snapshot.Categories); err != nil {
		log.Err(err).
			Str("func", "catalogRepository.ReplaceAll").
			Int("categories", len(snapshot.Categories)).
			Msg("failed to repopulate categories")
		return err
	}
	if err = upsertServicesTx(ctx, tx, snapshot.Services); err != nil {
		log.Err(err).
			Str("func", "catalogRepository.ReplaceAll").
			Int("services", len(snapshot.Services)).
			Msg("failed to repopulate services")
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "catalogRepository.ReplaceAll").
			Msg("failed to commit replace-all transaction")
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return nil
}

func (r *catalogRepository) FetchServices(ctx context.Context) []models.ServiceWithCategory {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getJoinedServices)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.FetchServices").
			Msg("failed to query joined services, returning empty result")
		return nil
	}
	defer rows.Close()

	items, err := scanJoinedRows(rows)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.FetchServices").
			Msg("failed to scan joined service rows, returning empty result")
		return nil
	}

	return items
}

func (r *catalogRepository) FetchCategories(ctx context.Context) []models.Category {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getAllCategories)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.FetchCategories").
			Msg("failed to query categories, returning empty result")
		return nil
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		var item models.Category
		if err = rows.Scan(&item.ID, &item.Name, &item.Icon, &item.CreatedAt, &item.UpdatedAt); err != nil {
			log.Err(err).
				Str("func", "catalogRepository.FetchCategories").
				Msg("failed to scan category row, returning empty result")
			return nil
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "catalogRepository.FetchCategories").
			Msg("error during category rows iteration, returning empty result")
		return nil
	}

	return items
}

func (r *catalogRepository) Search(ctx context.Context, query string) []models.ServiceWithCategory {
	log := logger.FromContext(ctx)

	builder := sq.Select(
		"services.id",
		"services.category_id",
		"services.name",
		"services.price",
		"services.description",
		"services.created_at",
		"services.updated_at",
		"categories.name AS category_name",
		"categories.icon AS category_icon",
	).
		From("services").
		LeftJoin("categories ON services.category_id = categories.id").
		OrderBy("categories.name", "services.name")

	if term := strings.TrimSpace(query); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		builder = builder.Where(sq.Or{
			sq.Expr("LOWER(services.name) LIKE ?", like),
			sq.Expr("LOWER(services.description) LIKE ?", like),
			sq.Expr("LOWER(categories.name) LIKE ?", like),
		})
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.Search").
			Msg("failed to build search query, returning empty result")
		return nil
	}

	rows, err := r.DB.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.Search").
			Str("query", query).
			Msg("failed to execute search query, returning empty result")
		return nil
	}
	defer rows.Close()

	items, err := scanJoinedRows(rows)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.Search").
			Str("query", query).
			Msg("failed to scan search rows, returning empty result")
		return nil
	}

	return items
}

func (r *catalogRepository) ServicesByCategory(ctx context.Context, categoryID string) []models.Service {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getServicesByCategory, categoryID)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.ServicesByCategory").
			Str("category_id", categoryID).
			Msg("failed to query services by category, returning empty result")
		return nil
	}
	defer rows.Close()

	var items []models.Service
	for rows.Next() {
		var item models.Service
		if err = rows.Scan(
			&item.ID,
			&item.CategoryID,
			&item.Name,
			&item.Price,
			&item.Description,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			log.Err(err).
				Str("func", "catalogRepository.ServicesByCategory").
				Msg("failed to scan service row, returning empty result")
			return nil
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "catalogRepository.ServicesByCategory").
			Msg("error during service rows iteration, returning empty result")
		return nil
	}

	return items
}

func (r *catalogRepository) HasAnyData(ctx context.Context) bool {
	log := logger.FromContext(ctx)

	var exists bool
	row := r.DB.QueryRowContext(ctx, hasAnyCategory)
	if err := row.Scan(&exists); err != nil {
		log.Err(err).
			Str("func", "catalogRepository.HasAnyData").
			Msg("failed to check for cached data, assuming empty")
		return false
	}

	return exists
}

func upsertCategoriesTx(ctx context.Context, tx *sql.Tx, categories []models.Category) error {
	for _, c := range categories {
		_, err := tx.ExecContext(ctx, upsertCategory,
			c.ID,
			c.Name,
			c.Icon,
			c.CreatedAt,
			c.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert category (id=%s): %w", c.ID, err)
		}
	}
	return nil
}

func upsertServicesTx(ctx context.Context, tx *sql.Tx, services []models.Service) error {
	for _, s := range services {
		_, err := tx.ExecContext(ctx, upsertService,
			s.ID,
			s.CategoryID,
			s.Name,
			s.Price,
			s.Description,
			s.CreatedAt,
			s.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert service (id=%s): %w", s.ID, err)
		}
	}
	return nil
}

// clearAllTx deletes services before categories so the foreign key never
// dangles mid-transaction.
func clearAllTx(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, deleteAllServices); err != nil {
		return fmt.Errorf("failed to delete services: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteAllCategories); err != nil {
		return fmt.Errorf("failed to delete categories: %w", err)
	}
	return nil
}

func scanJoinedRows(rows *sql.Rows) ([]models.ServiceWithCategory, error) {
	var items []models.ServiceWithCategory

	for rows.Next() {
		var item models.ServiceWithCategory
		err := rows.Scan(
			&item.ID,
			&item.CategoryID,
			&item.Name,
			&item.Price,
			&item.Description,
			&item.CreatedAt,
			&item.UpdatedAt,
			&item.CategoryName,
			&item.CategoryIcon,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}
