package store

import (
	"context"

	"github.com/ndurmanov/medirates/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CatalogRepository is the local cache of the remote catalog. All UI reads go
// through it, online or offline.
//
// Failure semantics are asymmetric on purpose: read operations swallow
// storage errors (they log and return an empty result so the UI never
// hard-crashes on a read), while write operations propagate errors so the
// sync orchestrator can tell a successful sync from a failed one.
type CatalogRepository interface {
	// UpsertCategories inserts or updates the given categories by primary
	// key as a single atomic unit: all rows are applied or none are.
	UpsertCategories(ctx context.Context, categories []models.Category) error

	// UpsertServices inserts or updates the given services by primary key
	// as a single atomic unit.
	UpsertServices(ctx context.Context, services []models.Service) error

	// ClearAll deletes every row from both tables (services first, so the
	// foreign key never dangles mid-operation).
	ClearAll(ctx context.Context) error

	// ReplaceAll atomically discards all local rows and repopulates both
	// tables from the snapshot in one transaction. If any step fails the
	// cache rolls back to its pre-call state: readers observe either the
	// old data or the new data, never a mixture.
	ReplaceAll(ctx context.Context, snapshot models.Snapshot) error

	// FetchServices returns all services left-joined with their category's
	// name and icon, ordered by category name then service name.
	FetchServices(ctx context.Context) []models.ServiceWithCategory

	// FetchCategories returns all categories ordered by name.
	FetchCategories(ctx context.Context) []models.Category

	// Search returns the joined view filtered to rows where the service
	// name, description, or category name contains query as a
	// case-insensitive substring.
	Search(ctx context.Context, query string) []models.ServiceWithCategory

	// ServicesByCategory returns the services belonging to one category,
	// ordered by name.
	ServicesByCategory(ctx context.Context, categoryID string) []models.Service

	// HasAnyData reports whether at least one category row exists. Used to
	// decide whether to fall back to the bundled default category set on
	// first run or after a total sync failure.
	HasAnyData(ctx context.Context) bool
}
