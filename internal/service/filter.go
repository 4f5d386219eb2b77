package service

import (
	"strings"

	"github.com/ndurmanov/medirates/models"
)

// CatalogFilter narrows a loaded service list for the directory screen. Both
// criteria are conjunctive: a row must satisfy the text query and belong to
// one of the selected categories. Empty criteria match everything, so the
// zero value passes all rows through unchanged.
type CatalogFilter struct {
	// Query is matched case-insensitively as a substring of the service
	// name, description and category name.
	Query string

	// CategoryIDs restricts results to services in any of the listed
	// categories. Nil or empty means no category restriction.
	CategoryIDs []string
}

// IsZero reports whether the filter would pass every row through.
func (f CatalogFilter) IsZero() bool {
	return strings.TrimSpace(f.Query) == "" && len(f.CategoryIDs) == 0
}

// Apply returns the rows matching the filter. The input ordering is
// preserved; the input slice is never mutated.
func (f CatalogFilter) Apply(rows []models.ServiceWithCategory) []models.ServiceWithCategory {
	if f.IsZero() {
		return rows
	}

	query := strings.ToLower(strings.TrimSpace(f.Query))

	selected := make(map[string]struct{}, len(f.CategoryIDs))
	for _, id := range f.CategoryIDs {
		selected[id] = struct{}{}
	}

	matched := make([]models.ServiceWithCategory, 0, len(rows))
	for _, row := range rows {
		if query != "" && !matchesQuery(row, query) {
			continue
		}
		if len(selected) > 0 && !matchesCategories(row, selected) {
			continue
		}
		matched = append(matched, row)
	}

	return matched
}

func matchesQuery(row models.ServiceWithCategory, query string) bool {
	if strings.Contains(strings.ToLower(row.Name), query) {
		return true
	}
	if row.Description != nil && strings.Contains(strings.ToLower(*row.Description), query) {
		return true
	}
	if row.CategoryName != nil && strings.Contains(strings.ToLower(*row.CategoryName), query) {
		return true
	}
	return false
}

func matchesCategories(row models.ServiceWithCategory, selected map[string]struct{}) bool {
	if row.CategoryID == nil {
		return false
	}
	_, ok := selected[*row.CategoryID]
	return ok
}
