package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ndurmanov/medirates/models"
)

func filterFixture() []models.ServiceWithCategory {
	radiology := "Radiology"
	lab := "Laboratory"
	xrayDesc := "Two-view chest radiograph"

	return []models.ServiceWithCategory{
		{
			Service:      models.Service{ID: "s-1", CategoryID: strPtr("c-lab"), Name: "Blood Panel", Price: 32.50},
			CategoryName: &lab,
		},
		{
			Service:      models.Service{ID: "s-2", CategoryID: strPtr("c-rad"), Name: "Chest X-Ray", Price: 45, Description: &xrayDesc},
			CategoryName: &radiology,
		},
		{
			Service: models.Service{ID: "s-3", Name: "Legacy Consultation", Price: 20},
			// orphan row: no category
		},
	}
}

func ids(rows []models.ServiceWithCategory) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func TestCatalogFilter_Apply(t *testing.T) {
	rows := filterFixture()

	tests := []struct {
		name   string
		filter CatalogFilter
		want   []string
	}{
		{name: "zero filter passes everything", filter: CatalogFilter{}, want: []string{"s-1", "s-2", "s-3"}},
		{name: "blank query passes everything", filter: CatalogFilter{Query: "   "}, want: []string{"s-1", "s-2", "s-3"}},
		{name: "query matches name case-insensitively", filter: CatalogFilter{Query: "chest x"}, want: []string{"s-2"}},
		{name: "query matches description", filter: CatalogFilter{Query: "radiograph"}, want: []string{"s-2"}},
		{name: "query matches category name", filter: CatalogFilter{Query: "laborat"}, want: []string{"s-1"}},
		{name: "query with surrounding whitespace", filter: CatalogFilter{Query: "  blood  "}, want: []string{"s-1"}},
		{name: "single category", filter: CatalogFilter{CategoryIDs: []string{"c-rad"}}, want: []string{"s-2"}},
		{name: "multiple categories union", filter: CatalogFilter{CategoryIDs: []string{"c-rad", "c-lab"}}, want: []string{"s-1", "s-2"}},
		{name: "category filter excludes orphans", filter: CatalogFilter{CategoryIDs: []string{"c-lab", "c-missing"}}, want: []string{"s-1"}},
		{name: "query and category are conjunctive", filter: CatalogFilter{Query: "x-ray", CategoryIDs: []string{"c-lab"}}, want: []string{}},
		{name: "query and category both match", filter: CatalogFilter{Query: "x-ray", CategoryIDs: []string{"c-rad"}}, want: []string{"s-2"}},
		{name: "no matches", filter: CatalogFilter{Query: "dermatology"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(rows)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestCatalogFilter_Apply_PreservesOrderAndInput(t *testing.T) {
	rows := filterFixture()

	got := CatalogFilter{CategoryIDs: []string{"c-lab", "c-rad"}}.Apply(rows)

	// input order survives filtering, and the source slice is intact
	assert.Equal(t, []string{"s-1", "s-2"}, ids(got))
	assert.Len(t, rows, 3)
}

func TestCatalogFilter_IsZero(t *testing.T) {
	assert.True(t, CatalogFilter{}.IsZero())
	assert.True(t, CatalogFilter{Query: "  "}.IsZero())
	assert.False(t, CatalogFilter{Query: "mri"}.IsZero())
	assert.False(t, CatalogFilter{CategoryIDs: []string{"c-1"}}.IsZero())
}
