package models

// Category is a catalog section (e.g. Radiology, Lab) mirrored from the
// remote store into the local cache. The icon is an optional display glyph
// and may be absent. Timestamps are ISO-8601 text, assigned by the server
// and mirrored locally as-is.
type Category struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Icon      *string `json:"icon"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// Service is a single priced hospital service. CategoryID is nullable: the
// remote schema sets it to NULL when the referenced category is deleted, and
// the local schema mirrors that referential action.
type Service struct {
	ID          string  `json:"id"`
	CategoryID  *string `json:"category_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ServiceWithCategory is the joined view row rendered by the UI: a service
// annotated with its category's name and icon. It is produced by the read
// layer only and never persisted.
type ServiceWithCategory struct {
	Service
	CategoryName *string `json:"category_name"`
	CategoryIcon *string `json:"category_icon"`
}

// DisplayCategory returns the category name for rendering, falling back to
// "Uncategorized" for orphaned rows.
func (s ServiceWithCategory) DisplayCategory() string {
	if s.CategoryName == nil || *s.CategoryName == "" {
		return "Uncategorized"
	}
	return *s.CategoryName
}

// DisplayIcon returns the category icon or an empty string when none is set.
func (s ServiceWithCategory) DisplayIcon() string {
	if s.CategoryIcon == nil {
		return ""
	}
	return *s.CategoryIcon
}
