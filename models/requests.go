package models

// ServiceInput carries raw admin form values. Price is free text exactly as
// typed and must pass validation before it ever reaches the gateway or the
// data model.
type ServiceInput struct {
	Name        string
	CategoryID  string
	Price       string
	Description string
}

// ServiceDraft is a validated service payload ready to be sent to the remote
// store. It exists only after ServiceInput has passed validation.
type ServiceDraft struct {
	Name        string
	CategoryID  string
	Price       float64
	Description *string
}
