package repository

// CreateItemOptions holds parameters for inserting a new Item.
type CreateItemOptions struct {
	Name       string
	Attributes map[string]any
}

// GetOneItemOptions holds filter parameters for fetching a single Item.
type GetOneItemOptions struct {
	ID string
}

// UpdateItemOptions holds parameters for a partial update of an existing Item.
// Name is written only when non-nil; each key of Attributes is set individually.
type UpdateItemOptions struct {
	ID         string
	Name       *string
	Attributes map[string]any
}
