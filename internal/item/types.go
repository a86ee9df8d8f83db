package item

import "time"

// --- Item Domain Model ---

// Item is the single entity managed by the API. Attributes holds the free-form
// fields supplied by clients next to the required name.
type Item struct {
	ID         string
	Name       string
	Attributes map[string]any
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// MaxNameLength bounds Item.Name.
const MaxNameLength = 255

// Reserved field names. They never end up in Item.Attributes.
const (
	FieldID        = "id"
	FieldMongoID   = "_id"
	FieldName      = "name"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// IsReservedField reports whether key is owned by the Item model itself.
func IsReservedField(key string) bool {
	switch key {
	case FieldID, FieldMongoID, FieldName, FieldCreatedAt, FieldUpdatedAt:
		return true
	}
	return false
}

// --- UseCase Inputs ---

type CreateItemInput struct {
	Name       string
	Attributes map[string]any
}

// UpdateItemInput is a partial update: a nil Name leaves the name untouched and
// only the keys present in Attributes are written.
type UpdateItemInput struct {
	ID         string
	Name       *string
	Attributes map[string]any
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item Item
}

type ListItemsOutput struct {
	Items []Item
}

type DetailItemOutput struct {
	Item Item
}

type UpdateItemOutput struct {
	Item Item
}

type DeleteItemOutput struct {
	Item Item
}
