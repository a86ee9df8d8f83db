package repository

import (
	"context"

	"items-api/internal/item"
)

// Repository is the composed interface for the item data store.
type Repository interface {
	ItemRepository
}

// ItemRepository defines all data access methods for the Item entity.
// Single-item lookups return a zero-value Item (ID == "") when nothing matches.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (item.Item, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (item.Item, error)
	ListItems(ctx context.Context) ([]item.Item, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (item.Item, error)
	DeleteItem(ctx context.Context, id string) (item.Item, error)
}
