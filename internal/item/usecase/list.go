package usecase

import (
	"context"

	"items-api/internal/item"
)

// List returns every Item in storage order.
func (uc *implUseCase) List(ctx context.Context) (item.ListItemsOutput, error) {
	items, err := uc.repo.ListItems(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return item.ListItemsOutput{}, err
	}
	if items == nil {
		items = []item.Item{}
	}

	return item.ListItemsOutput{Items: items}, nil
}
