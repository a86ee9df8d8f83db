package usecase

import (
	"context"

	"items-api/internal/item"
	repo "items-api/internal/item/repository"
)

// Create validates the input and inserts a new Item.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateItemInput) (item.CreateItemOutput, error) {
	name, err := uc.normalizeName(input.Name)
	if err != nil {
		return item.CreateItemOutput{}, err
	}
	attrs, err := uc.cleanAttributes(input.Attributes)
	if err != nil {
		return item.CreateItemOutput{}, err
	}

	it, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Name:       name,
		Attributes: attrs,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return item.CreateItemOutput{}, err
	}

	return item.CreateItemOutput{Item: it}, nil
}
