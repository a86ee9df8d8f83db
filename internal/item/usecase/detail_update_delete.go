package usecase

import (
	"context"

	"items-api/internal/item"
	repo "items-api/internal/item/repository"
)

// Detail retrieves a single Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (item.DetailItemOutput, error) {
	if err := uc.validateID(id); err != nil {
		return item.DetailItemOutput{}, err
	}

	it, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneItem: %v", err)
		return item.DetailItemOutput{}, err
	}
	if it.ID == "" {
		return item.DetailItemOutput{}, item.ErrItemNotFound
	}
	return item.DetailItemOutput{Item: it}, nil
}

// Update applies a partial update in a single store call. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, input item.UpdateItemInput) (item.UpdateItemOutput, error) {
	if err := uc.validateID(input.ID); err != nil {
		return item.UpdateItemOutput{}, err
	}

	opt := repo.UpdateItemOptions{ID: input.ID}
	if input.Name != nil {
		name, err := uc.normalizeName(*input.Name)
		if err != nil {
			return item.UpdateItemOutput{}, err
		}
		opt.Name = &name
	}
	attrs, err := uc.cleanAttributes(input.Attributes)
	if err != nil {
		return item.UpdateItemOutput{}, err
	}
	opt.Attributes = attrs

	it, err := uc.repo.UpdateItem(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return item.UpdateItemOutput{}, err
	}
	if it.ID == "" {
		return item.UpdateItemOutput{}, item.ErrItemNotFound
	}
	return item.UpdateItemOutput{Item: it}, nil
}

// Delete removes an Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) (item.DeleteItemOutput, error) {
	if err := uc.validateID(id); err != nil {
		return item.DeleteItemOutput{}, err
	}

	it, err := uc.repo.DeleteItem(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return item.DeleteItemOutput{}, err
	}
	if it.ID == "" {
		return item.DeleteItemOutput{}, item.ErrItemNotFound
	}
	return item.DeleteItemOutput{Item: it}, nil
}
