package http_test

import (
	"context"
	"maps"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"items-api/internal/item"
	repo "items-api/internal/item/repository"
)

// memRepo is an in-memory repository that keeps insertion order and counts store calls.
type memRepo struct {
	mu    sync.Mutex
	order []string
	items map[string]item.Item
	calls int
	err   error
}

func newMemRepo() *memRepo {
	return &memRepo{items: map[string]item.Item{}}
}

func (r *memRepo) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return item.Item{}, r.err
	}
	now := time.Now().UTC()
	it := item.Item{
		ID:         primitive.NewObjectID().Hex(),
		Name:       opt.Name,
		Attributes: maps.Clone(opt.Attributes),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	r.items[it.ID] = it
	r.order = append(r.order, it.ID)
	return it, nil
}

func (r *memRepo) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (item.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return item.Item{}, r.err
	}
	return r.items[opt.ID], nil
}

func (r *memRepo) ListItems(ctx context.Context) ([]item.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	var out []item.Item
	for _, id := range r.order {
		if it, ok := r.items[id]; ok {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *memRepo) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (item.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return item.Item{}, r.err
	}
	it, ok := r.items[opt.ID]
	if !ok {
		return item.Item{}, nil
	}
	if opt.Name != nil {
		it.Name = *opt.Name
	}
	attrs := maps.Clone(it.Attributes)
	if attrs == nil {
		attrs = map[string]any{}
	}
	maps.Copy(attrs, opt.Attributes)
	it.Attributes = attrs
	it.UpdatedAt = time.Now().UTC()
	r.items[opt.ID] = it
	return it, nil
}

func (r *memRepo) DeleteItem(ctx context.Context, id string) (item.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return item.Item{}, r.err
	}
	it, ok := r.items[id]
	if !ok {
		return item.Item{}, nil
	}
	delete(r.items, id)
	return it, nil
}
