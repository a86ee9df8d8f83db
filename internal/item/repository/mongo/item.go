package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"items-api/internal/item"
	repo "items-api/internal/item/repository"
)

// CreateItem inserts a new Item document and returns the created entity.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	ts := r.now()
	doc := itemDocument{
		ID:        primitive.NewObjectID(),
		Name:      opt.Name,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if len(opt.Attributes) > 0 {
		doc.Attributes = bson.M(opt.Attributes)
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return item.Item{}, repo.ErrFailedToInsert
	}
	return doc.toItem(), nil
}

// GetOneItem retrieves a single Item by the provided filters (AND condition).
// Returns a zero-value Item (ID == "") when nothing matches; not-found is not an error.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (item.Item, error) {
	filter, err := r.buildGetOneFilter(opt)
	if err != nil {
		return item.Item{}, err
	}

	var doc itemDocument
	err = r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongodriver.ErrNoDocuments) {
		return item.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return item.Item{}, repo.ErrFailedToGet
	}
	return doc.toItem(), nil
}

// ListItems returns every Item in storage order.
func (r *implRepository) ListItems(ctx context.Context) ([]item.Item, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}

	var docs []itemDocument
	if err := cur.All(ctx, &docs); err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}

	items := make([]item.Item, 0, len(docs))
	for _, doc := range docs {
		items = append(items, doc.toItem())
	}
	return items, nil
}

// UpdateItem applies a partial update by ID and returns the updated entity.
// Returns zero-value Item when no document has the ID.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (item.Item, error) {
	oid, err := primitive.ObjectIDFromHex(opt.ID)
	if err != nil {
		return item.Item{}, repo.ErrInvalidID
	}

	update := bson.D{{Key: "$set", Value: r.buildUpdateSet(opt, r.now())}}
	res := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: fieldID, Value: oid}},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var doc itemDocument
	err = res.Decode(&doc)
	if errors.Is(err, mongodriver.ErrNoDocuments) {
		return item.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return item.Item{}, repo.ErrFailedToUpdate
	}
	return doc.toItem(), nil
}

// DeleteItem removes an Item by ID and returns the removed entity.
// Returns zero-value Item when no document has the ID.
func (r *implRepository) DeleteItem(ctx context.Context, id string) (item.Item, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return item.Item{}, repo.ErrInvalidID
	}

	var doc itemDocument
	err = r.coll.FindOneAndDelete(ctx, bson.D{{Key: fieldID, Value: oid}}).Decode(&doc)
	if errors.Is(err, mongodriver.ErrNoDocuments) {
		return item.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return item.Item{}, repo.ErrFailedToDelete
	}
	return doc.toItem(), nil
}
