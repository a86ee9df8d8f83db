package mongo

import (
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	repo "items-api/internal/item/repository"
)

// buildGetOneFilter builds the filter for GetOneItem.
func (r *implRepository) buildGetOneFilter(opt repo.GetOneItemOptions) (bson.D, error) {
	filter := bson.D{}

	if opt.ID != "" {
		oid, err := primitive.ObjectIDFromHex(opt.ID)
		if err != nil {
			return nil, repo.ErrInvalidID
		}
		filter = append(filter, bson.E{Key: fieldID, Value: oid})
	}

	return filter, nil
}

// buildUpdateSet builds the $set document for UpdateItem. Attributes are set one
// path at a time so keys missing from opt keep their stored value.
func (r *implRepository) buildUpdateSet(opt repo.UpdateItemOptions, ts time.Time) bson.D {
	set := bson.D{}

	if opt.Name != nil {
		set = append(set, bson.E{Key: fieldName, Value: *opt.Name})
	}

	keys := make([]string, 0, len(opt.Attributes))
	for k := range opt.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		set = append(set, bson.E{Key: fieldAttributes + "." + k, Value: opt.Attributes[k]})
	}

	set = append(set, bson.E{Key: fieldUpdatedAt, Value: ts})
	return set
}
