package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"items-api/internal/item"
)

// Document field names.
const (
	fieldID         = "_id"
	fieldName       = "name"
	fieldAttributes = "attributes"
	fieldCreatedAt  = "createdAt"
	fieldUpdatedAt  = "updatedAt"
)

type itemDocument struct {
	ID         primitive.ObjectID `bson:"_id"`
	Name       string             `bson:"name"`
	Attributes bson.M             `bson:"attributes,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt"`
}

func (d itemDocument) toItem() item.Item {
	attrs := make(map[string]any, len(d.Attributes))
	for k, v := range d.Attributes {
		attrs[k] = normalize(v)
	}
	return item.Item{
		ID:         d.ID.Hex(),
		Name:       d.Name,
		Attributes: attrs,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

// normalize turns driver specific values into plain Go values that encode cleanly as JSON.
func normalize(v any) any {
	switch val := v.(type) {
	case primitive.D:
		m := make(map[string]any, len(val))
		for _, e := range val {
			m[e.Key] = normalize(e.Value)
		}
		return m
	case primitive.M:
		m := make(map[string]any, len(val))
		for k, e := range val {
			m[k] = normalize(e)
		}
		return m
	case primitive.A:
		s := make([]any, len(val))
		for i, e := range val {
			s[i] = normalize(e)
		}
		return s
	case primitive.ObjectID:
		return val.Hex()
	case primitive.DateTime:
		return val.Time().UTC()
	default:
		return v
	}
}
