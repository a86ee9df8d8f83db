package mongo

import (
	"fmt"
	"time"

	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"items-api/internal/item/repository"
	pkgLog "items-api/pkg/log"
)

type implRepository struct {
	coll *mongodriver.Collection
	l    pkgLog.Logger
	now  func() time.Time
}

// New creates a MongoDB-backed Repository for the item domain.
func New(coll *mongodriver.Collection, l pkgLog.Logger) repository.Repository {
	if coll == nil {
		panic("item/repository/mongo: collection is required")
	}
	return &implRepository{coll: coll, l: l, now: now}
}

// now returns the current time at the precision BSON dates can hold.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("item/repository/mongo.%s", method)
}
