// File: database/repository/availability/indexes.go
package availabilityRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the indexes the weekday lookup path depends on.
func (r *mongoAvailabilityRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "expertId", Value: 1}, {Key: "weekday", Value: 1}, {Key: "isActive", Value: 1}}},
		{Keys: bson.D{{Key: "id", Value: 1}}},
	})
	return err
}
