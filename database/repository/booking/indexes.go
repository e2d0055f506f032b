// File: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mentorly/models"
)

// ErrDuplicateSlot is returned when an insert collides with the unique
// confirmed-slot index, i.e. two writes raced for the same start time.
var ErrDuplicateSlot = errors.New("a confirmed booking already exists at that start time")

// EnsureIndexes creates the read-path index and the partial unique index that
// backstops the write path's conflict check when two commits race.
func (r *mongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "expertId", Value: 1}, {Key: "date", Value: 1}, {Key: "status", Value: 1}}},
		{
			Keys: bson.D{{Key: "expertId", Value: 1}, {Key: "date", Value: 1}, {Key: "startTime", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"status": models.BookingStatusConfirmed}),
		},
	})
	return err
}
