// File: database/repository/booking/booking_mongo.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mentorly/models"
)

func (r *mongoBookingRepo) Insert(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSlot
		}
		return fmt.Errorf("inserting booking %s: %w", booking.ID, err)
	}
	return nil
}

// CancelByID flips a confirmed booking to cancelled and returns it. Cancelled
// bookings stop blocking availability immediately.
func (r *mongoBookingRepo) CancelByID(ctx context.Context, expertID, bookingID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": bookingID, "expertId": expertID, "status": models.BookingStatusConfirmed}
	update := bson.M{"$set": bson.M{"status": models.BookingStatusCancelled}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking models.Booking
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *mongoBookingRepo) GetByExpertAndDate(ctx context.Context, expertID, date string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"expertId": expertID, "date": date, "status": models.BookingStatusConfirmed}
	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("fetching bookings for expert %s on %s: %w", expertID, date, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("decoding bookings for expert %s: %w", expertID, err)
	}
	return bookings, nil
}

// GetBookedIntervals projects just the interval fields the availability
// engine consumes for a single date.
func (r *mongoBookingRepo) GetBookedIntervals(ctx context.Context, expertID, date string) ([]models.BookedInterval, error) {
	return r.intervals(ctx, bson.M{
		"expertId": expertID,
		"date":     date,
		"status":   models.BookingStatusConfirmed,
	})
}

// GetBookedIntervalsBetween fetches the intervals of every confirmed booking
// in [from, to] in one query, for the horizon scan. ISO dates compare
// correctly as strings.
func (r *mongoBookingRepo) GetBookedIntervalsBetween(ctx context.Context, expertID, from, to string) ([]models.BookedInterval, error) {
	return r.intervals(ctx, bson.M{
		"expertId": expertID,
		"date":     bson.M{"$gte": from, "$lte": to},
		"status":   models.BookingStatusConfirmed,
	})
}

func (r *mongoBookingRepo) intervals(ctx context.Context, filter bson.M) ([]models.BookedInterval, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetProjection(bson.M{"date": 1, "startTime": 1, "endTime": 1}).
		SetSort(bson.D{{Key: "date", Value: 1}, {Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("fetching booked intervals: %w", err)
	}
	defer cursor.Close(ctx)

	var intervals []models.BookedInterval
	if err := cursor.All(ctx, &intervals); err != nil {
		return nil, fmt.Errorf("decoding booked intervals: %w", err)
	}
	return intervals, nil
}
