// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"mentorly/config"
	"mentorly/database"
	"mentorly/models"
	"mentorly/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// BookingRepository stores confirmed reservations. The availability engine
// reads them as booked intervals; the write path inserts and cancels.
type BookingRepository interface {
	Insert(ctx context.Context, booking *models.Booking) error
	CancelByID(ctx context.Context, expertID, bookingID string) (*models.Booking, error)
	GetByExpertAndDate(ctx context.Context, expertID, date string) ([]models.Booking, error)
	GetBookedIntervals(ctx context.Context, expertID, date string) ([]models.BookedInterval, error)
	GetBookedIntervalsBetween(ctx context.Context, expertID, from, to string) ([]models.BookedInterval, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Warn("booking index creation failed", zap.Error(err))
	}
	return repo
}
