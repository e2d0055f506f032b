// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"mentorly/config"
	"mentorly/database"
	"mentorly/models"
	"mentorly/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AvailabilityRepository stores experts' recurring weekly windows. Windows
// are read-only to the availability engine; only the expert setup surface
// writes them.
type AvailabilityRepository interface {
	ReplaceForExpert(ctx context.Context, expertID string, windows []models.AvailabilityWindow) ([]models.AvailabilityWindow, error)
	GetByExpert(ctx context.Context, expertID string) ([]models.AvailabilityWindow, error)
	GetActiveByWeekday(ctx context.Context, expertID string, weekday int) ([]models.AvailabilityWindow, error)
	SetActive(ctx context.Context, expertID, windowID string, active bool) error
	DeleteByID(ctx context.Context, expertID, windowID string) error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoAvailabilityRepo{
		coll: db.Collection("availability_windows"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Warn("availability index creation failed", zap.Error(err))
	}
	return repo
}
