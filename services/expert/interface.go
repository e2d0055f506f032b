package expert

import (
	"context"

	availabilityRepo "mentorly/database/repository/availability"
	"mentorly/models"
	"mentorly/services/availability"

	"github.com/hibiken/asynq"
)

// Service manages an expert's published weekly availability.
type Service interface {
	SetupAvailability(ctx context.Context, expertID string, req models.SetupAvailabilityRequest) (*models.AvailabilityDTO, error)
	GetAvailability(ctx context.Context, expertID string) (*models.AvailabilityDTO, error)
	SetWindowActive(ctx context.Context, expertID, windowID string, active bool) error
	RemoveWindow(ctx context.Context, expertID, windowID string) error
}

// DefaultService implements Service.
type DefaultService struct {
	Repo  availabilityRepo.AvailabilityRepository
	Avail *availability.DefaultService

	// Tasks, when set, enqueues a horizon refresh after each write. Nil skips
	// the enqueue.
	Tasks *asynq.Client
}
