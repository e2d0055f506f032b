package booking

import (
	"context"

	bookingRepo "mentorly/database/repository/booking"
	"mentorly/models"
	"mentorly/services/availability"

	"github.com/hibiken/asynq"
)

// Service is the booking write path. Availability results shown to a learner
// are advisory only: Reserve re-checks the proposed interval against the
// store at commit time, which is what resolves two learners racing for the
// same slot off a stale snapshot.
type Service interface {
	Reserve(ctx context.Context, learnerID string, req models.ReserveRequest) (*models.Booking, error)
	Cancel(ctx context.Context, expertID, bookingID string) (*models.Booking, error)
	ListForExpert(ctx context.Context, expertID, date string) ([]models.Booking, error)
}

// DefaultService implements Service.
type DefaultService struct {
	Repo  bookingRepo.BookingRepository
	Avail *availability.DefaultService

	// Tasks, when set, enqueues a horizon refresh after each write so cached
	// date sets converge quickly. Nil skips the enqueue.
	Tasks *asynq.Client
}
