package availability

import (
	"context"

	"mentorly/models"
)

// Service is the consumer contract of the availability engine: either the
// bookable slots for one calendar date, or the dates in the rolling horizon
// that have at least one slot. Results are advisory; only the booking write
// path decides conflicts at commit time.
type Service interface {
	SlotsForDate(ctx context.Context, expertID, date string, duration int) ([]models.CandidateSlot, error)
	AvailableDates(ctx context.Context, expertID string, duration int) ([]string, error)
}
