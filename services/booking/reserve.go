package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "mentorly/database/repository/booking"
	"mentorly/config"
	"mentorly/cron"
	"mentorly/models"
	"mentorly/services/availability"
	"mentorly/utils"
)

// Reserve commits a learner's proposed reservation. The interval is
// re-checked against every confirmed booking on that date inside the call;
// the unique confirmed-slot index backstops the narrow window between check
// and insert when two commits race.
func (s *DefaultService) Reserve(ctx context.Context, learnerID string, req models.ReserveRequest) (*models.Booking, error) {
	if !config.DurationOffered(req.Duration) {
		return nil, ErrDurationNotOffered
	}
	if _, err := time.ParseInLocation(availability.DateLayout, req.Date, time.Local); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, err)
	}
	start, err := availability.ParseClock(req.StartTime)
	if err != nil {
		return nil, err
	}
	end := start + req.Duration

	existing, err := s.Repo.GetBookedIntervals(ctx, req.ExpertID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("checking conflicts for expert %s on %s: %w", req.ExpertID, req.Date, err)
	}
	for _, b := range existing {
		bStart, err := availability.ParseClock(b.StartTime)
		if err != nil {
			return nil, err
		}
		bEnd, err := availability.ParseClock(b.EndTime)
		if err != nil {
			return nil, err
		}
		if availability.Overlaps(start, end, bStart, bEnd) {
			return nil, ErrSlotTaken
		}
	}

	booking := &models.Booking{
		ID:        uuid.New().String(),
		ExpertID:  req.ExpertID,
		LearnerID: learnerID,
		Date:      req.Date,
		StartTime: availability.FormatClockAPI(start),
		EndTime:   availability.FormatClockAPI(end),
		Duration:  req.Duration,
		Status:    models.BookingStatusConfirmed,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Insert(ctx, booking); err != nil {
		if err == bookingRepo.ErrDuplicateSlot {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	s.afterWrite(ctx, req.ExpertID)
	return booking, nil
}

// Cancel releases a confirmed booking, freeing its interval for new
// reservations.
func (s *DefaultService) Cancel(ctx context.Context, expertID, bookingID string) (*models.Booking, error) {
	booking, err := s.Repo.CancelByID(ctx, expertID, bookingID)
	if err != nil {
		return nil, fmt.Errorf("cancelling booking %s: %w", bookingID, err)
	}
	s.afterWrite(ctx, expertID)
	return booking, nil
}

// ListForExpert returns an expert's confirmed bookings for one date.
func (s *DefaultService) ListForExpert(ctx context.Context, expertID, date string) ([]models.Booking, error) {
	return s.Repo.GetByExpertAndDate(ctx, expertID, date)
}

// afterWrite drops the expert's cached date sets and, when a task client is
// configured, asks the horizon worker to precompute fresh ones.
func (s *DefaultService) afterWrite(ctx context.Context, expertID string) {
	if s.Avail != nil {
		s.Avail.InvalidateHorizon(ctx, expertID)
	}
	if s.Tasks == nil {
		return
	}
	task, err := cron.NewHorizonRefreshTask(expertID)
	if err != nil {
		return
	}
	if _, err := s.Tasks.Enqueue(task); err != nil {
		utils.GetLogger().Warn("failed to enqueue horizon refresh",
			zap.String("expertID", expertID), zap.Error(err))
	}
}
