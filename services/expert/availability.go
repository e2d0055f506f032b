package expert

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"mentorly/cron"
	"mentorly/models"
	"mentorly/services/availability"
	"mentorly/utils"
)

// SetupAvailability replaces an expert's entire weekly setup in one call.
// Windows are validated for shape (weekday range, parseable times, start
// before end) but overlapping windows on the same weekday are allowed — the
// engine unions their slots.
func (s *DefaultService) SetupAvailability(ctx context.Context, expertID string, req models.SetupAvailabilityRequest) (*models.AvailabilityDTO, error) {
	if err := availability.ValidateWindows(req.Windows); err != nil {
		return nil, err
	}

	windows, err := s.Repo.ReplaceForExpert(ctx, expertID, req.Windows)
	if err != nil {
		return nil, fmt.Errorf("replacing availability for expert %s: %w", expertID, err)
	}

	s.afterWrite(ctx, expertID)
	return &models.AvailabilityDTO{ExpertID: expertID, Windows: windows}, nil
}

// GetAvailability returns the expert's full weekly setup, inactive windows
// included.
func (s *DefaultService) GetAvailability(ctx context.Context, expertID string) (*models.AvailabilityDTO, error) {
	windows, err := s.Repo.GetByExpert(ctx, expertID)
	if err != nil {
		return nil, fmt.Errorf("fetching availability for expert %s: %w", expertID, err)
	}
	return &models.AvailabilityDTO{ExpertID: expertID, Windows: windows}, nil
}

// SetWindowActive toggles one window without touching the rest of the weekly
// setup. Inactive windows are excluded from every computation.
func (s *DefaultService) SetWindowActive(ctx context.Context, expertID, windowID string, active bool) error {
	if err := s.Repo.SetActive(ctx, expertID, windowID, active); err != nil {
		return fmt.Errorf("toggling window %s: %w", windowID, err)
	}
	s.afterWrite(ctx, expertID)
	return nil
}

// RemoveWindow deletes one window from the weekly setup.
func (s *DefaultService) RemoveWindow(ctx context.Context, expertID, windowID string) error {
	if err := s.Repo.DeleteByID(ctx, expertID, windowID); err != nil {
		return fmt.Errorf("removing window %s: %w", windowID, err)
	}
	s.afterWrite(ctx, expertID)
	return nil
}

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
