package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	availabilityRepo "mentorly/database/repository/availability"
	bookingRepo "mentorly/database/repository/booking"
	"mentorly/models"
	"mentorly/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DefaultService implements Service against the availability and booking
// stores. Both snapshots are fetched once per computation and treated as a
// point-in-time view; nothing is re-fetched mid-scan.
type DefaultService struct {
	AvailabilityRepo availabilityRepo.AvailabilityRepository
	BookingRepo      bookingRepo.BookingRepository

	// Cache, when set, holds precomputed available-date sets per expert and
	// duration. Nil disables caching entirely.
	Cache    *redis.Client
	CacheTTL time.Duration

	HorizonDays int
	Durations   []int
	Opts        Options

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultService) horizonDays() int {
	if s.HorizonDays > 0 {
		return s.HorizonDays
	}
	return DefaultHorizonDays
}

// SlotsForDate computes the bookable start times for one expert on one
// calendar date at the requested duration.
func (s *DefaultService) SlotsForDate(ctx context.Context, expertID, date string, duration int) ([]models.CandidateSlot, error) {
	day, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	windows, err := s.AvailabilityRepo.GetActiveByWeekday(ctx, expertID, int(day.Weekday()))
	if err != nil {
		return nil, fmt.Errorf("fetching availability for expert %s: %w", expertID, err)
	}
	booked, err := s.BookingRepo.GetBookedIntervals(ctx, expertID, date)
	if err != nil {
		return nil, fmt.Errorf("fetching bookings for expert %s: %w", expertID, err)
	}

	return GenerateSlots(windows, booked, duration, s.Opts)
}

// AvailableDates returns the horizon's available-date set for the requested
// duration, serving a cached set when one exists.
func (s *DefaultService) AvailableDates(ctx context.Context, expertID string, duration int) ([]string, error) {
	if s.Cache != nil {
		raw, err := s.Cache.Get(ctx, utils.HorizonCacheKey(expertID, duration)).Result()
		if err == nil {
			var dates []string
			if jsonErr := json.Unmarshal([]byte(raw), &dates); jsonErr == nil {
				return dates, nil
			}
		}
	}

	dates, err := s.ComputeAvailableDates(ctx, expertID, duration)
	if err != nil {
		return nil, err
	}
	s.cacheDates(ctx, expertID, duration, dates)
	return dates, nil
}

// ComputeAvailableDates runs the horizon scan against fresh snapshots,
// bypassing the cache. The horizon worker calls it to refresh precomputed
// sets.
func (s *DefaultService) ComputeAvailableDates(ctx context.Context, expertID string, duration int) ([]string, error) {
	today := s.now()
	horizon := s.horizonDays()

	windows, err := s.AvailabilityRepo.GetByExpert(ctx, expertID)
	if err != nil {
		return nil, fmt.Errorf("fetching availability for expert %s: %w", expertID, err)
	}
	byWeekday := make(map[int][]models.AvailabilityWindow)
	for _, w := range windows {
		byWeekday[w.Weekday] = append(byWeekday[w.Weekday], w)
	}

	from := today.Format(DateLayout)
	to := today.AddDate(0, 0, horizon-1).Format(DateLayout)
	booked, err := s.BookingRepo.GetBookedIntervalsBetween(ctx, expertID, from, to)
	if err != nil {
		return nil, fmt.Errorf("fetching bookings for expert %s: %w", expertID, err)
	}
	byDate := make(map[string][]models.BookedInterval)
	for _, b := range booked {
		byDate[b.Date] = append(byDate[b.Date], b)
	}

	return ScanHorizon(today, horizon, byWeekday, byDate, duration, s.Opts)
}

// RefreshAvailableDates recomputes and re-caches the available-date set for
// every configured duration. Used by the horizon worker after booking or
// availability writes.
func (s *DefaultService) RefreshAvailableDates(ctx context.Context, expertID string) error {
	for _, d := range s.Durations {
		dates, err := s.ComputeAvailableDates(ctx, expertID, d)
		if err != nil {
			return fmt.Errorf("refreshing horizon for expert %s at %d minutes: %w", expertID, d, err)
		}
		s.cacheDates(ctx, expertID, d, dates)
	}
	return nil
}

func (s *DefaultService) cacheDates(ctx context.Context, expertID string, duration int, dates []string) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(dates)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, utils.HorizonCacheKey(expertID, duration), raw, s.CacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("horizon cache write failed",
			zap.String("expertID", expertID), zap.Int("duration", duration), zap.Error(err))
	}
}

// InvalidateHorizon drops the cached date sets for an expert across every
// configured duration, typically right after a booking write.
func (s *DefaultService) InvalidateHorizon(ctx context.Context, expertID string) {
	if s.Cache == nil {
		return
	}
	keys := make([]string, 0, len(s.Durations))
	for _, d := range s.Durations {
		keys = append(keys, utils.HorizonCacheKey(expertID, d))
	}
	if len(keys) == 0 {
		return
	}
	if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
		utils.GetLogger().Warn("horizon cache invalidation failed",
			zap.String("expertID", expertID), zap.Error(err))
	}
}
