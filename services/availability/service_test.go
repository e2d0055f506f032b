package availability

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"mentorly/models"
)

type fakeAvailabilityRepo struct {
	windows []models.AvailabilityWindow
	err     error
}

func (f *fakeAvailabilityRepo) ReplaceForExpert(ctx context.Context, expertID string, windows []models.AvailabilityWindow) ([]models.AvailabilityWindow, error) {
	f.windows = windows
	return windows, f.err
}

func (f *fakeAvailabilityRepo) GetByExpert(ctx context.Context, expertID string) ([]models.AvailabilityWindow, error) {
	return f.windows, f.err
}

func (f *fakeAvailabilityRepo) GetActiveByWeekday(ctx context.Context, expertID string, weekday int) ([]models.AvailabilityWindow, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.AvailabilityWindow
	for _, w := range f.windows {
		if w.Weekday == weekday && w.IsActive {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) SetActive(ctx context.Context, expertID, windowID string, active bool) error {
	return f.err
}

func (f *fakeAvailabilityRepo) DeleteByID(ctx context.Context, expertID, windowID string) error {
	return f.err
}

type fakeBookingRepo struct {
	intervals []models.BookedInterval
	err       error
}

func (f *fakeBookingRepo) Insert(ctx context.Context, booking *models.Booking) error { return f.err }

func (f *fakeBookingRepo) CancelByID(ctx context.Context, expertID, bookingID string) (*models.Booking, error) {
	return nil, f.err
}

func (f *fakeBookingRepo) GetByExpertAndDate(ctx context.Context, expertID, date string) ([]models.Booking, error) {
	return nil, f.err
}

func (f *fakeBookingRepo) GetBookedIntervals(ctx context.Context, expertID, date string) ([]models.BookedInterval, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.BookedInterval
	for _, b := range f.intervals {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetBookedIntervalsBetween(ctx context.Context, expertID, from, to string) ([]models.BookedInterval, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.BookedInterval
	for _, b := range f.intervals {
		if b.Date >= from && b.Date <= to {
			out = append(out, b)
		}
	}
	return out, nil
}

func newTestService(avail *fakeAvailabilityRepo, book *fakeBookingRepo) *DefaultService {
	return &DefaultService{
		AvailabilityRepo: avail,
		BookingRepo:      book,
		HorizonDays:      7,
		Durations:        []int{15, 30, 60},
		Now:              func() time.Time { return mondayAnchor },
	}
}

func TestSlotsForDate(t *testing.T) {
	avail := &fakeAvailabilityRepo{windows: []models.AvailabilityWindow{
		window(1, "09:00", "10:00"),
		window(2, "14:00", "15:00"),
	}}
	book := &fakeBookingRepo{intervals: []models.BookedInterval{
		{Date: "2026-09-07", StartTime: "09:30", EndTime: "10:00"},
	}}
	svc := newTestService(avail, book)

	slots, err := svc.SlotsForDate(context.Background(), "exp-1", "2026-09-07", 30)
	if err != nil {
		t.Fatalf("SlotsForDate returned error: %v", err)
	}
	if got := starts(slots); !reflect.DeepEqual(got, []string{"9:00 AM"}) {
		t.Fatalf("slots = %v, want [9:00 AM]", got)
	}
}

func TestSlotsForDateInvalidDate(t *testing.T) {
	svc := newTestService(&fakeAvailabilityRepo{}, &fakeBookingRepo{})

	if _, err := svc.SlotsForDate(context.Background(), "exp-1", "07/09/2026", 30); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestSlotsForDateRepoError(t *testing.T) {
	repoErr := errors.New("mongo down")
	svc := newTestService(&fakeAvailabilityRepo{err: repoErr}, &fakeBookingRepo{})

	_, err := svc.SlotsForDate(context.Background(), "exp-1", "2026-09-07", 30)
	if !errors.Is(err, repoErr) {
		t.Fatalf("error = %v, want wrapped repo error", err)
	}
}

func TestComputeAvailableDates(t *testing.T) {
	avail := &fakeAvailabilityRepo{windows: []models.AvailabilityWindow{
		window(1, "09:00", "10:00"),
		window(4, "09:00", "10:00"),
	}}
	book := &fakeBookingRepo{intervals: []models.BookedInterval{
		// Thursday fully booked.
		{Date: "2026-09-10", StartTime: "09:00", EndTime: "10:00"},
	}}
	svc := newTestService(avail, book)

	dates, err := svc.ComputeAvailableDates(context.Background(), "exp-1", 30)
	if err != nil {
		t.Fatalf("ComputeAvailableDates returned error: %v", err)
	}
	want := []string{"2026-09-07"}
	if !reflect.DeepEqual(dates, want) {
		t.Fatalf("dates = %v, want %v", dates, want)
	}
}

// With no cache configured, AvailableDates is a straight computation.
func TestAvailableDatesWithoutCache(t *testing.T) {
	avail := &fakeAvailabilityRepo{windows: []models.AvailabilityWindow{
		window(1, "09:00", "10:00"),
	}}
	svc := newTestService(avail, &fakeBookingRepo{})

	dates, err := svc.AvailableDates(context.Background(), "exp-1", 30)
	if err != nil {
		t.Fatalf("AvailableDates returned error: %v", err)
	}
	want := []string{"2026-09-07"}
	if !reflect.DeepEqual(dates, want) {
		t.Fatalf("dates = %v, want %v", dates, want)
	}
}

func TestDefaultHorizonDays(t *testing.T) {
	svc := &DefaultService{}
	if got := svc.horizonDays(); got != DefaultHorizonDays {
		t.Fatalf("horizonDays() = %d, want %d", got, DefaultHorizonDays)
	}
}
