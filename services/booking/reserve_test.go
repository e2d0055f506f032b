package booking

import (
	"context"
	"errors"
	"testing"

	"mentorly/config"
	bookingRepo "mentorly/database/repository/booking"
	"mentorly/models"
	"mentorly/services/availability"
)

type fakeBookingRepo struct {
	intervals []models.BookedInterval
	bookings  []models.Booking
	insertErr error
	cancelErr error

	inserted *models.Booking
}

func (f *fakeBookingRepo) Insert(ctx context.Context, booking *models.Booking) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = booking
	return nil
}

func (f *fakeBookingRepo) CancelByID(ctx context.Context, expertID, bookingID string) (*models.Booking, error) {
	if f.cancelErr != nil {
		return nil, f.cancelErr
	}
	for i := range f.bookings {
		if f.bookings[i].ID == bookingID {
			f.bookings[i].Status = models.BookingStatusCancelled
			return &f.bookings[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeBookingRepo) GetByExpertAndDate(ctx context.Context, expertID, date string) ([]models.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) GetBookedIntervals(ctx context.Context, expertID, date string) ([]models.BookedInterval, error) {
	return f.intervals, nil
}

func (f *fakeBookingRepo) GetBookedIntervalsBetween(ctx context.Context, expertID, from, to string) ([]models.BookedInterval, error) {
	return f.intervals, nil
}

func setDurations(t *testing.T, durations []int) {
	t.Helper()
	prev := config.AppConfig.SessionDurations
	config.AppConfig.SessionDurations = durations
	t.Cleanup(func() { config.AppConfig.SessionDurations = prev })
}

func TestReserve(t *testing.T) {
	setDurations(t, []int{15, 30, 60})
	repo := &fakeBookingRepo{}
	svc := &DefaultService{Repo: repo}

	bk, err := svc.Reserve(context.Background(), "learner-1", models.ReserveRequest{
		ExpertID:  "exp-1",
		Date:      "2026-09-07",
		StartTime: "09:30",
		Duration:  30,
	})
	if err != nil {
		t.Fatalf("Reserve returned error: %v", err)
	}
	if repo.inserted == nil {
		t.Fatal("booking was not persisted")
	}
	if bk.ID == "" {
		t.Fatal("booking has no ID")
	}
	if bk.LearnerID != "learner-1" || bk.ExpertID != "exp-1" {
		t.Fatalf("wrong parties on booking: %+v", bk)
	}
	if bk.StartTime != "09:30" || bk.EndTime != "10:00" {
		t.Fatalf("times = %s-%s, want 09:30-10:00", bk.StartTime, bk.EndTime)
	}
	if bk.Status != models.BookingStatusConfirmed {
		t.Fatalf("status = %s, want %s", bk.Status, models.BookingStatusConfirmed)
	}
}

// Start times are normalized to zero-padded 24-hour form before persisting,
// minute carry included.
func TestReserveNormalizesStartTime(t *testing.T) {
	setDurations(t, []int{30})
	repo := &fakeBookingRepo{}
	svc := &DefaultService{Repo: repo}

	bk, err := svc.Reserve(context.Background(), "learner-1", models.ReserveRequest{
		ExpertID:  "exp-1",
		Date:      "2026-09-07",
		StartTime: "9:75",
		Duration:  30,
	})
	if err != nil {
		t.Fatalf("Reserve returned error: %v", err)
	}
	if bk.StartTime != "10:15" || bk.EndTime != "10:45" {
		t.Fatalf("times = %s-%s, want 10:15-10:45", bk.StartTime, bk.EndTime)
	}
}

func TestReserveConflict(t *testing.T) {
	setDurations(t, []int{30})
	repo := &fakeBookingRepo{intervals: []models.BookedInterval{
		{Date: "2026-09-07", StartTime: "09:00", EndTime: "10:00"},
	}}
	svc := &DefaultService{Repo: repo}

	_, err := svc.Reserve(context.Background(), "learner-1", models.ReserveRequest{
		ExpertID:  "exp-1",
		Date:      "2026-09-07",
		StartTime: "09:30",
		Duration:  30,
	})
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("error = %v, want ErrSlotTaken", err)
	}
	if repo.inserted != nil {
		t.Fatal("conflicting booking was persisted")
	}
}

// An interval that merely touches an existing booking is not a conflict.
func TestReserveTouchingIntervalAllowed(t *testing.T) {
	setDurations(t, []int{30})
	repo := &fakeBookingRepo{intervals: []models.BookedInterval{
		{Date: "2026-09-07", StartTime: "09:00", EndTime: "09:30"},
	}}
	svc := &DefaultService{Repo: repo}

	if _, err := svc.Reserve(context.Background(), "learner-1", models.ReserveRequest{
		ExpertID:  "exp-1",
		Date:      "2026-09-07",
		StartTime: "09:30",
		Duration:  30,
	}); err != nil {
		t.Fatalf("Reserve returned error: %v", err)
	}
}

// A racing insert surfaces through the unique index as ErrSlotTaken.
func TestReserveDuplicateKeyRace(t *testing.T) {
	setDurations(t, []int{30})
	repo := &fakeBookingRepo{insertErr: bookingRepo.ErrDuplicateSlot}
	svc := &DefaultService{Repo: repo}

	_, err := svc.Reserve(context.Background(), "learner-1", models.ReserveRequest{
		ExpertID:  "exp-1",
		Date:      "2026-09-07",
		StartTime: "09:30",
		Duration:  30,
	})
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("error = %v, want ErrSlotTaken", err)
	}
}

func TestReserveDurationNotOffered(t *testing.T) {
	setDurations(t, []int{15, 30, 60})
	svc := &DefaultService{Repo: &fakeBookingRepo{}}

	_, err := svc.Reserve(context.Background(), "learner-1", models.ReserveRequest{
		ExpertID:  "exp-1",
		Date:      "2026-09-07",
		StartTime: "09:30",
		Duration:  45,
	})
	if !errors.Is(err, ErrDurationNotOffered) {
		t.Fatalf("error = %v, want ErrDurationNotOffered", err)
	}
}

func TestReserveInvalidDate(t *testing.T) {
	setDurations(t, []int{30})
	svc := &DefaultService{Repo: &fakeBookingRepo{}}

	if _, err := svc.Reserve(context.Background(), "learner-1", models.ReserveRequest{
		ExpertID:  "exp-1",
		Date:      "07/09/2026",
		StartTime: "09:30",
		Duration:  30,
	}); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestReserveMalformedStartTime(t *testing.T) {
	setDurations(t, []int{30})
	svc := &DefaultService{Repo: &fakeBookingRepo{}}

	_, err := svc.Reserve(context.Background(), "learner-1", models.ReserveRequest{
		ExpertID:  "exp-1",
		Date:      "2026-09-07",
		StartTime: "half past nine",
		Duration:  30,
	})
	var malformed *availability.MalformedTimeError
	if !errors.As(err, &malformed) {
		t.Fatalf("error = %v, want *MalformedTimeError", err)
	}
}

func TestCancel(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []models.Booking{
		{ID: "bk-1", ExpertID: "exp-1", Status: models.BookingStatusConfirmed},
	}}
	svc := &DefaultService{Repo: repo}

	bk, err := svc.Cancel(context.Background(), "exp-1", "bk-1")
	if err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	if bk.Status != models.BookingStatusCancelled {
		t.Fatalf("status = %s, want %s", bk.Status, models.BookingStatusCancelled)
	}
}

func TestCancelNotFound(t *testing.T) {
	notFound := errors.New("no confirmed booking")
	repo := &fakeBookingRepo{cancelErr: notFound}
	svc := &DefaultService{Repo: repo}

	if _, err := svc.Cancel(context.Background(), "exp-1", "missing"); !errors.Is(err, notFound) {
		t.Fatalf("error = %v, want wrapped repo error", err)
	}
}
