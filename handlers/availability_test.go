package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mentorly/config"
	"mentorly/models"
	"mentorly/services/availability"

	"github.com/gin-gonic/gin"
)

type fakeAvailabilityService struct {
	slots []models.CandidateSlot
	dates []string
	err   error
}

func (f *fakeAvailabilityService) SlotsForDate(ctx context.Context, expertID, date string, duration int) ([]models.CandidateSlot, error) {
	return f.slots, f.err
}

func (f *fakeAvailabilityService) AvailableDates(ctx context.Context, expertID string, duration int) ([]string, error) {
	return f.dates, f.err
}

func availabilityTestRouter(svc availability.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAvailabilityHandler(svc)
	r := gin.New()
	r.GET("/api/availability/:expertID/slots", h.GetSlotsHandler)
	r.GET("/api/availability/:expertID/dates", h.GetAvailableDatesHandler)
	return r
}

func setOfferedDurations(t *testing.T, durations []int) {
	t.Helper()
	prev := config.AppConfig.SessionDurations
	config.AppConfig.SessionDurations = durations
	t.Cleanup(func() { config.AppConfig.SessionDurations = prev })
}

func TestGetSlotsHandler(t *testing.T) {
	setOfferedDurations(t, []int{30})
	svc := &fakeAvailabilityService{slots: []models.CandidateSlot{
		{StartMinute: 540, EndMinute: 570, DisplayStart: "9:00 AM"},
	}}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability/exp-1/slots?date=2026-09-07&duration=30", nil)
	availabilityTestRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	var body struct {
		Slots []models.CandidateSlot `json:"slots"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body.Slots) != 1 || body.Slots[0].DisplayStart != "9:00 AM" {
		t.Fatalf("slots = %+v", body.Slots)
	}
}

// No availability is a 200 with an empty array, never null and never an error.
func TestGetSlotsHandlerEmptyIsArray(t *testing.T) {
	setOfferedDurations(t, []int{30})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability/exp-1/slots?date=2026-09-07&duration=30", nil)
	availabilityTestRouter(&fakeAvailabilityService{}).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if string(body["slots"]) != "[]" {
		t.Fatalf("slots = %s, want []", body["slots"])
	}
}

func TestGetSlotsHandlerRejectsBadDuration(t *testing.T) {
	setOfferedDurations(t, []int{15, 30, 60})

	for _, q := range []string{"duration=45", "duration=abc", ""} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/availability/exp-1/slots?date=2026-09-07&"+q, nil)
		availabilityTestRouter(&fakeAvailabilityService{}).ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("query %q: status = %d, want 400", q, w.Code)
		}
	}
}

func TestGetSlotsHandlerMalformedStoredTime(t *testing.T) {
	setOfferedDurations(t, []int{30})
	svc := &fakeAvailabilityService{err: &availability.MalformedTimeError{Value: "9am"}}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability/exp-1/slots?date=2026-09-07&duration=30", nil)
	availabilityTestRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
}

func TestGetAvailableDatesHandler(t *testing.T) {
	setOfferedDurations(t, []int{30})
	svc := &fakeAvailabilityService{dates: []string{"2026-09-07", "2026-09-09"}}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability/exp-1/dates?duration=30", nil)
	availabilityTestRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	var body struct {
		Dates []string `json:"dates"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body.Dates) != 2 || body.Dates[0] != "2026-09-07" {
		t.Fatalf("dates = %v", body.Dates)
	}
}
