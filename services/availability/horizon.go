package availability

import (
	"time"

	"mentorly/models"
)

// DateLayout is the calendar-date form used across the stores and the API.
const DateLayout = "2006-01-02"

// DefaultHorizonDays is the rolling window scanned for date-level
// availability when no explicit horizon is configured.
const DefaultHorizonDays = 30

// ScanHorizon walks horizonDays calendar days starting at today and returns,
// in ascending order, the dates with at least one bookable slot of the
// requested duration. windowsByWeekday maps 0 (Sunday) through 6 to an
// expert's recurring windows; bookedByDate maps "YYYY-MM-DD" to that date's
// reservations, an absent date meaning none. A weekday with no active windows
// excludes the date outright. The result shrinks as duration grows, since a
// longer session fits fewer places. All date arithmetic is naive local time.
func ScanHorizon(today time.Time, horizonDays int, windowsByWeekday map[int][]models.AvailabilityWindow, bookedByDate map[string][]models.BookedInterval, duration int, opts Options) ([]string, error) {
	var dates []string
	for i := 0; i < horizonDays; i++ {
		day := today.AddDate(0, 0, i)
		windows := activeWindows(windowsByWeekday[int(day.Weekday())])
		if len(windows) == 0 {
			continue
		}
		date := day.Format(DateLayout)
		slots, err := GenerateSlots(windows, bookedByDate[date], duration, opts)
		if err != nil {
			return nil, err
		}
		if len(slots) > 0 {
			dates = append(dates, date)
		}
	}
	return dates, nil
}

func activeWindows(windows []models.AvailabilityWindow) []models.AvailabilityWindow {
	var active []models.AvailabilityWindow
	for _, w := range windows {
		if w.IsActive {
			active = append(active, w)
		}
	}
	return active
}
