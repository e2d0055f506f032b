package availability

import (
	"fmt"

	"mentorly/models"
)

// Options tunes slot generation. The zero value reproduces the historical
// behaviour: overlapping windows may emit duplicate start times.
type Options struct {
	// DeduplicateSlots collapses candidate slots that share a start minute,
	// keeping the first occurrence. Off by default: duplicate starts from
	// overlapping windows are upstream data the engine does not second-guess.
	DeduplicateSlots bool
}

// GenerateSlots enumerates the bookable start times for one calendar day.
// windows must already be narrowed to the target weekday and booked to the
// target date; inactive windows are skipped. Candidates step by the requested
// duration from each window's own start (a grid anchored at the window, not a
// sliding scan), stop once a slot would cross the window end, and are emitted
// window by window in input order. Every returned slot lies fully inside its
// window and has zero overlap with booked. An empty result means "no
// availability", not an error; the only failure is a malformed time string in
// the input records.
func GenerateSlots(windows []models.AvailabilityWindow, booked []models.BookedInterval, duration int, opts Options) ([]models.CandidateSlot, error) {
	if duration <= 0 {
		return nil, nil
	}
	busy, err := busyIntervals(booked)
	if err != nil {
		return nil, err
	}

	var seen map[int]bool
	if opts.DeduplicateSlots {
		seen = make(map[int]bool)
	}

	var slots []models.CandidateSlot
	for _, w := range windows {
		if !w.IsActive {
			continue
		}
		cursor, err := ParseClock(w.StartTime)
		if err != nil {
			return nil, err
		}
		limit, err := ParseClock(w.EndTime)
		if err != nil {
			return nil, err
		}
		for ; cursor+duration <= limit; cursor += duration {
			if conflicts(cursor, cursor+duration, busy) {
				continue
			}
			if seen != nil {
				if seen[cursor] {
					continue
				}
				seen[cursor] = true
			}
			slots = append(slots, models.CandidateSlot{
				StartMinute:  cursor,
				EndMinute:    cursor + duration,
				DisplayStart: FormatClock(cursor),
			})
		}
	}
	return slots, nil
}

type minuteInterval struct {
	start, end int
}

func busyIntervals(booked []models.BookedInterval) ([]minuteInterval, error) {
	if len(booked) == 0 {
		return nil, nil
	}
	busy := make([]minuteInterval, 0, len(booked))
	for _, b := range booked {
		start, err := ParseClock(b.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := ParseClock(b.EndTime)
		if err != nil {
			return nil, err
		}
		busy = append(busy, minuteInterval{start: start, end: end})
	}
	return busy, nil
}

func conflicts(start, end int, busy []minuteInterval) bool {
	for _, b := range busy {
		if Overlaps(start, end, b.start, b.end) {
			return true
		}
	}
	return false
}

// ValidateWindows rejects weekly windows that could never produce a slot:
// weekday outside 0..6, malformed times, or start >= end after minute-carry
// normalization.
func ValidateWindows(windows []models.AvailabilityWindow) error {
	for i, w := range windows {
		if w.Weekday < 0 || w.Weekday > 6 {
			return &WindowValidationError{Index: i, Reason: "weekday must be 0 (Sunday) through 6 (Saturday)"}
		}
		start, err := ParseClock(w.StartTime)
		if err != nil {
			return &WindowValidationError{Index: i, Reason: err.Error()}
		}
		end, err := ParseClock(w.EndTime)
		if err != nil {
			return &WindowValidationError{Index: i, Reason: err.Error()}
		}
		if start >= end {
			return &WindowValidationError{Index: i, Reason: "startTime must be before endTime"}
		}
	}
	return nil
}

// WindowValidationError reports the first unusable window in a weekly setup.
type WindowValidationError struct {
	Index  int
	Reason string
}

func (e *WindowValidationError) Error() string {
	return fmt.Sprintf("window %d: %s", e.Index, e.Reason)
}
