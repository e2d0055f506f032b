package models

// CandidateSlot is a bookable start time of the requested duration, computed
// fresh per request and never persisted. EndMinute - StartMinute always
// equals the requested duration.
type CandidateSlot struct {
	StartMinute  int    `json:"startMinute"`
	EndMinute    int    `json:"endMinute"`
	DisplayStart string `json:"displayStart"` // 12-hour clock, e.g. "9:30 AM"
}
