package models

import "time"

// Booking statuses. Only confirmed bookings block availability.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a confirmed session reservation on a specific calendar
// date (not recurring).
type Booking struct {
	ID        string    `bson:"id" json:"id"`
	ExpertID  string    `bson:"expertId" json:"expertId"`
	LearnerID string    `bson:"learnerId" json:"learnerId"`
	Date      string    `bson:"date" json:"date"`           // "YYYY-MM-DD"
	StartTime string    `bson:"startTime" json:"startTime"` // "HH:MM", half-open [start, end)
	EndTime   string    `bson:"endTime" json:"endTime"`     // "HH:MM"
	Duration  int       `bson:"duration" json:"duration"`   // minutes
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// BookedInterval is the slice of a booking the availability engine consumes:
// one already-reserved half-open time range on one calendar date.
type BookedInterval struct {
	Date      string `bson:"date" json:"date"`
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}

// ReserveRequest is a learner's proposed reservation. The write path is the
// sole authority on conflicts; slot lists previously shown to the learner are
// advisory only.
type ReserveRequest struct {
	ExpertID  string `json:"expertId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	Duration  int    `json:"duration" binding:"required"`
}
