package models

// AvailabilityWindow is one recurring weekly time range during which an
// expert accepts bookings. The interval is half-open [StartTime, EndTime)
// within a single day; times are naive local wall-clock.
type AvailabilityWindow struct {
	ID        string `bson:"id" json:"id"`
	ExpertID  string `bson:"expertId" json:"expertId"`
	Weekday   int    `bson:"weekday" json:"weekday"`     // 0 = Sunday .. 6 = Saturday
	StartTime string `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime   string `bson:"endTime" json:"endTime"`     // "HH:MM"
	IsActive  bool   `bson:"isActive" json:"isActive"`
}

// SetupAvailabilityRequest defines the payload for replacing an expert's
// weekly windows in one call. Multiple windows per weekday are allowed;
// overlapping windows are tolerated (the engine unions their slots).
type SetupAvailabilityRequest struct {
	Windows []AvailabilityWindow `json:"windows" binding:"required"`
}

// AvailabilityDTO is the expert-facing view of a published weekly setup.
type AvailabilityDTO struct {
	ExpertID string               `json:"expertId"`
	Windows  []AvailabilityWindow `json:"windows"`
}
