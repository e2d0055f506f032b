package booking

import "errors"

var (
	// ErrSlotTaken means a confirmed booking already overlaps the proposed
	// interval. The learner's slot list was computed from a snapshot that has
	// since gone stale.
	ErrSlotTaken = errors.New("requested slot is no longer available")

	// ErrDurationNotOffered means the requested duration is not one of the
	// configured session durations.
	ErrDurationNotOffered = errors.New("requested duration is not offered")
)
