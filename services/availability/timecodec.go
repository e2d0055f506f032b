package availability

import (
	"fmt"
	"strconv"
	"strings"
)

// MalformedTimeError reports a wall-clock string that is not two numeric
// colon-separated tokens.
type MalformedTimeError struct {
	Value string
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("malformed wall-clock time %q: want \"HH:MM\"", e.Value)
}

// ParseClock converts an "HH:MM" string to minutes since midnight. A minute
// value of 60 or more carries into the hour, so "09:75" parses as 10:15
// (615). The carry matches how stored availability data has historically
// round-tripped and is kept as a compatibility shim; anything that is not two
// non-negative numeric tokens is rejected with a *MalformedTimeError.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, &MalformedTimeError{Value: s}
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return 0, &MalformedTimeError{Value: s}
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil || mins < 0 {
		return 0, &MalformedTimeError{Value: s}
	}
	hours += mins / 60
	mins %= 60
	return hours*60 + mins, nil
}

// FormatClock renders minutes since midnight on a 12-hour clock, e.g.
// "9:05 AM". Hours 0 and 12 both render as "12"; minutes are zero-padded.
func FormatClock(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	display := hours % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, mins, period)
}

// FormatClockAPI renders minutes since midnight as zero-padded 24-hour
// "HH:MM" for round-tripping back to the stores.
func FormatClockAPI(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
