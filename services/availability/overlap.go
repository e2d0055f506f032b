package availability

// Overlaps reports whether the half-open minute intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Intervals that merely touch at an endpoint do not
// overlap. This is the sole conflict rule used to reject a candidate slot.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}
