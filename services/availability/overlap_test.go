package availability

import "testing"

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     int
		want                           bool
	}{
		{"disjoint before", 540, 570, 600, 630, false},
		{"disjoint after", 600, 630, 540, 570, false},
		{"partial overlap", 540, 600, 570, 630, true},
		{"containment", 540, 660, 570, 600, true},
		{"identical", 540, 600, 540, 600, true},
		// Half-open: a slot ending exactly when another starts does not clash.
		{"touching end to start", 540, 570, 570, 600, false},
		{"touching start to end", 570, 600, 540, 570, false},
		{"one minute shared", 540, 571, 570, 600, true},
	}
	for _, c := range cases {
		if got := Overlaps(c.aStart, c.aEnd, c.bStart, c.bEnd); got != c.want {
			t.Fatalf("%s: Overlaps(%d,%d,%d,%d) = %v, want %v",
				c.name, c.aStart, c.aEnd, c.bStart, c.bEnd, got, c.want)
		}
	}
}
