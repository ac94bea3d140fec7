// Package schedule holds the pure time arithmetic the booking core is built
// on: half-open interval overlap checks and bookable-slot generation. Nothing
// in this package performs I/O.
package schedule

import "time"

// Interval is a half-open time interval [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start, end time.Time) Interval {
	return Interval{Start: start, End: end}
}

// Overlaps reports whether two half-open intervals share any instant.
// Intervals that only touch at a boundary (i.End == o.Start) do not overlap,
// so a slot ending exactly when another begins stays bookable. This is the
// sole overlap primitive used by every conflict check in the system.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}

// OverlapsAny reports whether the interval overlaps at least one of busy.
func (i Interval) OverlapsAny(busy []Interval) bool {
	for _, b := range busy {
		if i.Overlaps(b) {
			return true
		}
	}
	return false
}
