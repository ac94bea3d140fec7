package schedule

import "time"

// GridStep is the fixed quantum candidate slots are aligned to.
const GridStep = 15 * time.Minute

// WorkingWindow is a recurring daily window expressed as minute offsets from
// local midnight, half-open [StartMinutes, EndMinutes).
type WorkingWindow struct {
	StartMinutes int
	EndMinutes   int
}

// Slot is a bookable candidate interval of fixed duration.
type Slot struct {
	StartsAt time.Time
	EndsAt   time.Time
}

// BuildSlots generates the ordered sequence of bookable slots for one day.
//
// dayStart anchors the window's minute offsets to absolute time (midnight UTC
// of the requested date). Candidates start at window.StartMinutes and advance
// by GridStep while still inside the window. A candidate is dropped when it
// overlaps any busy interval or when it would extend past window.EndMinutes.
//
// A zero slotDuration or an empty window yields no slots; callers map the
// "no working hours" and "no active services" cases to an empty result, not
// an error.
func BuildSlots(dayStart time.Time, window WorkingWindow, slotDuration time.Duration, busy []Interval) []Slot {
	if slotDuration <= 0 {
		return nil
	}
	if window.EndMinutes <= window.StartMinutes {
		return nil
	}

	windowEnd := dayStart.Add(time.Duration(window.EndMinutes) * time.Minute)

	var slots []Slot
	for minutes := window.StartMinutes; minutes < window.EndMinutes; minutes += int(GridStep / time.Minute) {
		start := dayStart.Add(time.Duration(minutes) * time.Minute)
		end := start.Add(slotDuration)

		if end.After(windowEnd) {
			break
		}
		candidate := Interval{Start: start, End: end}
		if candidate.OverlapsAny(busy) {
			continue
		}
		slots = append(slots, Slot{StartsAt: start, EndsAt: end})
	}
	return slots
}
