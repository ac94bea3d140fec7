//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"salon-booking/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
)

func at(minutes int) time.Time {
	base := time.Date(2024, 8, 5, 0, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(minutes) * time.Minute)
}

func iv(startMin, endMin int) schedule.Interval {
	return schedule.NewInterval(at(startMin), at(endMin))
}

func TestInterval_Overlaps(t *testing.T) {
	testCases := []struct {
		name     string
		a        schedule.Interval
		b        schedule.Interval
		expected bool
	}{
		{name: "identical intervals", a: iv(0, 30), b: iv(0, 30), expected: true},
		{name: "partial overlap at tail", a: iv(0, 30), b: iv(15, 45), expected: true},
		{name: "fully contained", a: iv(0, 60), b: iv(15, 30), expected: true},
		{name: "touching boundaries do not overlap", a: iv(0, 30), b: iv(30, 60), expected: false},
		{name: "disjoint", a: iv(0, 30), b: iv(45, 60), expected: false},
		{name: "one minute of overlap", a: iv(0, 31), b: iv(30, 60), expected: true},
		{name: "zero-duration interval at boundary", a: iv(30, 30), b: iv(0, 30), expected: false},
		{name: "zero-duration interval strictly inside overlaps", a: iv(15, 15), b: iv(0, 30), expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Overlaps(tc.b))
		})
	}
}

func TestInterval_OverlapsIsSymmetric(t *testing.T) {
	pairs := []struct {
		a, b schedule.Interval
	}{
		{iv(0, 30), iv(30, 60)},
		{iv(0, 30), iv(15, 45)},
		{iv(0, 120), iv(30, 45)},
		{iv(10, 20), iv(50, 60)},
		{iv(0, 30), iv(0, 30)},
	}

	for _, p := range pairs {
		assert.Equal(t, p.a.Overlaps(p.b), p.b.Overlaps(p.a),
			"overlap must be symmetric for %v and %v", p.a, p.b)
	}
}

func TestInterval_OverlapsAny(t *testing.T) {
	busy := []schedule.Interval{iv(60, 90), iv(120, 150)}

	assert.True(t, iv(75, 105).OverlapsAny(busy))
	assert.False(t, iv(90, 120).OverlapsAny(busy), "slot between busy intervals is free")
	assert.False(t, iv(0, 60).OverlapsAny(busy))
	assert.False(t, iv(0, 30).OverlapsAny(nil))
}
