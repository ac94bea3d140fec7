package queries

import (
	"context"
	"time"

	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrProfessionalNotFound = errs.New("professional not found")
	ErrInvalidDate          = errs.New("invalid date format")
)

// ScheduleReadStore loads everything the availability computation needs for
// one professional and one day. All methods are read-only.
type ScheduleReadStore interface {
	ProfessionalByID(ctx context.Context, id uuid.UUID) (*ProfessionalSummary, error)
	// WorkingWindow returns the professional's window for a weekday
	// (0=Sunday..6=Saturday); KindNotFound when no entry exists.
	WorkingWindow(ctx context.Context, professionalID uuid.UUID, weekday int) (schedule.WorkingWindow, error)
	// OccupyingIntervals returns PENDING/CONFIRMED appointment intervals
	// starting within [from, to], ordered by start time.
	OccupyingIntervals(ctx context.Context, professionalID uuid.UUID, from, to time.Time) ([]schedule.Interval, error)
	// BreakIntervals returns break intervals starting within [from, to],
	// ordered by start time.
	BreakIntervals(ctx context.Context, professionalID uuid.UUID, from, to time.Time) ([]schedule.Interval, error)
	// MinActiveServiceMinutes returns the shortest active service duration
	// offered by the professional, 0 when none is offered.
	MinActiveServiceMinutes(ctx context.Context, professionalID uuid.UUID) (int32, error)
}

// AvailabilityCache is a read-through day cache. Implementations must be safe
// to call with a missing backend (the noop cache).
type AvailabilityCache interface {
	Get(ctx context.Context, professionalID uuid.UUID, date string) (*AvailabilityView, bool)
	Set(ctx context.Context, professionalID uuid.UUID, date string, view *AvailabilityView)
	Invalidate(ctx context.Context, professionalID uuid.UUID, date string)
}

type AvailabilityQueries interface {
	// GetAvailability computes the bookable slot sequence for a professional
	// on a calendar date (strict YYYY-MM-DD).
	GetAvailability(ctx context.Context, professionalID uuid.UUID, date string) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	store ScheduleReadStore
	cache AvailabilityCache
}

func NewAvailabilityQueries(store ScheduleReadStore, cache AvailabilityCache) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store, cache: cache}
}

func (q *availabilityQueriesImpl) GetAvailability(ctx context.Context, professionalID uuid.UUID, date string) (*AvailabilityView, error) {
	dayStart, err := parseDay(date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	professional, err := q.store.ProfessionalByID(ctx, professionalID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProfessionalNotFound
		}
		return nil, errs.Wrap(err, "failed to load professional")
	}

	if view, ok := q.cache.Get(ctx, professionalID, date); ok {
		return view, nil
	}

	slots, err := q.computeSlots(ctx, professionalID, dayStart)
	if err != nil {
		return nil, err
	}

	view := &AvailabilityView{
		Professional: *professional,
		Date:         date,
		Slots:        slots,
	}
	q.cache.Set(ctx, professionalID, date, view)

	return view, nil
}

func (q *availabilityQueriesImpl) computeSlots(ctx context.Context, professionalID uuid.UUID, dayStart time.Time) ([]SlotView, error) {
	window, err := q.store.WorkingWindow(ctx, professionalID, int(dayStart.Weekday()))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return []SlotView{}, nil // day off, not an error
		}
		return nil, errs.Wrap(err, "failed to load working hours")
	}

	minMinutes, err := q.store.MinActiveServiceMinutes(ctx, professionalID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load service durations")
	}
	if minMinutes <= 0 {
		return []SlotView{}, nil // nothing bookable without an active service
	}

	dayEnd := dayStart.Add(24*time.Hour - time.Second)

	busy, err := q.store.OccupyingIntervals(ctx, professionalID, dayStart, dayEnd)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load appointments")
	}
	breaks, err := q.store.BreakIntervals(ctx, professionalID, dayStart, dayEnd)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load breaks")
	}
	busy = append(busy, breaks...)

	slots := schedule.BuildSlots(dayStart, window, time.Duration(minMinutes)*time.Minute, busy)

	views := make([]SlotView, len(slots))
	for i, s := range slots {
		views[i] = SlotView{StartsAt: s.StartsAt, EndsAt: s.EndsAt, Available: true}
	}
	return views, nil
}

// parseDay accepts strict YYYY-MM-DD and anchors it at midnight UTC.
func parseDay(date string) (time.Time, error) {
	day, err := time.ParseInLocation(time.DateOnly, date, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return day, nil
}
