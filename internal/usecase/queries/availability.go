package queries

import (
	"context"
	"time"

	"github.com/atomospherebrand-bot/relese/internal/domain/schedule"
	"github.com/atomospherebrand-bot/relese/internal/infra"
	"github.com/atomospherebrand-bot/relese/internal/pkg/clock"
	"github.com/atomospherebrand-bot/relese/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultCalendarDays = 30
	MaxCalendarDays     = 60
)

var ErrInvalidCalendarDays = errs.New("days must be between 1 and 60")

type AvailabilityQueries interface {
	// GetAvailableSlots looks up the service duration and lists free start times.
	GetAvailableSlots(ctx context.Context, masterID, serviceID uuid.UUID, date string) ([]string, error)
	IsSlotAvailable(ctx context.Context, masterID uuid.UUID, date, at string, durationMinutes int, exclude *uuid.UUID) (bool, error)
	// Calendar reports per day whether any active master can take the service.
	Calendar(ctx context.Context, serviceID uuid.UUID, days int, start *schedule.Date) ([]CalendarDay, error)
	MastersForSlot(ctx context.Context, serviceID uuid.UUID, date, at string) ([]*MasterView, error)
}

type availabilityQueriesImpl struct {
	bookings BookingReadStore
	catalog  CatalogReadStore
	hours    schedule.WorkingHours
	clock    clock.Clock
}

func NewAvailabilityQueries(bookings BookingReadStore, catalog CatalogReadStore, hours schedule.WorkingHours, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{
		bookings: bookings,
		catalog:  catalog,
		hours:    hours,
		clock:    clk,
	}
}

func (q *availabilityQueriesImpl) GetAvailableSlots(ctx context.Context, masterID, serviceID uuid.UUID, date string) ([]string, error) {
	d, err := schedule.ParseDate(date)
	if err != nil {
		return nil, errs.Kind(err, errs.ErrValidation)
	}
	duration, err := q.serviceDuration(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	busy, err := q.bookings.BusyIntervals(ctx, masterID, d, nil)
	if err != nil {
		return nil, err
	}
	return schedule.AvailableSlots(d, q.hours, duration, busy), nil
}

func (q *availabilityQueriesImpl) IsSlotAvailable(ctx context.Context, masterID uuid.UUID, date, at string, durationMinutes int, exclude *uuid.UUID) (bool, error) {
	candidate, err := schedule.ParseInterval(date, at, durationMinutes)
	if err != nil {
		return false, errs.Kind(err, errs.ErrValidation)
	}
	busy, err := q.bookings.BusyIntervals(ctx, masterID, schedule.DateOf(candidate.Start), exclude)
	if err != nil {
		return false, err
	}
	return schedule.IsFree(candidate, busy), nil
}

func (q *availabilityQueriesImpl) Calendar(ctx context.Context, serviceID uuid.UUID, days int, start *schedule.Date) ([]CalendarDay, error) {
	if days == 0 {
		days = DefaultCalendarDays
	}
	if days < 1 || days > MaxCalendarDays {
		return nil, errs.Kind(ErrInvalidCalendarDays, errs.ErrValidation)
	}
	duration, err := q.serviceDuration(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	today := schedule.DateOf(now)
	from := today
	if start != nil {
		from = *start
	}
	to := from.AddDays(days - 1)

	masters, err := q.catalog.ListMasters(ctx, false)
	if err != nil {
		return nil, err
	}
	occupied, err := q.bookings.BusyInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	busy := groupBusy(occupied)

	result := make([]CalendarDay, 0, days)
	for i := 0; i < days; i++ {
		d := from.AddDays(i)
		day := CalendarDay{Date: d.String()}
		if !d.Before(today) {
			for _, m := range masters {
				if q.hasFreeSlot(d, today, now, duration, busy[busyKey{m.ID, d.String()}]) {
					day.Available = true
					break
				}
			}
		}
		result = append(result, day)
	}
	return result, nil
}

func (q *availabilityQueriesImpl) MastersForSlot(ctx context.Context, serviceID uuid.UUID, date, at string) ([]*MasterView, error) {
	duration, err := q.serviceDuration(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	candidate, err := schedule.ParseInterval(date, at, duration)
	if err != nil {
		return nil, errs.Kind(err, errs.ErrValidation)
	}
	d := schedule.DateOf(candidate.Start)
	start := schedule.TimeOfDayOf(candidate.Start)
	if !q.hours.Fits(start, duration) {
		return []*MasterView{}, nil
	}

	masters, err := q.catalog.ListMasters(ctx, false)
	if err != nil {
		return nil, err
	}
	out := make([]*MasterView, 0, len(masters))
	for _, m := range masters {
		busy, err := q.bookings.BusyIntervals(ctx, m.ID, d, nil)
		if err != nil {
			return nil, err
		}
		if schedule.IsFree(candidate, busy) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (q *availabilityQueriesImpl) serviceDuration(ctx context.Context, serviceID uuid.UUID) (int, error) {
	svc, err := q.catalog.FindService(ctx, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, errs.Kind(errs.ErrServiceNotFound, errs.ErrNotFound)
		}
		return 0, err
	}
	return svc.Duration, nil
}

// hasFreeSlot skips start times already in the past on the current day.
func (q *availabilityQueriesImpl) hasFreeSlot(d, today schedule.Date, now time.Time, duration int, busy []schedule.Interval) bool {
	slots := schedule.AvailableSlots(d, q.hours, duration, busy)
	if !d.Equal(today) {
		return len(slots) > 0
	}
	earliest := schedule.TimeOfDayOf(now).String()
	for _, s := range slots {
		if s > earliest {
			return true
		}
	}
	return false
}

type busyKey struct {
	master uuid.UUID
	date   string
}

func groupBusy(occupied []MasterInterval) map[busyKey][]schedule.Interval {
	out := make(map[busyKey][]schedule.Interval)
	for _, mi := range occupied {
		k := busyKey{mi.MasterID, schedule.DateOf(mi.Interval.Start).String()}
		out[k] = append(out[k], mi.Interval)
	}
	return out
}
