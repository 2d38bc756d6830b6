package queries

import (
	"context"
	"time"

	"github.com/atomospherebrand-bot/relese/internal/domain/booking"
	"github.com/atomospherebrand-bot/relese/internal/domain/schedule"
	"github.com/atomospherebrand-bot/relese/internal/infra"
	"github.com/atomospherebrand-bot/relese/internal/pkg/errs"

	"github.com/google/uuid"
)

// BookingFilter narrows a booking listing. From and To are inclusive.
type BookingFilter struct {
	From     *schedule.Date
	To       *schedule.Date
	MasterID *uuid.UUID
	Status   *booking.Status
	Limit    int
}

// MasterInterval is one occupied range of a master.
type MasterInterval struct {
	MasterID uuid.UUID
	Interval schedule.Interval
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, f BookingFilter) ([]*BookingView, error)
	BusyIntervals(ctx context.Context, masterID uuid.UUID, date schedule.Date, exclude *uuid.UUID) ([]schedule.Interval, error)
	BusyInRange(ctx context.Context, from, to schedule.Date) ([]MasterInterval, error)
	// StartingBetween lists non-cancelled bookings whose start lies in [from, to).
	StartingBetween(ctx context.Context, from, to time.Time) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, f BookingFilter) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Kind(errs.ErrBookingNotFound, errs.ErrNotFound)
		}
		return nil, err
	}
	return v, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, f BookingFilter) ([]*BookingView, error) {
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return nil, errs.Kind(errs.New("'to' must not be before 'from'"), errs.ErrValidation)
	}
	if f.Status != nil && !f.Status.IsValid() {
		return nil, errs.Kind(booking.ErrInvalidStatus, errs.ErrValidation)
	}
	if f.Limit < 0 || f.Limit > MaxListLimit {
		f.Limit = MaxListLimit
	}
	return q.store.List(ctx, f)
}

const MaxListLimit = 1000
