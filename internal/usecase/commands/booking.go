package commands

import (
	"context"
	"log/slog"

	"github.com/atomospherebrand-bot/relese/internal/domain/booking"
	"github.com/atomospherebrand-bot/relese/internal/domain/schedule"
	reqdto "github.com/atomospherebrand-bot/relese/internal/handler/dto/request"
	"github.com/atomospherebrand-bot/relese/internal/infra"
	"github.com/atomospherebrand-bot/relese/internal/infra/metrics"
	"github.com/atomospherebrand-bot/relese/internal/pkg/clock"
	"github.com/atomospherebrand-bot/relese/internal/pkg/errs"
	"github.com/atomospherebrand-bot/relese/internal/usecase/queries"
	"github.com/atomospherebrand-bot/relese/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/atomospherebrand-bot/relese/internal/usecase/commands")

// Source tells where a booking request came from.
type Source string

const (
	SourceAdmin  Source = "admin"
	SourceBot    Source = "bot"
	SourceImport Source = "import"
)

// StatusNotifier tells the client about a status change. Implementations
// are best effort and never fail the caller.
type StatusNotifier interface {
	NotifyStatusChange(ctx context.Context, b *queries.BookingView)
}

type BookingCommands interface {
	Create(ctx context.Context, req reqdto.CreateBookingRequest, source Source) (*queries.BookingView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookingRequest) (*queries.BookingView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookingStatusRequest) (*queries.BookingView, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	views    queries.BookingQueries
	policy   booking.TransitionPolicy
	notifier StatusNotifier
	metrics  *metrics.Metrics
	clock    clock.Clock
	logger   *slog.Logger
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	views queries.BookingQueries,
	policy booking.TransitionPolicy,
	notifier StatusNotifier,
	m *metrics.Metrics,
	clk clock.Clock,
	logger *slog.Logger,
) BookingCommands {
	if policy == nil {
		policy = booking.PermissiveTransitions{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &bookingCommandsImpl{
		uow:      uow,
		views:    views,
		policy:   policy,
		notifier: notifier,
		metrics:  m,
		clock:    clk,
		logger:   logger,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, req reqdto.CreateBookingRequest, source Source) (*queries.BookingView, error) {
	ctx, span := tracer.Start(ctx, "booking.create", trace.WithAttributes(
		attribute.String("booking.master_id", req.MasterID.String()),
		attribute.String("booking.date", req.Date),
		attribute.String("booking.time", req.Time),
		attribute.String("booking.source", string(source)),
	))
	defer span.End()

	params, err := req.ToDomain()
	if err != nil {
		return nil, c.fail(span, errs.Kind(err, errs.ErrValidation))
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		svc, err := tx.Services().FindByID(ctx, params.ServiceID)
		if err != nil {
			return lookupErr(err, errs.ErrServiceNotFound)
		}
		if _, err := tx.Masters().FindByID(ctx, params.MasterID); err != nil {
			return lookupErr(err, errs.ErrMasterNotFound)
		}

		b, err := booking.New(params, svc.Duration, c.clock.Now())
		if err != nil {
			return errs.Kind(err, errs.ErrValidation)
		}
		if err := c.reserve(ctx, tx, b, nil); err != nil {
			return err
		}
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return c.writeErr(err)
		}
		id = b.ID()
		return nil
	})
	if err != nil {
		return nil, c.fail(span, err)
	}

	c.metrics.IncBookingCreated(string(source))
	c.logger.Info("booking created", "booking_id", id, "master_id", params.MasterID, "date", params.Date, "time", params.Time, "source", source)

	return c.readBack(ctx, id)
}

func (c *bookingCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookingRequest) (*queries.BookingView, error) {
	ctx, span := tracer.Start(ctx, "booking.update", trace.WithAttributes(
		attribute.String("booking.id", id.String()),
	))
	defer span.End()

	changes, err := req.ToDomain()
	if err != nil {
		return nil, c.fail(span, errs.Kind(err, errs.ErrValidation))
	}

	var statusChanged bool
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, id)
		if err != nil {
			return lookupErr(err, errs.ErrBookingNotFound)
		}
		before := b.Status()

		// The service is always re-read so the stored duration follows it.
		svc, err := tx.Services().FindByID(ctx, changes.ServiceOr(b.ServiceID()))
		if err != nil {
			return lookupErr(err, errs.ErrServiceNotFound)
		}
		if changes.MasterID != nil && *changes.MasterID != b.MasterID() {
			if _, err := tx.Masters().FindByID(ctx, *changes.MasterID); err != nil {
				return lookupErr(err, errs.ErrMasterNotFound)
			}
		}

		if err := b.Apply(changes, svc.Duration, c.policy); err != nil {
			return domainErr(err)
		}
		if err := c.reserve(ctx, tx, b, &id); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return c.writeErr(err)
		}
		statusChanged = b.Status() != before
		return nil
	})
	if err != nil {
		return nil, c.fail(span, err)
	}

	view, err := c.readBack(ctx, id)
	if err != nil {
		return nil, err
	}
	if statusChanged {
		c.statusChanged(ctx, view)
	}
	return view, nil
}

func (c *bookingCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookingStatusRequest) (*queries.BookingView, error) {
	ctx, span := tracer.Start(ctx, "booking.update_status", trace.WithAttributes(
		attribute.String("booking.id", id.String()),
		attribute.String("booking.status", req.Status),
	))
	defer span.End()

	status, err := req.ToDomain()
	if err != nil {
		return nil, c.fail(span, errs.Kind(err, errs.ErrValidation))
	}

	var changed bool
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, id)
		if err != nil {
			return lookupErr(err, errs.ErrBookingNotFound)
		}
		wasBlocking := b.Blocks()

		changed, err = b.ChangeStatus(status, c.policy)
		if err != nil {
			return domainErr(err)
		}
		if !changed {
			return nil
		}
		// A cancelled booking that comes back must still fit its slot.
		if !wasBlocking && b.Blocks() {
			if err := c.reserve(ctx, tx, b, &id); err != nil {
				return err
			}
		}
		if err := tx.Bookings().UpdateStatus(ctx, id, status); err != nil {
			return c.writeErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, c.fail(span, err)
	}

	view, err := c.readBack(ctx, id)
	if err != nil {
		return nil, err
	}
	if changed {
		c.statusChanged(ctx, view)
	}
	return view, nil
}

func (c *bookingCommandsImpl) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	ctx, span := tracer.Start(ctx, "booking.delete", trace.WithAttributes(
		attribute.String("booking.id", id.String()),
	))
	defer span.End()

	var removed bool
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		removed, err = tx.Bookings().Delete(ctx, id)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return false, c.fail(span, err)
	}
	if removed {
		c.logger.Info("booking deleted", "booking_id", id)
	}
	return removed, nil
}

// reserve serializes writers of the booking's (master, date) and rejects
// the booking when its interval overlaps another non-cancelled booking.
func (c *bookingCommandsImpl) reserve(ctx context.Context, tx shared.Tx, b *booking.Booking, exclude *uuid.UUID) error {
	repo := tx.Bookings()
	if err := repo.LockSlot(ctx, b.MasterID(), b.Date()); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	busy, err := repo.BusyIntervals(ctx, b.MasterID(), b.Date(), exclude)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !schedule.IsFree(b.Interval(), busy) {
		c.metrics.IncBookingConflict()
		return errs.Kind(errs.ErrSlotOccupied, errs.ErrConflict)
	}
	return nil
}

func (c *bookingCommandsImpl) writeErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindConflict):
		c.metrics.IncBookingConflict()
		return errs.Kind(errs.ErrSlotOccupied, errs.ErrConflict)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Kind(errs.ErrBookingNotFound, errs.ErrNotFound)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Kind(errs.Wrap(err, "master or service no longer exists"), errs.ErrNotFound)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}

func (c *bookingCommandsImpl) readBack(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	view, err := c.views.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *bookingCommandsImpl) statusChanged(ctx context.Context, view *queries.BookingView) {
	c.metrics.IncStatusChange(view.Status)
	c.logger.Info("booking status changed", "booking_id", view.ID, "status", view.Status)
	if c.notifier == nil {
		return
	}
	switch booking.Status(view.Status) {
	case booking.StatusConfirmed, booking.StatusCancelled:
		c.notifier.NotifyStatusChange(ctx, view)
	}
}

func (c *bookingCommandsImpl) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

// lookupErr turns a missing row into sentinel marked as NotFound.
func lookupErr(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Kind(sentinel, errs.ErrNotFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

// domainErr classifies errors returned by domain methods.
func domainErr(err error) error {
	if errs.Is(err, booking.ErrStatusTransition) {
		return errs.Kind(err, errs.ErrConflict)
	}
	return errs.Kind(err, errs.ErrValidation)
}
