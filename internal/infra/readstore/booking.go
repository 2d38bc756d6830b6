package readstore

import (
	"context"
	"time"

	"github.com/atomospherebrand-bot/relese/internal/domain/schedule"
	"github.com/atomospherebrand-bot/relese/internal/infra"
	"github.com/atomospherebrand-bot/relese/internal/infra/db"
	"github.com/atomospherebrand-bot/relese/internal/infra/repository"
	"github.com/atomospherebrand-bot/relese/internal/pkg/clock"
	"github.com/atomospherebrand-bot/relese/internal/pkg/pgconv"
	"github.com/atomospherebrand-bot/relese/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingViewColumns = `
SELECT b.id, b.client_name, b.client_phone, b.client_telegram,
       b.master_id, m.name, m.nickname, m.telegram,
       b.service_id, s.name, s.price,
       b.date, b.start_time, b.duration, b.status, b.notes, b.created_at
FROM bookings b
JOIN masters m ON m.id = b.master_id
JOIN services s ON s.id = b.service_id`

const (
	getBookingViewSQL = bookingViewColumns + `
WHERE b.id = $1`

	listBookingViewsSQL = bookingViewColumns + `
WHERE ($1::date IS NULL OR b.date >= $1::date)
  AND ($2::date IS NULL OR b.date <= $2::date)
  AND ($3::uuid IS NULL OR b.master_id = $3::uuid)
  AND ($4::text IS NULL OR b.status = $4::text)
ORDER BY b.date DESC, b.start_time DESC, b.created_at DESC
LIMIT NULLIF($5::int, 0)`

	bookingsStartingBetweenSQL = bookingViewColumns + `
WHERE b.status <> 'cancelled'
  AND b.date + b.start_time >= $1::timestamp
  AND b.date + b.start_time < $2::timestamp
ORDER BY b.date, b.start_time`

	busyInRangeSQL = `
SELECT master_id, date, start_time, duration
FROM bookings
WHERE date BETWEEN $1::date AND $2::date
  AND status <> 'cancelled'
ORDER BY master_id, date, start_time`
)

type rowScanner interface {
	Scan(dest ...any) error
}

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	v, err := scanBookingView(r.db.QueryRow(ctx, getBookingViewSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking view by ID", err)
	}
	return v, nil
}

func (r *BookingReadStore) List(ctx context.Context, f queries.BookingFilter) ([]*queries.BookingView, error) {
	var status pgtype.Text
	if f.Status != nil {
		status = pgtype.Text{String: f.Status.String(), Valid: true}
	}
	return r.queryViews(ctx, listBookingViewsSQL,
		pgconv.DatePtrToPgtype(f.From),
		pgconv.DatePtrToPgtype(f.To),
		pgconv.UUIDPtrToPgtype(f.MasterID),
		status,
		int32(f.Limit),
	)
}

// StartingBetween compares wall-clock values; the zone of from and to is dropped.
func (r *BookingReadStore) StartingBetween(ctx context.Context, from, to time.Time) ([]*queries.BookingView, error) {
	return r.queryViews(ctx, bookingsStartingBetweenSQL, clock.WallClock(from), clock.WallClock(to))
}

func (r *BookingReadStore) BusyIntervals(ctx context.Context, masterID uuid.UUID, date schedule.Date, exclude *uuid.UUID) ([]schedule.Interval, error) {
	return repository.NewBookingRepository(r.db).BusyIntervals(ctx, masterID, date, exclude)
}

func (r *BookingReadStore) BusyInRange(ctx context.Context, from, to schedule.Date) ([]queries.MasterInterval, error) {
	rows, err := r.db.Query(ctx, busyInRangeSQL, pgconv.DateToPgtype(from), pgconv.DateToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list busy intervals in range", err)
	}
	defer rows.Close()

	var out []queries.MasterInterval
	for rows.Next() {
		var (
			masterID uuid.UUID
			d        pgtype.Date
			start    pgtype.Time
			duration int32
		)
		if err := rows.Scan(&masterID, &d, &start, &duration); err != nil {
			return nil, infra.WrapRepoErr("failed to scan busy interval", err)
		}
		day, err := pgconv.DateFromPgtype(d)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid booking date", err, infra.KindDBFailure)
		}
		tod, err := pgconv.TimeOfDayFromPgtype(start)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid booking time", err, infra.KindDBFailure)
		}
		out = append(out, queries.MasterInterval{
			MasterID: masterID,
			Interval: schedule.ToInterval(day, tod, int(duration)),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate busy intervals", err)
	}
	return out, nil
}

func (r *BookingReadStore) queryViews(ctx context.Context, sql string, args ...any) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	result := make([]*queries.BookingView, 0)
	for rows.Next() {
		v, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return result, nil
}

func scanBookingView(row rowScanner) (*queries.BookingView, error) {
	var (
		v         queries.BookingView
		d         pgtype.Date
		start     pgtype.Time
		duration  int32
		price     int32
		createdAt pgtype.Timestamptz
	)
	err := row.Scan(
		&v.ID, &v.ClientName, &v.ClientPhone, &v.ClientTelegram,
		&v.MasterID, &v.MasterName, &v.MasterNickname, &v.MasterTelegram,
		&v.ServiceID, &v.ServiceName, &price,
		&d, &start, &duration, &v.Status, &v.Notes, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	day, err := pgconv.DateFromPgtype(d)
	if err != nil {
		return nil, err
	}
	tod, err := pgconv.TimeOfDayFromPgtype(start)
	if err != nil {
		return nil, err
	}
	v.Date = day.String()
	v.Time = tod.String()
	v.Duration = int(duration)
	v.ServicePrice = int(price)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &v, nil
}
