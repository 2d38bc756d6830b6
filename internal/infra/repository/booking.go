package repository

import (
	"context"

	"github.com/atomospherebrand-bot/relese/internal/domain/booking"
	"github.com/atomospherebrand-bot/relese/internal/domain/schedule"
	"github.com/atomospherebrand-bot/relese/internal/infra"
	"github.com/atomospherebrand-bot/relese/internal/infra/db"
	"github.com/atomospherebrand-bot/relese/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	lockBookingSlotSQL = `SELECT pg_advisory_xact_lock(hashtext($1::text || ':' || $2::date::text))`

	busyIntervalsSQL = `
SELECT date, start_time, duration
FROM bookings
WHERE master_id = $1
  AND date = $2
  AND status <> 'cancelled'
  AND ($3::uuid IS NULL OR id <> $3::uuid)
ORDER BY start_time`

	findBookingSQL = `
SELECT id, client_name, client_phone, client_telegram, master_id, service_id,
       date, start_time, duration, status, notes, created_at
FROM bookings
WHERE id = $1`

	insertBookingSQL = `
INSERT INTO bookings (id, client_name, client_phone, client_telegram, master_id, service_id,
                      date, start_time, duration, status, notes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	updateBookingSQL = `
UPDATE bookings
SET client_name = $2, client_phone = $3, client_telegram = $4, master_id = $5, service_id = $6,
    date = $7, start_time = $8, duration = $9, status = $10, notes = $11
WHERE id = $1`

	updateBookingStatusSQL = `UPDATE bookings SET status = $2 WHERE id = $1`

	deleteBookingSQL = `DELETE FROM bookings WHERE id = $1`
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(db db.DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) LockSlot(ctx context.Context, masterID uuid.UUID, date schedule.Date) error {
	if _, err := r.db.Exec(ctx, lockBookingSlotSQL, masterID.String(), pgconv.DateToPgtype(date)); err != nil {
		return infra.WrapRepoErr("failed to lock booking slot", err)
	}
	return nil
}

func (r *BookingRepository) BusyIntervals(ctx context.Context, masterID uuid.UUID, date schedule.Date, exclude *uuid.UUID) ([]schedule.Interval, error) {
	rows, err := r.db.Query(ctx, busyIntervalsSQL, masterID, pgconv.DateToPgtype(date), pgconv.UUIDPtrToPgtype(exclude))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list busy intervals", err)
	}
	defer rows.Close()

	var out []schedule.Interval
	for rows.Next() {
		var (
			d        pgtype.Date
			start    pgtype.Time
			duration int32
		)
		if err := rows.Scan(&d, &start, &duration); err != nil {
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
		out = append(out, schedule.ToInterval(day, tod, int(duration)))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate busy intervals", err)
	}
	return out, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var row bookingRow
	err := r.db.QueryRow(ctx, findBookingSQL, id).Scan(
		&row.ID, &row.ClientName, &row.ClientPhone, &row.ClientTelegram, &row.MasterID, &row.ServiceID,
		&row.Date, &row.StartTime, &row.Duration, &row.Status, &row.Notes, &row.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return row.toDomain()
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.db.Exec(ctx, insertBookingSQL,
		b.ID(), b.ClientName(), b.ClientPhone(), b.ClientTelegram(), b.MasterID(), b.ServiceID(),
		pgconv.DateToPgtype(b.Date()), pgconv.TimeOfDayToPgtype(b.Start()), b.DurationMinutes(),
		b.Status().String(), b.Notes(), b.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx, updateBookingSQL,
		b.ID(), b.ClientName(), b.ClientPhone(), b.ClientTelegram(), b.MasterID(), b.ServiceID(),
		pgconv.DateToPgtype(b.Date()), pgconv.TimeOfDayToPgtype(b.Start()), b.DurationMinutes(),
		b.Status().String(), b.Notes(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	tag, err := r.db.Exec(ctx, updateBookingStatusSQL, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, deleteBookingSQL, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete booking", err)
	}
	return tag.RowsAffected() > 0, nil
}

type bookingRow struct {
	ID             uuid.UUID
	ClientName     string
	ClientPhone    string
	ClientTelegram *string
	MasterID       uuid.UUID
	ServiceID      uuid.UUID
	Date           pgtype.Date
	StartTime      pgtype.Time
	Duration       int32
	Status         string
	Notes          *string
	CreatedAt      pgtype.Timestamptz
}

func (row bookingRow) toDomain() (*booking.Booking, error) {
	d, err := pgconv.DateFromPgtype(row.Date)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking date", err, infra.KindDBFailure)
	}
	tod, err := pgconv.TimeOfDayFromPgtype(row.StartTime)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking time", err, infra.KindDBFailure)
	}
	return booking.Reconstruct(
		row.ID,
		row.ClientName, row.ClientPhone,
		row.ClientTelegram,
		row.MasterID, row.ServiceID,
		d, tod,
		int(row.Duration),
		booking.Status(row.Status),
		row.Notes,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
