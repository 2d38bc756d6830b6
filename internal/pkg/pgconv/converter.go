package pgconv

import (
	"errors"
	"time"

	"github.com/atomospherebrand-bot/relese/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var (
	ErrInvalidDate = errors.New("invalid date value in pgtype.Date")
	ErrInvalidTime = errors.New("invalid time value in pgtype.Time")
)

const microsPerMinute = int64(time.Minute / time.Microsecond)

func UUIDPtrFromPgtype(pu pgtype.UUID) *uuid.UUID {
	if !pu.Valid {
		return nil
	}
	id := uuid.UUID(pu.Bytes)
	return &id
}

func UUIDPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{Valid: false}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func DateFromPgtype(pd pgtype.Date) (schedule.Date, error) {
	if !pd.Valid || pd.InfinityModifier != pgtype.Finite {
		return schedule.Date{}, ErrInvalidDate
	}
	return schedule.DateOf(pd.Time), nil
}

func DateToPgtype(d schedule.Date) pgtype.Date {
	return pgtype.Date{Time: d.Time(), Valid: true}
}

func TimeOfDayFromPgtype(pt pgtype.Time) (schedule.TimeOfDay, error) {
	if !pt.Valid {
		return 0, ErrInvalidTime
	}
	return schedule.TimeOfDay(pt.Microseconds / microsPerMinute), nil
}

func TimeOfDayToPgtype(t schedule.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: int64(t) * microsPerMinute, Valid: true}
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

// IsNoRows checks if the error is pgx's "no rows" error
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func DatePtrToPgtype(d *schedule.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{Valid: false}
	}
	return DateToPgtype(*d)
}
