package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	minutesPerDay = 24 * 60
)

var (
	ErrInvalidDate     = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidTime     = errors.New("time must be in HH:MM format")
	ErrInvalidDuration = errors.New("duration must be a positive number of minutes")

	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// Date is a calendar day in the studio's wall clock. It carries no zone:
// the underlying time is midnight UTC and is only used for arithmetic.
type Date struct {
	t time.Time
}

func ParseDate(s string) (Date, error) {
	if !datePattern.MatchString(s) {
		return Date{}, ErrInvalidDate
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{t: t}, nil
}

func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf takes the calendar fields of t as seen in its own location.
func DateOf(t time.Time) Date {
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string     { return d.t.Format(DateLayout) }
func (d Date) Time() time.Time    { return d.t }
func (d Date) IsZero() bool       { return d.t.IsZero() }
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }
func (d Date) Display() string    { return d.t.Format("02.01.2006") }
func (d Date) At(t TimeOfDay) time.Time {
	return d.t.Add(time.Duration(t) * time.Minute)
}

// TimeOfDay is a start time in minutes since midnight.
type TimeOfDay int

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if !timePattern.MatchString(s) {
		return 0, ErrInvalidTime
	}
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, ErrInvalidTime
	}
	return TimeOfDay(h*60 + m), nil
}

func MustParseTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func At(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

func TimeOfDayOf(t time.Time) TimeOfDay {
	return At(t.Hour(), t.Minute())
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// String formats as zero padded HH:MM. Values past midnight are not wrapped.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

// Interval is the half-open range [Start, End) occupied by a session.
type Interval struct {
	Start time.Time
	End   time.Time
}

// ToInterval builds the occupied range of a session starting at t on d.
func ToInterval(d Date, t TimeOfDay, durationMinutes int) Interval {
	start := d.At(t)
	return Interval{
		Start: start,
		End:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}
}

// ParseInterval is ToInterval over the wire formats.
func ParseInterval(date, timeOfDay string, durationMinutes int) (Interval, error) {
	d, err := ParseDate(date)
	if err != nil {
		return Interval{}, err
	}
	t, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return Interval{}, err
	}
	if durationMinutes <= 0 {
		return Interval{}, ErrInvalidDuration
	}
	return ToInterval(d, t, durationMinutes), nil
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps reports whether the two half-open ranges share any instant.
// Touching ranges (one ends where the other starts) do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	disjoint := !i.End.After(o.Start) || !i.Start.Before(o.End)
	return !disjoint
}

// IsFree reports whether candidate overlaps none of busy.
func IsFree(candidate Interval, busy []Interval) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return false
		}
	}
	return true
}
