package clock

import (
	"time"

	"github.com/atomospherebrand-bot/relese/internal/pkg/errs"
)

type Clock interface {
	Now() time.Time
}

// StudioClock reports the current time in the studio's wall-clock zone.
// Booking dates and times are stored without a zone, so "today" and
// "in two hours" must be computed in that zone.
type StudioClock struct {
	loc *time.Location
}

func NewStudioClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return &StudioClock{loc: loc}
}

func (c *StudioClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// LoadLocation resolves an IANA zone name. An empty name means UTC; an
// unknown one is an error so a typo cannot shift every booking date.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errs.Wrapf(err, "unknown time zone %q", name)
	}
	return loc, nil
}

// WallClock drops the zone of t, keeping its calendar fields.
func WallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
