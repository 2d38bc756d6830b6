package schedule

import "errors"

const (
	OpeningHour     = 10
	ClosingHour     = 22
	SlotStepMinutes = 30
)

var ErrInvalidWorkingHours = errors.New("invalid working hours")

// WorkingHours is the daily window in which sessions may start and end.
type WorkingHours struct {
	Open  TimeOfDay
	Close TimeOfDay
	Step  int
}

func DefaultWorkingHours() WorkingHours {
	return WorkingHours{
		Open:  At(OpeningHour, 0),
		Close: At(ClosingHour, 0),
		Step:  SlotStepMinutes,
	}
}

func NewWorkingHours(openHour, closeHour, stepMinutes int) (WorkingHours, error) {
	if openHour < 0 || closeHour > 24 || openHour >= closeHour || stepMinutes <= 0 {
		return WorkingHours{}, ErrInvalidWorkingHours
	}
	return WorkingHours{
		Open:  At(openHour, 0),
		Close: At(closeHour, 0),
		Step:  stepMinutes,
	}, nil
}

// Candidates lists every start time from Open in Step increments whose
// session of durationMinutes still ends no later than Close.
func (w WorkingHours) Candidates(durationMinutes int) []TimeOfDay {
	if durationMinutes <= 0 || w.Step <= 0 {
		return nil
	}
	var out []TimeOfDay
	for t := w.Open; t < w.Close; t = t.Add(w.Step) {
		if t.Add(durationMinutes) > w.Close {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Fits reports whether a session at t fits the window. Off-grid start
// times are accepted as long as the session stays within hours.
func (w WorkingHours) Fits(t TimeOfDay, durationMinutes int) bool {
	return t >= w.Open && t.Add(durationMinutes) <= w.Close
}

// AvailableSlots returns the ascending "HH:MM" start times on d that fit the
// working hours and overlap none of busy. An empty result is not an error.
func AvailableSlots(d Date, w WorkingHours, durationMinutes int, busy []Interval) []string {
	slots := make([]string, 0)
	for _, t := range w.Candidates(durationMinutes) {
		if IsFree(ToInterval(d, t, durationMinutes), busy) {
			slots = append(slots, t.String())
		}
	}
	return slots
}

// HasFreeSlot is AvailableSlots without building the list.
func HasFreeSlot(d Date, w WorkingHours, durationMinutes int, busy []Interval) bool {
	for _, t := range w.Candidates(durationMinutes) {
		if IsFree(ToInterval(d, t, durationMinutes), busy) {
			return true
		}
	}
	return false
}
