package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/atomospherebrand-bot/relese/internal/domain/schedule"
	"github.com/atomospherebrand-bot/relese/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrEmptyClientName   = errors.New("client name cannot be empty")
	ErrEmptyClientPhone  = errors.New("client phone cannot be empty")
	ErrMissingMaster     = errors.New("master is required")
	ErrMissingService    = errors.New("service is required")
	ErrClientNameTooLong = errors.New("client name is too long (max 255 characters)")
)

const MaxClientNameLength = 255

type Booking struct {
	id             uuid.UUID
	clientName     string
	clientPhone    string
	clientTelegram *string
	masterID       uuid.UUID
	serviceID      uuid.UUID
	date           schedule.Date
	start          schedule.TimeOfDay
	duration       int
	status         Status
	notes          *string
	createdAt      time.Time
}

// NewParams carries a booking request in wire formats.
type NewParams struct {
	ClientName     string
	ClientPhone    string
	ClientTelegram *string
	MasterID       uuid.UUID
	ServiceID      uuid.UUID
	Date           string
	Time           string
	Status         Status
	Notes          *string
}

// New validates params and builds a booking that occupies durationMinutes.
// An empty status means pending.
func New(p NewParams, durationMinutes int, now time.Time) (*Booking, error) {
	b := &Booking{
		id:             uuid.New(),
		clientTelegram: patch.Trimmed(p.ClientTelegram),
		notes:          patch.Trimmed(p.Notes),
		createdAt:      now,
	}
	if err := b.setClient(p.ClientName, p.ClientPhone); err != nil {
		return nil, err
	}
	if err := b.setSlot(p.MasterID, p.ServiceID, p.Date, p.Time, durationMinutes); err != nil {
		return nil, err
	}

	status := p.Status
	if status == "" {
		status = StatusPending
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	b.status = status

	return b, nil
}

func Reconstruct(
	id uuid.UUID,
	clientName, clientPhone string,
	clientTelegram *string,
	masterID, serviceID uuid.UUID,
	date schedule.Date,
	start schedule.TimeOfDay,
	duration int,
	status Status,
	notes *string,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:             id,
		clientName:     clientName,
		clientPhone:    clientPhone,
		clientTelegram: clientTelegram,
		masterID:       masterID,
		serviceID:      serviceID,
		date:           date,
		start:          start,
		duration:       duration,
		status:         status,
		notes:          notes,
		createdAt:      createdAt,
	}
}

// Changes is a partial update. Nil fields keep their current value; an
// empty ClientTelegram or Notes clears the field.
type Changes struct {
	ClientName     *string
	ClientPhone    *string
	ClientTelegram *string
	MasterID       *uuid.UUID
	ServiceID      *uuid.UUID
	Date           *string
	Time           *string
	Status         *Status
	Notes          *string
}

func (c Changes) ServiceOr(current uuid.UUID) uuid.UUID {
	if c.ServiceID != nil {
		return *c.ServiceID
	}
	return current
}

// Apply merges c over the booking. durationMinutes is the duration of the
// (possibly new) service and replaces the stored one.
func (b *Booking) Apply(c Changes, durationMinutes int, policy TransitionPolicy) error {
	name, phone := b.clientName, b.clientPhone
	if c.ClientName != nil {
		name = *c.ClientName
	}
	if c.ClientPhone != nil {
		phone = *c.ClientPhone
	}

	masterID, serviceID := b.masterID, c.ServiceOr(b.serviceID)
	if c.MasterID != nil {
		masterID = *c.MasterID
	}
	date, start := b.date.String(), b.start.String()
	if c.Date != nil {
		date = *c.Date
	}
	if c.Time != nil {
		start = *c.Time
	}

	next := *b
	if err := next.setClient(name, phone); err != nil {
		return err
	}
	if err := next.setSlot(masterID, serviceID, date, start, durationMinutes); err != nil {
		return err
	}
	if c.Status != nil {
		if _, err := next.ChangeStatus(*c.Status, policy); err != nil {
			return err
		}
	}
	if c.ClientTelegram != nil {
		next.clientTelegram = patch.Trimmed(c.ClientTelegram)
	}
	if c.Notes != nil {
		next.notes = patch.Trimmed(c.Notes)
	}

	*b = next
	return nil
}

// ChangeStatus sets the status when policy allows it. changed is false when
// the booking already had that status.
func (b *Booking) ChangeStatus(to Status, policy TransitionPolicy) (changed bool, err error) {
	if policy == nil {
		policy = PermissiveTransitions{}
	}
	if err := policy.Allow(b.status, to); err != nil {
		return false, err
	}
	if b.status == to {
		return false, nil
	}
	b.status = to
	return true, nil
}

// Interval is the wall-clock range the booking occupies.
func (b *Booking) Interval() schedule.Interval {
	return schedule.ToInterval(b.date, b.start, b.duration)
}

func (b *Booking) Blocks() bool {
	return b.status.Blocks()
}

func (b *Booking) setClient(name, phone string) error {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return ErrEmptyClientName
	}
	if len([]rune(name)) > MaxClientNameLength {
		return ErrClientNameTooLong
	}
	if phone == "" {
		return ErrEmptyClientPhone
	}
	b.clientName = name
	b.clientPhone = phone
	return nil
}

func (b *Booking) setSlot(masterID, serviceID uuid.UUID, date, start string, durationMinutes int) error {
	if masterID == uuid.Nil {
		return ErrMissingMaster
	}
	if serviceID == uuid.Nil {
		return ErrMissingService
	}
	d, err := schedule.ParseDate(date)
	if err != nil {
		return err
	}
	t, err := schedule.ParseTimeOfDay(start)
	if err != nil {
		return err
	}
	if durationMinutes <= 0 {
		return schedule.ErrInvalidDuration
	}
	b.masterID = masterID
	b.serviceID = serviceID
	b.date = d
	b.start = t
	b.duration = durationMinutes
	return nil
}

func (b *Booking) ID() uuid.UUID             { return b.id }
func (b *Booking) ClientName() string        { return b.clientName }
func (b *Booking) ClientPhone() string       { return b.clientPhone }
func (b *Booking) ClientTelegram() *string   { return b.clientTelegram }
func (b *Booking) MasterID() uuid.UUID       { return b.masterID }
func (b *Booking) ServiceID() uuid.UUID      { return b.serviceID }
func (b *Booking) Date() schedule.Date       { return b.date }
func (b *Booking) Start() schedule.TimeOfDay { return b.start }
func (b *Booking) DurationMinutes() int      { return b.duration }
func (b *Booking) Status() Status            { return b.status }
func (b *Booking) Notes() *string            { return b.notes }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }
