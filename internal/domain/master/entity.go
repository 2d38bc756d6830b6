package master

import (
	"errors"
	"strings"
	"time"

	"github.com/atomospherebrand-bot/relese/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("master name cannot be empty")
	ErrEmptyNickname = errors.New("master nickname cannot be empty")
	ErrNameTooLong   = errors.New("master name is too long (max 255 characters)")
)

const MaxNameLength = 255

// Master is a tattoo artist. Inactive masters are hidden from the bot's
// booking flow but keep their bookings.
type Master struct {
	ID             uuid.UUID
	Name           string
	Nickname       string
	Telegram       *string
	Specialization string
	Avatar         *string
	TeletypeURL    *string
	IsActive       bool
	CreatedAt      time.Time
}

type Params struct {
	Name           string
	Nickname       string
	Telegram       *string
	Specialization string
	Avatar         *string
	TeletypeURL    *string
	IsActive       *bool
}

func New(p Params) (*Master, error) {
	m := &Master{
		ID:             uuid.New(),
		Name:           strings.TrimSpace(p.Name),
		Nickname:       strings.TrimSpace(p.Nickname),
		Telegram:       patch.Trimmed(p.Telegram),
		Specialization: strings.TrimSpace(p.Specialization),
		Avatar:         patch.Trimmed(p.Avatar),
		TeletypeURL:    patch.Trimmed(p.TeletypeURL),
		IsActive:       patch.Coalesce(p.IsActive, true),
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Changes is a partial update; nil keeps the current value.
type Changes struct {
	Name           *string
	Nickname       *string
	Telegram       *string
	Specialization *string
	Avatar         *string
	TeletypeURL    *string
	IsActive       *bool
}

func (m *Master) Apply(c Changes) error {
	next := *m
	next.Name = strings.TrimSpace(patch.Coalesce(c.Name, m.Name))
	next.Nickname = strings.TrimSpace(patch.Coalesce(c.Nickname, m.Nickname))
	next.Specialization = strings.TrimSpace(patch.Coalesce(c.Specialization, m.Specialization))
	next.Telegram = patch.Optional(c.Telegram, m.Telegram)
	next.Avatar = patch.Optional(c.Avatar, m.Avatar)
	next.TeletypeURL = patch.Optional(c.TeletypeURL, m.TeletypeURL)
	next.IsActive = patch.Coalesce(c.IsActive, m.IsActive)
	if err := next.Validate(); err != nil {
		return err
	}
	*m = next
	return nil
}

func (m *Master) Validate() error {
	if m.Name == "" {
		return ErrEmptyName
	}
	if len([]rune(m.Name)) > MaxNameLength {
		return ErrNameTooLong
	}
	if m.Nickname == "" {
		return ErrEmptyNickname
	}
	return nil
}

// Label is the public name shown to clients.
func (m *Master) Label() string {
	if m.Nickname != "" {
		return m.Nickname
	}
	return m.Name
}
