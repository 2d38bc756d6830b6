package service

import (
	"errors"
	"strings"
	"time"

	"github.com/atomospherebrand-bot/relese/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("service name cannot be empty")
	ErrInvalidDuration = errors.New("service duration must be a positive number of minutes")
	ErrNegativePrice   = errors.New("service price cannot be negative")
)

// MaxDurationMinutes keeps a single session within one day.
const MaxDurationMinutes = 24 * 60

// Service is a bookable offering. Duration drives slot length; price is in
// minor currency units.
type Service struct {
	ID          uuid.UUID
	Name        string
	Duration    int
	Price       int
	Description string
	CreatedAt   time.Time
}

func New(name string, duration, price int, description string) (*Service, error) {
	s := &Service{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(name),
		Duration:    duration,
		Price:       price,
		Description: strings.TrimSpace(description),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

type Changes struct {
	Name        *string
	Duration    *int
	Price       *int
	Description *string
}

func (s *Service) Apply(c Changes) error {
	next := *s
	next.Name = strings.TrimSpace(patch.Coalesce(c.Name, s.Name))
	next.Duration = patch.Coalesce(c.Duration, s.Duration)
	next.Price = patch.Coalesce(c.Price, s.Price)
	next.Description = strings.TrimSpace(patch.Coalesce(c.Description, s.Description))
	if err := next.Validate(); err != nil {
		return err
	}
	*s = next
	return nil
}

func (s *Service) Validate() error {
	if s.Name == "" {
		return ErrEmptyName
	}
	if s.Duration <= 0 || s.Duration > MaxDurationMinutes {
		return ErrInvalidDuration
	}
	if s.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}
