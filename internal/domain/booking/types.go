package booking

import (
	"errors"
	"strings"
)

var (
	ErrInvalidStatus    = errors.New("status must be one of pending, confirmed, cancelled")
	ErrStatusTransition = errors.New("status transition is not allowed")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// Blocks reports whether a booking in this status occupies its slot.
func (s Status) Blocks() bool {
	return s != StatusCancelled
}

func AllStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusCancelled}
}

// TransitionPolicy decides whether a booking may move from one status to
// another. Setting the current status again is always allowed.
type TransitionPolicy interface {
	Allow(from, to Status) error
}

// PermissiveTransitions lets any status overwrite any other.
type PermissiveTransitions struct{}

func (PermissiveTransitions) Allow(_, to Status) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}

// StrictTransitions only moves forward: pending to confirmed or cancelled,
// confirmed to cancelled. A cancelled booking stays cancelled.
type StrictTransitions struct{}

var forward = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled},
}

func (StrictTransitions) Allow(from, to Status) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	if from == to {
		return nil
	}
	for _, next := range forward[from] {
		if next == to {
			return nil
		}
	}
	return ErrStatusTransition
}

func NewTransitionPolicy(strict bool) TransitionPolicy {
	if strict {
		return StrictTransitions{}
	}
	return PermissiveTransitions{}
}
