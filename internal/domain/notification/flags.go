package notification

import (
	"errors"
	"strings"
)

var ErrInvalidKind = errors.New("notification type must be confirm, rem24 or rem2")

// Kind is a message the bot sends at most once per booking.
type Kind string

const (
	KindConfirm    Kind = "confirm"
	KindReminder24 Kind = "rem24"
	KindReminder2  Kind = "rem2"
)

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KindConfirm, KindReminder24, KindReminder2:
		return k, nil
	}
	return "", ErrInvalidKind
}

// Flags records where to reach the client of a booking and which messages
// already went out.
type Flags struct {
	ChatID           *int64 `json:"chatId,omitempty"`
	ConfirmationSent bool   `json:"confirmationSent,omitempty"`
	Reminder24Sent   bool   `json:"rem24hSent,omitempty"`
	Reminder2Sent    bool   `json:"rem2hSent,omitempty"`
}

func (f Flags) Sent(k Kind) bool {
	switch k {
	case KindConfirm:
		return f.ConfirmationSent
	case KindReminder24:
		return f.Reminder24Sent
	case KindReminder2:
		return f.Reminder2Sent
	}
	return false
}

func (f *Flags) Mark(k Kind) {
	switch k {
	case KindConfirm:
		f.ConfirmationSent = true
	case KindReminder24:
		f.Reminder24Sent = true
	case KindReminder2:
		f.Reminder2Sent = true
	}
}
