package request

import (
	"strings"

	"github.com/atomospherebrand-bot/relese/internal/domain/booking"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ClientName     string    `json:"clientName" binding:"required,max=255"`
	ClientPhone    string    `json:"clientPhone" binding:"required,max=64"`
	ClientTelegram *string   `json:"clientTelegram,omitempty"`
	MasterID       uuid.UUID `json:"masterId" binding:"required"`
	ServiceID      uuid.UUID `json:"serviceId" binding:"required"`
	Date           string    `json:"date" binding:"required"`
	Time           string    `json:"time" binding:"required"`
	Status         *string   `json:"status,omitempty"`
	Notes          *string   `json:"notes,omitempty"`
}

func (r CreateBookingRequest) ToDomain() (booking.NewParams, error) {
	var status booking.Status
	if r.Status != nil && strings.TrimSpace(*r.Status) != "" {
		s, err := booking.ParseStatus(*r.Status)
		if err != nil {
			return booking.NewParams{}, err
		}
		status = s
	}
	return booking.NewParams{
		ClientName:     r.ClientName,
		ClientPhone:    r.ClientPhone,
		ClientTelegram: normalizeTelegram(r.ClientTelegram),
		MasterID:       r.MasterID,
		ServiceID:      r.ServiceID,
		Date:           strings.TrimSpace(r.Date),
		Time:           strings.TrimSpace(r.Time),
		Status:         status,
		Notes:          r.Notes,
	}, nil
}

// UpdateBookingRequest is a partial update; absent fields keep their value.
type UpdateBookingRequest struct {
	ClientName     *string    `json:"clientName,omitempty" binding:"omitempty,max=255"`
	ClientPhone    *string    `json:"clientPhone,omitempty" binding:"omitempty,max=64"`
	ClientTelegram *string    `json:"clientTelegram,omitempty"`
	MasterID       *uuid.UUID `json:"masterId,omitempty"`
	ServiceID      *uuid.UUID `json:"serviceId,omitempty"`
	Date           *string    `json:"date,omitempty"`
	Time           *string    `json:"time,omitempty"`
	Status         *string    `json:"status,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
}

func (r UpdateBookingRequest) ToDomain() (booking.Changes, error) {
	c := booking.Changes{
		ClientName:     r.ClientName,
		ClientPhone:    r.ClientPhone,
		ClientTelegram: normalizeTelegram(r.ClientTelegram),
		MasterID:       r.MasterID,
		ServiceID:      r.ServiceID,
		Date:           r.Date,
		Time:           r.Time,
		Notes:          r.Notes,
	}
	if r.Status != nil {
		s, err := booking.ParseStatus(*r.Status)
		if err != nil {
			return booking.Changes{}, err
		}
		c.Status = &s
	}
	return c, nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateBookingStatusRequest) ToDomain() (booking.Status, error) {
	return booking.ParseStatus(r.Status)
}

// normalizeTelegram drops a leading @ so handles are stored uniformly.
func normalizeTelegram(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimPrefix(strings.TrimSpace(*s), "@")
	return &v
}
