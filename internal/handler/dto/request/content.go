package request

import (
	"time"

	"github.com/atomospherebrand-bot/relese/internal/domain/portfolio"
	"github.com/atomospherebrand-bot/relese/internal/domain/studio"

	"github.com/google/uuid"
)

type CreatePortfolioItemRequest struct {
	URL       string     `json:"url" binding:"required"`
	Title     *string    `json:"title,omitempty"`
	MasterID  *uuid.UUID `json:"masterId,omitempty"`
	Style     *string    `json:"style,omitempty"`
	MediaType string     `json:"mediaType,omitempty" binding:"omitempty,oneof=image video"`
	Thumbnail *string    `json:"thumbnail,omitempty"`
}

func (r CreatePortfolioItemRequest) ToDomain(now time.Time) (*portfolio.Item, error) {
	return portfolio.New(portfolio.Params{
		URL:       r.URL,
		Title:     r.Title,
		MasterID:  r.MasterID,
		Style:     r.Style,
		MediaType: portfolio.MediaType(r.MediaType),
		Thumbnail: r.Thumbnail,
	}, now)
}

type CreateCertificateRequest struct {
	URL     string  `json:"url" binding:"required"`
	Type    string  `json:"type,omitempty" binding:"omitempty,oneof=image video pdf"`
	Caption *string `json:"caption,omitempty"`
}

func (r CreateCertificateRequest) ToDomain(now time.Time) (*studio.Certificate, error) {
	return studio.NewCertificate(r.URL, studio.CertificateType(r.Type), r.Caption, now)
}

type BotMessageRequest struct {
	Key      string  `json:"key" binding:"required"`
	Label    string  `json:"label"`
	Value    string  `json:"value"`
	Type     string  `json:"type,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

type SaveMessagesRequest struct {
	Messages []BotMessageRequest `json:"messages" binding:"required,dive"`
}

func (r SaveMessagesRequest) ToDomain() ([]studio.Message, error) {
	out := make([]studio.Message, 0, len(r.Messages))
	for _, m := range r.Messages {
		msg := studio.Message{
			Key:      m.Key,
			Label:    m.Label,
			Value:    m.Value,
			Type:     studio.MessageType(m.Type),
			ImageURL: m.ImageURL,
		}
		if err := msg.Normalize(); err != nil {
			return nil, err
		}
		out = append(out, msg)
	}
	return out, nil
}

type SaveSettingsRequest struct {
	BotToken       string `json:"botToken"`
	StudioName     string `json:"studioName" binding:"required"`
	Address        string `json:"address"`
	YandexMapURL   string `json:"yandexMapUrl"`
	Latitude       string `json:"latitude"`
	Longitude      string `json:"longitude"`
	PaymentMethods string `json:"paymentMethods"`
	WorkingHours   string `json:"workingHours"`
}

func (r SaveSettingsRequest) ToDomain() studio.Settings {
	s := studio.Settings{
		BotToken:       r.BotToken,
		StudioName:     r.StudioName,
		Address:        r.Address,
		YandexMapURL:   r.YandexMapURL,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		PaymentMethods: r.PaymentMethods,
		WorkingHours:   r.WorkingHours,
	}
	s.Normalize()
	return s
}

type RegisterChatRequest struct {
	BookingID uuid.UUID `json:"bookingId" binding:"required"`
	ChatID    int64     `json:"chatId" binding:"required"`
}

type MarkNotificationRequest struct {
	BookingID uuid.UUID `json:"bookingId" binding:"required"`
	Type      string    `json:"type" binding:"required,oneof=confirm rem24 rem2"`
}
