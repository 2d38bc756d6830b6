package studio

import (
	"errors"
	"strings"
	"time"

	"github.com/atomospherebrand-bot/relese/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrEmptyMessageKey     = errors.New("message key cannot be empty")
	ErrInvalidMessageType  = errors.New("message type must be text or textarea")
	ErrEmptyCertificateURL = errors.New("certificate url cannot be empty")
	ErrInvalidCertType     = errors.New("certificate type must be image, video or pdf")
)

type MessageType string

const (
	MessageText     MessageType = "text"
	MessageTextarea MessageType = "textarea"
)

// Message is a bot text template addressed by key.
type Message struct {
	Key      string
	Label    string
	Value    string
	Type     MessageType
	ImageURL *string
}

func (m *Message) Normalize() error {
	m.Key = strings.TrimSpace(m.Key)
	if m.Key == "" {
		return ErrEmptyMessageKey
	}
	if m.Type == "" {
		m.Type = MessageText
	}
	if m.Type != MessageText && m.Type != MessageTextarea {
		return ErrInvalidMessageType
	}
	if strings.TrimSpace(m.Label) == "" {
		m.Label = m.Key
	}
	m.ImageURL = patch.Trimmed(m.ImageURL)
	return nil
}

type CertificateType string

const (
	CertificateImage CertificateType = "image"
	CertificateVideo CertificateType = "video"
	CertificatePDF   CertificateType = "pdf"
)

// Certificate is a gift certificate template shown by the bot.
type Certificate struct {
	ID         uuid.UUID
	URL        string
	Type       CertificateType
	Caption    *string
	UploadedAt time.Time
}

func NewCertificate(url string, typ CertificateType, caption *string, now time.Time) (*Certificate, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrEmptyCertificateURL
	}
	if typ == "" {
		typ = CertificateImage
	}
	switch typ {
	case CertificateImage, CertificateVideo, CertificatePDF:
	default:
		return nil, ErrInvalidCertType
	}
	return &Certificate{
		ID:         uuid.New(),
		URL:        url,
		Type:       typ,
		Caption:    patch.Trimmed(caption),
		UploadedAt: now,
	}, nil
}
