package portfolio

import (
	"errors"
	"strings"
	"time"

	"github.com/atomospherebrand-bot/relese/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrInvalidURL       = errors.New("url must start with http://, https:// or /uploads/")
	ErrInvalidMediaType = errors.New("media type must be image or video")
)

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

func (m MediaType) IsValid() bool {
	return m == MediaImage || m == MediaVideo
}

// MediaTypeFromContentType classifies an uploaded file.
func MediaTypeFromContentType(contentType string) MediaType {
	if strings.HasPrefix(strings.ToLower(contentType), "video/") {
		return MediaVideo
	}
	return MediaImage
}

const (
	DefaultPageSize = 24
	MaxPageSize     = 100
)

type Item struct {
	ID        uuid.UUID
	URL       string
	Title     *string
	MasterID  *uuid.UUID
	Style     *string
	MediaType MediaType
	Thumbnail *string
	CreatedAt time.Time
}

type Params struct {
	URL       string
	Title     *string
	MasterID  *uuid.UUID
	Style     *string
	MediaType MediaType
	Thumbnail *string
}

func New(p Params, now time.Time) (*Item, error) {
	url := strings.TrimSpace(p.URL)
	if !IsAllowedURL(url) {
		return nil, ErrInvalidURL
	}
	mt := p.MediaType
	if mt == "" {
		mt = MediaImage
	}
	if !mt.IsValid() {
		return nil, ErrInvalidMediaType
	}
	thumb := patch.Trimmed(p.Thumbnail)
	if thumb != nil && !IsAllowedURL(*thumb) {
		return nil, ErrInvalidURL
	}
	return &Item{
		ID:        uuid.New(),
		URL:       url,
		Title:     patch.Trimmed(p.Title),
		MasterID:  p.MasterID,
		Style:     patch.Trimmed(p.Style),
		MediaType: mt,
		Thumbnail: thumb,
		CreatedAt: now,
	}, nil
}

func IsAllowedURL(u string) bool {
	return strings.HasPrefix(u, "http://") ||
		strings.HasPrefix(u, "https://") ||
		strings.HasPrefix(u, "/uploads/")
}

// Page clamps paging input to sane bounds.
type Page struct {
	Number int
	Size   int
}

func NewPage(number, size, defaultSize, maxSize int) Page {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = defaultSize
	}
	if size > maxSize {
		size = maxSize
	}
	return Page{Number: number, Size: size}
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}
