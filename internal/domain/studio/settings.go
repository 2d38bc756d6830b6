package studio

import (
	"strings"
	"time"
)

const SettingsID = "default"

// Settings is the single studio configuration row.
type Settings struct {
	BotToken       string
	StudioName     string
	Address        string
	YandexMapURL   string
	Latitude       string
	Longitude      string
	PaymentMethods string
	WorkingHours   string
	UpdatedAt      time.Time
}

func DefaultSettings() Settings {
	return Settings{
		StudioName:     "Тату-студия INKMAN",
		Address:        "Москва, ул. Примера, 1",
		YandexMapURL:   "https://yandex.ru/maps/?ll=37.617700,55.755800&z=16",
		Latitude:       "55.755800",
		Longitude:      "37.617700",
		PaymentMethods: "Наличные, СБП, Карта, Криптовалюта",
		WorkingHours:   "Ежедневно с 10:00 до 22:00",
	}
}

func (s *Settings) Normalize() {
	s.BotToken = strings.TrimSpace(s.BotToken)
	s.StudioName = strings.TrimSpace(s.StudioName)
	s.Address = strings.TrimSpace(s.Address)
	s.YandexMapURL = strings.TrimSpace(s.YandexMapURL)
	s.Latitude = strings.TrimSpace(s.Latitude)
	s.Longitude = strings.TrimSpace(s.Longitude)
}

// TokenAction names what the external bot process must do when the token
// goes from prev to next.
type TokenAction string

const (
	TokenActionNone    TokenAction = ""
	TokenActionStart   TokenAction = "start"
	TokenActionStop    TokenAction = "stop"
	TokenActionRestart TokenAction = "restart"
)

func TokenChange(prev, next string) TokenAction {
	prev, next = strings.TrimSpace(prev), strings.TrimSpace(next)
	switch {
	case prev == next:
		return TokenActionNone
	case next == "":
		return TokenActionStop
	case prev == "":
		return TokenActionStart
	default:
		return TokenActionRestart
	}
}

// BotCommand reports what a settings save asked of the bot process.
// Queued is false when there was nothing to do or no script is configured.
type BotCommand struct {
	Action  TokenAction
	Queued  bool
	Message string
}
