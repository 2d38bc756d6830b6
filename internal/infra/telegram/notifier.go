package telegram

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/atomospherebrand-bot/relese/internal/domain/notification"
	"github.com/atomospherebrand-bot/relese/internal/infra/metrics"
	"github.com/atomospherebrand-bot/relese/internal/pkg/config"
	"github.com/atomospherebrand-bot/relese/internal/pkg/errs"
	"github.com/atomospherebrand-bot/relese/internal/usecase/queries"
	"github.com/atomospherebrand-bot/relese/internal/usecase/shared"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const sendTimeout = 10 * time.Second

const (
	keyConfirmed  = "booking_confirmed"
	keyCancelled  = "booking_cancelled"
	keyReminder24 = "reminder_24h"
	keyReminder2  = "reminder_2h"
)

var fallbackTemplates = map[string]string{
	keyConfirmed:  "✅ Запись подтверждена!\n\nУслуга: {service}\nДата и время: {date} • {time}\nАдрес: {address}",
	keyCancelled:  "❌ Запись на {date} • {time} отменена.",
	keyReminder24: "⏰ Напоминаем: завтра в {time} у вас {service} у мастера {master}.\nАдрес: {address}",
	keyReminder2:  "⏰ Через 2 часа, в {time}, ждём вас на {service}.\nАдрес: {address}",
}

// Sender is the part of *tgbotapi.BotAPI the notifier needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Content supplies message templates and the studio address.
type Content interface {
	MessagesByKey(ctx context.Context, keys ...string) (map[string]string, error)
	GetSettings(ctx context.Context) (*queries.SettingsView, error)
}

// Notifier sends booking messages to the chat the bot registered for the
// booking. Without a token every call is a no-op.
type Notifier struct {
	sender  Sender
	flags   shared.NotificationStore
	content Content
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewSender builds a bot client without calling getMe so startup does not
// depend on Telegram being reachable. Returns nil when no token is set.
func NewSender(cfg config.TelegramConfig) Sender {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil
	}
	bot := &tgbotapi.BotAPI{
		Token:  cfg.Token,
		Client: &http.Client{Timeout: sendTimeout},
		Buffer: 100,
	}
	bot.SetAPIEndpoint(tgbotapi.APIEndpoint)
	return bot
}

func NewNotifier(sender Sender, flags shared.NotificationStore, content Content, m *metrics.Metrics, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{
		sender:  sender,
		flags:   flags,
		content: content,
		metrics: m,
		logger:  logger.With("component", "telegram"),
	}
}

func (n *Notifier) Enabled() bool {
	return n != nil && n.sender != nil
}

// NotifyStatusChange sends the confirmation (once) or cancellation message in
// the background. It never blocks the caller on Telegram.
func (n *Notifier) NotifyStatusChange(ctx context.Context, b *queries.BookingView) {
	if !n.Enabled() {
		return
	}
	view := *b
	go func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sendTimeout)
		defer cancel()
		if err := n.sendStatus(ctx, &view); err != nil {
			n.logger.Warn("status notification failed", "booking_id", view.ID, "status", view.Status, "error", err)
		}
	}()
}

func (n *Notifier) sendStatus(ctx context.Context, b *queries.BookingView) error {
	switch b.Status {
	case "confirmed":
		_, err := n.deliverOnce(ctx, b, notification.KindConfirm, keyConfirmed)
		return err
	case "cancelled":
		chatID, ok, err := n.chatFor(ctx, b)
		if err != nil || !ok {
			return err
		}
		return n.deliver(ctx, chatID, b, keyCancelled)
	}
	return nil
}

// SendReminder delivers a reminder unless it was already sent or the client
// never registered a chat. It reports whether a message went out.
func (n *Notifier) SendReminder(ctx context.Context, b *queries.BookingView, kind notification.Kind) (bool, error) {
	if !n.Enabled() {
		return false, nil
	}
	key := keyReminder24
	if kind == notification.KindReminder2 {
		key = keyReminder2
	}
	sent, err := n.deliverOnce(ctx, b, kind, key)
	if sent {
		n.metrics.IncReminderSent(string(kind))
	}
	return sent, err
}

func (n *Notifier) deliverOnce(ctx context.Context, b *queries.BookingView, kind notification.Kind, key string) (bool, error) {
	flags, err := n.flags.Get(ctx, b.ID)
	if err != nil {
		return false, err
	}
	if flags.ChatID == nil || flags.Sent(kind) {
		return false, nil
	}
	if err := n.deliver(ctx, *flags.ChatID, b, key); err != nil {
		return false, err
	}
	if err := n.flags.Mark(ctx, b.ID, kind); err != nil {
		return true, errs.Wrap(err, "message sent but flag not stored")
	}
	return true, nil
}

func (n *Notifier) chatFor(ctx context.Context, b *queries.BookingView) (int64, bool, error) {
	flags, err := n.flags.Get(ctx, b.ID)
	if err != nil {
		return 0, false, err
	}
	if flags.ChatID == nil {
		return 0, false, nil
	}
	return *flags.ChatID, true, nil
}

func (n *Notifier) deliver(ctx context.Context, chatID int64, b *queries.BookingView, key string) error {
	text, err := n.render(ctx, b, key)
	if err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.DisableWebPagePreview = true
	if _, err := n.sender.Send(msg); err != nil {
		return errs.Wrapf(err, "failed to send %s to chat %d", key, chatID)
	}
	n.logger.Info("telegram message sent", "booking_id", b.ID, "template", key)
	return nil
}

func (n *Notifier) render(ctx context.Context, b *queries.BookingView, key string) (string, error) {
	templates, err := n.content.MessagesByKey(ctx, key)
	if err != nil {
		return "", err
	}
	tpl := templates[key]
	if strings.TrimSpace(tpl) == "" {
		tpl = fallbackTemplates[key]
	}

	address := ""
	if settings, err := n.content.GetSettings(ctx); err == nil {
		address = settings.Address
	}
	return Render(tpl, b, address), nil
}

// Render fills {service} {master} {date} {time} {duration} {price}
// {client} and {address} in tpl.
func Render(tpl string, b *queries.BookingView, address string) string {
	date := b.Date
	if parts := strings.Split(b.Date, "-"); len(parts) == 3 {
		date = parts[2] + "." + parts[1] + "." + parts[0]
	}
	return strings.NewReplacer(
		"{service}", b.ServiceName,
		"{master}", b.MasterLabel(),
		"{date}", date,
		"{time}", b.Time,
		"{duration}", strconv.Itoa(b.Duration),
		"{price}", strconv.Itoa(b.ServicePrice),
		"{client}", b.ClientName,
		"{address}", address,
	).Replace(tpl)
}
