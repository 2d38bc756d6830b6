package components

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/atomospherebrand-bot/relese/internal/handler/api"
	"github.com/atomospherebrand-bot/relese/internal/infra/botctl"
	"github.com/atomospherebrand-bot/relese/internal/infra/metrics"
	"github.com/atomospherebrand-bot/relese/internal/infra/notify"
	"github.com/atomospherebrand-bot/relese/internal/infra/scheduler"
	"github.com/atomospherebrand-bot/relese/internal/infra/telegram"
	"github.com/atomospherebrand-bot/relese/internal/infra/upload"
	"github.com/atomospherebrand-bot/relese/internal/pkg/clock"
	"github.com/atomospherebrand-bot/relese/internal/pkg/config"
	"github.com/atomospherebrand-bot/relese/internal/usecase/commands"
	"github.com/atomospherebrand-bot/relese/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const settingsLookupTimeout = 5 * time.Second

var IntegrationModule = fx.Module("integration",
	notificationModule,
	telegramModule,
	botModule,
	uploadModule,
)

var notificationModule = fx.Module("integration/notification",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			notify.NewStore,
			fx.As(new(shared.NotificationStore)),
		),
		func(c *redis.Client) redis.UniversalClient { return c },
	),
)

var telegramModule = fx.Module("integration/telegram",
	fx.Provide(
		NewTelegramSender,
		telegram.NewNotifier,
		func(n *telegram.Notifier) commands.StatusNotifier { return n },
		func(n *telegram.Notifier) scheduler.ReminderSender { return n },
		NewReminders,
	),
	fx.Invoke(func(*scheduler.Reminders) {}),
)

var botModule = fx.Module("integration/bot",
	fx.Provide(
		NewBotController,
		func(c *botctl.Controller) commands.BotController { return c },
	),
)

var uploadModule = fx.Module("integration/upload",
	fx.Provide(
		func(cfg config.Config) (*upload.Storage, error) { return upload.NewStorage(cfg.Upload) },
		func(s *upload.Storage) api.Uploader { return s },
	),
)

// NewRedisClient does not fail startup when Redis is down: the admin panel
// keeps working and only notification flags are unavailable.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	client := notify.NewRedisClient(cfg.Redis)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := notify.Ping(ctx, client); err != nil {
				logger.Warn("redis unavailable, notification flags disabled until it recovers", "address", cfg.Redis.Address, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client
}

// NewTelegramSender prefers TELEGRAM_BOT_TOKEN and falls back to the token
// saved in studio settings.
func NewTelegramSender(cfg config.Config, content telegram.Content, logger *slog.Logger) telegram.Sender {
	tg := cfg.Telegram
	if strings.TrimSpace(tg.Token) == "" {
		ctx, cancel := context.WithTimeout(context.Background(), settingsLookupTimeout)
		defer cancel()
		settings, err := content.GetSettings(ctx)
		switch {
		case err != nil:
			logger.Warn("could not read bot token from settings", "error", err)
		case settings != nil:
			tg.Token = settings.BotToken
		}
	}
	sender := telegram.NewSender(tg)
	if sender == nil {
		logger.Info("telegram token not configured, client notifications disabled")
	}
	return sender
}

func NewReminders(lc fx.Lifecycle, cfg config.Config, bookings scheduler.UpcomingBookings, sender scheduler.ReminderSender, clk clock.Clock, logger *slog.Logger) *scheduler.Reminders {
	r := scheduler.NewReminders(cfg.Reminder, bookings, sender, clk, logger)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error { return r.Start() },
		OnStop:  r.Stop,
	})
	return r
}

func NewBotController(lc fx.Lifecycle, cfg config.Config, m *metrics.Metrics, logger *slog.Logger) *botctl.Controller {
	c := botctl.NewController(cfg.Bot, botctl.ExecRunner, m, logger)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			c.Start()
			return nil
		},
		OnStop: c.Wait,
	})
	return c
}
