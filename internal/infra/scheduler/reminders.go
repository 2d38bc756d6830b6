package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/atomospherebrand-bot/relese/internal/domain/notification"
	"github.com/atomospherebrand-bot/relese/internal/pkg/clock"
	"github.com/atomospherebrand-bot/relese/internal/pkg/config"
	"github.com/atomospherebrand-bot/relese/internal/pkg/errs"
	"github.com/atomospherebrand-bot/relese/internal/usecase/queries"

	"github.com/robfig/cron/v3"
)

const runTimeout = 2 * time.Minute

// UpcomingBookings lists non-cancelled bookings starting in [from, to).
type UpcomingBookings interface {
	StartingBetween(ctx context.Context, from, to time.Time) ([]*queries.BookingView, error)
}

type ReminderSender interface {
	Enabled() bool
	SendReminder(ctx context.Context, b *queries.BookingView, kind notification.Kind) (bool, error)
}

type window struct {
	kind     notification.Kind
	from, to time.Duration
}

// A booking 90 minutes away only gets the 2h reminder.
var windows = []window{
	{kind: notification.KindReminder2, from: 0, to: 2 * time.Hour},
	{kind: notification.KindReminder24, from: 2 * time.Hour, to: 24 * time.Hour},
}

type Reminders struct {
	cfg      config.ReminderConfig
	bookings UpcomingBookings
	sender   ReminderSender
	clock    clock.Clock
	logger   *slog.Logger

	mu      sync.Mutex
	cron    *cron.Cron
	running bool
}

func NewReminders(cfg config.ReminderConfig, bookings UpcomingBookings, sender ReminderSender, clk clock.Clock, logger *slog.Logger) *Reminders {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reminders{
		cfg:      cfg,
		bookings: bookings,
		sender:   sender,
		clock:    clk,
		logger:   logger.With("component", "reminders"),
	}
}

// Start schedules the job. It is a no-op when reminders are disabled or
// Telegram is not configured.
func (r *Reminders) Start() error {
	if !r.cfg.Enabled || !r.sender.Enabled() {
		r.logger.Info("reminder scheduler disabled")
		return nil
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(r.cfg.Spec, r.tick); err != nil {
		return errs.Wrapf(err, "invalid reminder schedule %q", r.cfg.Spec)
	}
	c.Start()

	r.mu.Lock()
	r.cron = c
	r.mu.Unlock()

	r.logger.Info("reminder scheduler started", "spec", r.cfg.Spec)
	return nil
}

func (r *Reminders) Stop(ctx context.Context) error {
	r.mu.Lock()
	c := r.cron
	r.cron = nil
	r.mu.Unlock()
	if c == nil {
		return nil
	}

	select {
	case <-c.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Reminders) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	sent, err := r.RunOnce(ctx)
	if err != nil {
		r.logger.Error("reminder run failed", "error", err, "sent", sent)
		return
	}
	if sent > 0 {
		r.logger.Info("reminders sent", "count", sent)
	}
}

// RunOnce sends every reminder that is due now. Failures of single messages
// are logged and do not stop the run.
func (r *Reminders) RunOnce(ctx context.Context) (int, error) {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return 0, nil
	}
	r.running = true
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		r.running = false
		r.mu.Unlock()
	}()

	now := r.clock.Now()
	total := 0
	for _, w := range windows {
		due, err := r.bookings.StartingBetween(ctx, now.Add(w.from), now.Add(w.to))
		if err != nil {
			return total, errs.Wrapf(err, "failed to list bookings for %s", w.kind)
		}
		for _, b := range due {
			ok, err := r.sender.SendReminder(ctx, b, w.kind)
			if err != nil {
				r.logger.Warn("reminder not sent", "booking_id", b.ID, "kind", w.kind, "error", err)
				continue
			}
			if ok {
				total++
			}
		}
	}
	return total, nil
}
