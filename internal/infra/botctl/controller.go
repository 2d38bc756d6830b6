package botctl

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/atomospherebrand-bot/relese/internal/domain/studio"
	"github.com/atomospherebrand-bot/relese/internal/infra/metrics"
	"github.com/atomospherebrand-bot/relese/internal/pkg/config"
	"github.com/atomospherebrand-bot/relese/internal/pkg/errs"
)

const (
	envPreviousToken = "TELEGRAM_BOT_PREVIOUS_TOKEN"
	envToken         = "TELEGRAM_BOT_TOKEN"
	envAction        = "TELEGRAM_BOT_ACTION"

	defaultTimeout = time.Minute
	maxOutputLog   = 2048
	queueSize      = 64
)

// Runner executes a script. Tests swap it for a recorder.
type Runner func(ctx context.Context, script string, env []string) ([]byte, error)

// ExecRunner hands the script line to the shell so configured values may
// carry arguments or pipelines.
func ExecRunner(ctx context.Context, script string, env []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", script)
	cmd.Env = append(os.Environ(), env...)
	return cmd.CombinedOutput()
}

type command struct {
	action        studio.TokenAction
	previousToken string
	nextToken     string
}

// Controller runs the bot restart/stop scripts one at a time, in the order
// they were applied. Apply returns immediately; a single worker drains the
// queue.
type Controller struct {
	cfg     config.BotConfig
	run     Runner
	metrics *metrics.Metrics
	logger  *slog.Logger

	mu      sync.Mutex
	queue   chan command
	started bool
	closed  bool
	done    chan struct{}
}

func NewController(cfg config.BotConfig, run Runner, m *metrics.Metrics, logger *slog.Logger) *Controller {
	if run == nil {
		run = ExecRunner
	}
	if cfg.ScriptTimeout <= 0 {
		cfg.ScriptTimeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		cfg:     cfg,
		run:     run,
		metrics: m,
		logger:  logger.With("component", "botctl"),
		queue:   make(chan command, queueSize),
		done:    make(chan struct{}),
	}
}

// Start launches the worker. Calling it more than once is a no-op.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startLocked()
}

func (c *Controller) startLocked() {
	if c.started {
		return
	}
	c.started = true
	go c.work()
}

func (c *Controller) work() {
	defer close(c.done)
	for cmd := range c.queue {
		if err := c.execute(context.Background(), cmd); err != nil {
			c.logger.Error("bot command failed", "action", string(cmd.action), "error", err)
		}
	}
}

// Apply queues the script for action and reports whether it was queued.
func (c *Controller) Apply(action studio.TokenAction, previousToken, nextToken string) studio.BotCommand {
	res := studio.BotCommand{Action: action}
	if action == studio.TokenActionNone {
		return res
	}
	if c.script(action) == "" {
		c.logger.Warn("no script configured, bot command skipped", "action", string(action))
		c.metrics.IncBotCommand(string(action), "skipped")
		res.Message = notConfigured(action)
		return res
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		c.metrics.IncBotCommand(string(action), "skipped")
		res.Message = "Bot controller is shutting down"
		return res
	}
	c.startLocked()
	c.queue <- command{action: action, previousToken: previousToken, nextToken: nextToken}

	res.Queued = true
	res.Message = fmt.Sprintf("Bot %s queued", action)
	return res
}

func (c *Controller) script(action studio.TokenAction) string {
	if action == studio.TokenActionStop {
		if s := strings.TrimSpace(c.cfg.StopScript); s != "" {
			return s
		}
	}
	return strings.TrimSpace(c.cfg.RestartScript)
}

func notConfigured(action studio.TokenAction) string {
	msg := "Bot restart is not configured: set BOT_RESTART_SCRIPT"
	if action == studio.TokenActionStop {
		msg += " or BOT_STOP_SCRIPT"
	}
	return msg
}

// Execute runs the script for action synchronously, bypassing the queue.
func (c *Controller) Execute(ctx context.Context, action studio.TokenAction, previousToken, nextToken string) error {
	return c.execute(ctx, command{action: action, previousToken: previousToken, nextToken: nextToken})
}

func (c *Controller) execute(ctx context.Context, cmd command) error {
	action := cmd.action
	script := c.script(action)
	if script == "" {
		c.logger.Warn("no script configured, bot command skipped", "action", string(action))
		c.metrics.IncBotCommand(string(action), "skipped")
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.ScriptTimeout)
	defer cancel()

	env := []string{
		envPreviousToken + "=" + cmd.previousToken,
		envToken + "=" + cmd.nextToken,
		envAction + "=" + string(action),
	}
	started := time.Now()
	out, err := c.run(ctx, script, env)
	if err != nil {
		c.metrics.IncBotCommand(string(action), "error")
		return errs.Wrapf(err, "bot %s script failed: %s", action, truncate(out))
	}

	c.metrics.IncBotCommand(string(action), "ok")
	c.logger.Info("bot command finished", "action", string(action), "script", script, "took", time.Since(started).String())
	return nil
}

// Wait stops accepting commands and blocks until the queued ones have run
// or ctx ends.
func (c *Controller) Wait(ctx context.Context) error {
	c.mu.Lock()
	if !c.closed {
		c.closed = true
		close(c.queue)
	}
	c.startLocked()
	c.mu.Unlock()

	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func truncate(out []byte) string {
	s := strings.TrimSpace(string(out))
	if len(s) > maxOutputLog {
		return s[:maxOutputLog] + "..."
	}
	return s
}
