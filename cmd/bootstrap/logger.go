package bootstrap

import (
	"log/slog"

	"github.com/atomospherebrand-bot/relese/internal/handler/middleware"
	"github.com/atomospherebrand-bot/relese/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewRequestLogger,
		NewLogger,
	),
)

func NewRequestLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

// NewLogger also installs the logger as the slog default so packages that
// fall back to slog.Default() share its handler.
func NewLogger(l *middleware.Logger) *slog.Logger {
	logger := l.GetSlogLogger()
	slog.SetDefault(logger)
	return logger
}
