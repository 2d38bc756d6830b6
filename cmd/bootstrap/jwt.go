package bootstrap

import (
	"time"

	"github.com/atomospherebrand-bot/relese/internal/pkg/config"
	"github.com/atomospherebrand-bot/relese/internal/pkg/errs"
	"github.com/atomospherebrand-bot/relese/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT_DURATION")
	}
	return jwt.NewService(cfg.JWT.Secret, duration), nil
}
