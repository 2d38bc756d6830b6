package commands

import (
	"context"
	"log/slog"
	"time"

	reqdto "github.com/atomospherebrand-bot/relese/internal/handler/dto/request"
	"github.com/atomospherebrand-bot/relese/internal/pkg/config"
	"github.com/atomospherebrand-bot/relese/internal/pkg/errs"
	"github.com/atomospherebrand-bot/relese/internal/pkg/jwt"
	"github.com/atomospherebrand-bot/relese/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	Username    string
	AccessToken string
	ExpiresIn   time.Duration
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	admin      config.AdminConfig
	jwtService *jwt.Service
	logger     *slog.Logger
}

func NewAuthCommands(admin config.AdminConfig, jwtService *jwt.Service, logger *slog.Logger) AuthCommands {
	if logger == nil {
		logger = slog.Default()
	}
	return &authCommandsImpl{
		admin:      admin,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	username, plain := req.Normalized()

	if username != a.admin.Username {
		a.logger.WarnContext(ctx, "login rejected", "username", username, "reason", "unknown user")
		return nil, errs.Kind(ErrInvalidCredentials, errs.ErrUnauthorized)
	}
	if err := password.Verify(a.admin.PasswordHash, plain); err != nil {
		a.logger.WarnContext(ctx, "login rejected", "username", username, "reason", "password mismatch")
		return nil, errs.Kind(ErrInvalidCredentials, errs.ErrUnauthorized)
	}

	token, err := a.jwtService.GenerateToken(username)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	a.logger.InfoContext(ctx, "admin logged in", "username", username)
	return &LoginResult{
		Username:    username,
		AccessToken: token,
		ExpiresIn:   a.jwtService.TokenDuration(),
	}, nil
}
