//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	reqdto "github.com/atomospherebrand-bot/relese/internal/handler/dto/request"
	"github.com/atomospherebrand-bot/relese/internal/pkg/config"
	"github.com/atomospherebrand-bot/relese/internal/pkg/errs"
	"github.com/atomospherebrand-bot/relese/internal/pkg/jwt"
	"github.com/atomospherebrand-bot/relese/internal/pkg/password"
	"github.com/atomospherebrand-bot/relese/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthCommands_Login(t *testing.T) {
	hash, err := password.HashPassword("s3cret")
	require.NoError(t, err)
	jwtService := jwt.NewService("test-secret", time.Hour)

	tests := []struct {
		name      string
		stored    string
		req       reqdto.LoginRequest
		wantError bool
	}{
		{name: "bcrypt hash", stored: hash, req: reqdto.LoginRequest{Username: "admin", Password: "s3cret"}},
		{name: "username is trimmed", stored: hash, req: reqdto.LoginRequest{Username: " admin ", Password: "s3cret"}},
		{name: "plain stored password", stored: "s3cret", req: reqdto.LoginRequest{Username: "admin", Password: "s3cret"}},
		{name: "wrong password", stored: hash, req: reqdto.LoginRequest{Username: "admin", Password: "nope"}, wantError: true},
		{name: "unknown user", stored: hash, req: reqdto.LoginRequest{Username: "root", Password: "s3cret"}, wantError: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds := commands.NewAuthCommands(config.AdminConfig{Username: "admin", PasswordHash: tt.stored}, jwtService, nil)

			result, err := cmds.Login(context.Background(), tt.req)
			if tt.wantError {
				require.Error(t, err)
				assert.True(t, errs.Is(err, errs.ErrUnauthorized))
				assert.True(t, errs.Is(err, commands.ErrInvalidCredentials))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "admin", result.Username)
			assert.Equal(t, time.Hour, result.ExpiresIn)

			claims, err := jwtService.ValidateToken(result.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, "admin", claims.Username)
			assert.Equal(t, jwt.RoleAdmin, claims.Role)
		})
	}
}
