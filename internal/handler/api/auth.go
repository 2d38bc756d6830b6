package api

import (
	"net/http"

	reqdto "github.com/atomospherebrand-bot/relese/internal/handler/dto/request"
	resdto "github.com/atomospherebrand-bot/relese/internal/handler/dto/response"
	"github.com/atomospherebrand-bot/relese/internal/handler/httperr"
	"github.com/atomospherebrand-bot/relese/internal/handler/middleware"
	"github.com/atomospherebrand-bot/relese/internal/pkg/config"
	"github.com/atomospherebrand-bot/relese/internal/pkg/cookie"
	"github.com/atomospherebrand-bot/relese/internal/pkg/errs"
	"github.com/atomospherebrand-bot/relese/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds  commands.AuthCommands
	admin config.AdminConfig
}

func NewAuthHandler(cmds commands.AuthCommands, admin config.AdminConfig) *AuthHandler {
	return &AuthHandler{cmds: cmds, admin: admin}
}

// @Summary Admin login
// @Description Login with the configured admin credentials. The token is set as an http-only cookie and returned in the body.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		if errs.Is(err, commands.ErrInvalidCredentials) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid username or password", nil)
			return
		}
		httperr.Abort(c, err)
		return
	}

	cookie.SetTokenCookie(c, h.admin, result.AccessToken, result.ExpiresIn)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		Username:    result.Username,
		ExpiresIn:   int64(result.ExpiresIn.Seconds()),
	})
}

// @Summary Admin logout
// @Description Clear the access token cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookie(c, h.admin)
	c.Status(http.StatusNoContent)
}

// @Summary Current admin
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.MeResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "User not authenticated", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.MeResponse{Username: username})
}
