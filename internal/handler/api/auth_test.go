//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/atomospherebrand-bot/relese/internal/handler/api"
	reqdto "github.com/atomospherebrand-bot/relese/internal/handler/dto/request"
	resdto "github.com/atomospherebrand-bot/relese/internal/handler/dto/response"
	"github.com/atomospherebrand-bot/relese/internal/handler/middleware"
	"github.com/atomospherebrand-bot/relese/internal/pkg/config"
	"github.com/atomospherebrand-bot/relese/internal/pkg/cookie"
	"github.com/atomospherebrand-bot/relese/internal/pkg/errs"
	"github.com/atomospherebrand-bot/relese/internal/usecase"
	"github.com/atomospherebrand-bot/relese/internal/usecase/commands"
	"github.com/atomospherebrand-bot/relese/internal/testutil"
	"github.com/atomospherebrand-bot/relese/internal/testutil/authtest"
	"github.com/atomospherebrand-bot/relese/internal/testutil/httptest"
	commandsmock "github.com/atomospherebrand-bot/relese/internal/testutil/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	handler      *api.AuthHandler
	jwt          *authtest.JWTHelper
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	cfg := config.NewTestConfig()
	s.jwt = authtest.NewJWTHelper(cfg.JWT)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, cfg.Admin)

	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(s.jwt.Service(s.T())))

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", auth.RequireAuth(), s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := reqdto.LoginRequest{Username: "admin", Password: "secret"}
	result := &commands.LoginResult{Username: "admin", AccessToken: "test-jwt-token", ExpiresIn: time.Hour}

	s.Run("success: returns token and sets http-only cookie", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("test-jwt-token", response.AccessToken)
		s.Equal("admin", response.Username)
		s.Equal(int64(3600), response.ExpiresIn)

		c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(c)
		s.Equal("test-jwt-token", c.Value)
		s.True(c.HttpOnly)
		s.Equal(3600, c.MaxAge)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseAuth{
			{name: "missing field: username (required)", mutate: testutil.Field("username", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: password (required)", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
			{name: "empty username", mutate: testutil.Field("username", ""), expectCode: http.StatusBadRequest},
			{name: "username too long", mutate: testutil.Field("username", strings.Repeat("a", 129)), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid credentials",
				commandsError:  commands.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid username or password",
			},
			{
				name:           "token generation failed",
				commandsError:  errs.Mark(errors.New("sign failed"), errs.ErrDatabaseOperationFailed),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
				s.Nil(httptest.ExtractCookie(rec, cookie.AccessTokenCookieName))
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")

	s.Equal(http.StatusNoContent, rec.Code)
	c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
	s.Require().NotNil(c)
	s.Empty(c.Value)
	s.Negative(c.MaxAge)
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: bearer token", func() {
		token := s.jwt.GenerateToken(s.T(), "admin")
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, token)

		var response resdto.MeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("admin", response.Username)
	})

	s.Run("success: cookie token", func() {
		token := s.jwt.GenerateToken(s.T(), "admin")
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, url, nil,
			[]*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: token}})

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 401 with expired token", func() {
		token := s.jwt.CreateExpiredToken(s.T(), "admin")
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 401 with garbage token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "not-a-jwt")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}
