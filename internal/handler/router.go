package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"github.com/atomospherebrand-bot/relese/internal/handler/api"
	"github.com/atomospherebrand-bot/relese/internal/handler/middleware"
	"github.com/atomospherebrand-bot/relese/internal/infra/metrics"
	"github.com/atomospherebrand-bot/relese/internal/infra/upload"
	"github.com/atomospherebrand-bot/relese/internal/pkg/config"
)

const multipartOverhead = 1 << 20

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Auth    *api.AuthHandler
	Booking *api.BookingHandler
	Catalog *api.CatalogHandler
	Content *api.ContentHandler
	Report  *api.ReportHandler
	Bot     *api.BotHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, cfg, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger.GetSlogLogger()))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.Metrics(m))
	engine.Use(middleware.ErrorHandler(logger.GetSlogLogger()))
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.Static(strings.TrimSuffix(upload.PublicPrefix, "/"), cfg.Upload.Dir)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// a file and its thumbnail plus multipart framing
	bodyLimit := middleware.MaxBodyBytes(2*cfg.Upload.MaxBytes + multipartOverhead)

	apiGroup := engine.Group("/api")
	apiGroup.Use(middleware.NoStore())
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		bot := apiGroup.Group("/bot")
		bot.Use(middleware.BotKey(cfg.Bot.APIKey))
		{
			addRoutes(bot, []route{
				{Method: http.MethodGet, Path: "/services", Handler: h.Bot.Services},
				{Method: http.MethodGet, Path: "/masters", Handler: h.Bot.Masters},
				{Method: http.MethodGet, Path: "/messages", Handler: h.Bot.Messages},
				{Method: http.MethodGet, Path: "/settings", Handler: h.Bot.Settings},
				{Method: http.MethodGet, Path: "/availability", Handler: h.Bot.Slots},
				{Method: http.MethodGet, Path: "/availability/calendar", Handler: h.Bot.Calendar},
				{Method: http.MethodGet, Path: "/availability/masters", Handler: h.Bot.MastersForSlot},
				{Method: http.MethodPost, Path: "/bookings", Handler: h.Bot.CreateBooking},
				{Method: http.MethodGet, Path: "/portfolio", Handler: h.Bot.Portfolio},
				{Method: http.MethodGet, Path: "/notifications", Handler: h.Bot.Notifications},
				{Method: http.MethodPost, Path: "/notifications/register-chat", Handler: h.Bot.RegisterChat},
				{Method: http.MethodPost, Path: "/notifications/mark", Handler: h.Bot.MarkNotification},
			})
		}

		admin := apiGroup.Group("")
		admin.Use(authMiddleware.RequireAuth())
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/masters", Handler: h.Catalog.ListMasters},
			{Method: http.MethodPost, Path: "/masters", Handler: h.Catalog.CreateMaster},
			{Method: http.MethodGet, Path: "/masters/:id", Handler: h.Catalog.GetMaster},
			{Method: http.MethodPut, Path: "/masters/:id", Handler: h.Catalog.UpdateMaster},
			{Method: http.MethodDelete, Path: "/masters/:id", Handler: h.Catalog.DeleteMaster},

			{Method: http.MethodGet, Path: "/services", Handler: h.Catalog.ListServices},
			{Method: http.MethodPost, Path: "/services", Handler: h.Catalog.CreateService},
			{Method: http.MethodGet, Path: "/services/:id", Handler: h.Catalog.GetService},
			{Method: http.MethodPut, Path: "/services/:id", Handler: h.Catalog.UpdateService},
			{Method: http.MethodDelete, Path: "/services/:id", Handler: h.Catalog.DeleteService},

			{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.List},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Create},
			{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.Get},
			{Method: http.MethodPut, Path: "/bookings/:id", Handler: h.Booking.Update},
			{Method: http.MethodPatch, Path: "/bookings/:id/status", Handler: h.Booking.UpdateStatus},
			{Method: http.MethodDelete, Path: "/bookings/:id", Handler: h.Booking.Delete},
			{Method: http.MethodGet, Path: "/availability", Handler: h.Booking.Availability},

			{Method: http.MethodGet, Path: "/messages", Handler: h.Content.ListMessages},
			{Method: http.MethodPut, Path: "/messages", Handler: h.Content.SaveMessages},
			{Method: http.MethodGet, Path: "/settings", Handler: h.Content.GetSettings},
			{Method: http.MethodPut, Path: "/settings", Handler: h.Content.SaveSettings},

			{Method: http.MethodGet, Path: "/portfolio", Handler: h.Content.ListPortfolio},
			{Method: http.MethodGet, Path: "/portfolio/filters", Handler: h.Content.PortfolioFilters},
			{Method: http.MethodPost, Path: "/portfolio", Handler: h.Content.CreatePortfolioItem},
			{Method: http.MethodDelete, Path: "/portfolio/:id", Handler: h.Content.DeletePortfolioItem},
			{Method: http.MethodGet, Path: "/certificates", Handler: h.Content.ListCertificates},
			{Method: http.MethodPost, Path: "/certificates", Handler: h.Content.CreateCertificate},
			{Method: http.MethodDelete, Path: "/certificates/:id", Handler: h.Content.DeleteCertificate},
			{Method: http.MethodPost, Path: "/upload", Handler: h.Content.Upload, Mw: []gin.HandlerFunc{bodyLimit}},

			{Method: http.MethodGet, Path: "/clients", Handler: h.Report.Clients},
			{Method: http.MethodGet, Path: "/dashboard", Handler: h.Report.Dashboard},
			{Method: http.MethodGet, Path: "/stats", Handler: h.Report.Stats},
			{Method: http.MethodGet, Path: "/excel/export", Handler: h.Report.Export},
			{Method: http.MethodPost, Path: "/excel/import", Handler: h.Report.Import, Mw: []gin.HandlerFunc{bodyLimit}},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
