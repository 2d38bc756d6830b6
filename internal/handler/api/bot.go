package api

import (
	"net/http"

	reqdto "github.com/atomospherebrand-bot/relese/internal/handler/dto/request"
	resdto "github.com/atomospherebrand-bot/relese/internal/handler/dto/response"
	"github.com/atomospherebrand-bot/relese/internal/handler/httperr"
	"github.com/atomospherebrand-bot/relese/internal/pkg/errs"
	"github.com/atomospherebrand-bot/relese/internal/usecase/commands"
	"github.com/atomospherebrand-bot/relese/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// The bot pages portfolio items in small chunks.
const (
	botPortfolioPageSize    = 6
	botPortfolioMaxPageSize = 48
)

// BotHandler serves the Telegram bot. Everything it returns is safe to show
// to clients: no bot token, no inactive masters unless asked.
type BotHandler struct {
	bookings      commands.BookingCommands
	notifications commands.NotificationCommands
	availability  queries.AvailabilityQueries
	catalog       queries.CatalogQueries
	studio        queries.StudioQueries
	portfolio     queries.PortfolioQueries
	flags         queries.NotificationQueries
}

func NewBotHandler(
	bookings commands.BookingCommands,
	notifications commands.NotificationCommands,
	availability queries.AvailabilityQueries,
	catalog queries.CatalogQueries,
	studio queries.StudioQueries,
	portfolio queries.PortfolioQueries,
	flags queries.NotificationQueries,
) *BotHandler {
	return &BotHandler{
		bookings:      bookings,
		notifications: notifications,
		availability:  availability,
		catalog:       catalog,
		studio:        studio,
		portfolio:     portfolio,
		flags:         flags,
	}
}

// @Summary Services for the bot
// @Tags bot
// @Produce json
// @Success 200 {object} resdto.ServiceListResponse
// @Router /bot/services [get]
func (h *BotHandler) Services(c *gin.Context) {
	items, err := h.catalog.ListServices(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewServiceList(items))
}

// @Summary Masters for the bot
// @Tags bot
// @Produce json
// @Param includeInactive query bool false "Include inactive masters"
// @Success 200 {object} resdto.MasterListResponse
// @Router /bot/masters [get]
func (h *BotHandler) Masters(c *gin.Context) {
	items, err := h.catalog.ListMasters(c.Request.Context(), queryBool(c, "includeInactive"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewMasterList(items))
}

// @Summary Bot messages
// @Tags bot
// @Produce json
// @Success 200 {object} resdto.MessageListResponse
// @Router /bot/messages [get]
func (h *BotHandler) Messages(c *gin.Context) {
	items, err := h.studio.Messages(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewMessageList(items))
}

// @Summary Public studio settings
// @Description Settings without the bot token.
// @Tags bot
// @Produce json
// @Success 200 {object} resdto.SettingsResponse
// @Router /bot/settings [get]
func (h *BotHandler) Settings(c *gin.Context) {
	s, err := h.studio.PublicSettings(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SettingsResponse{Settings: s})
}

// @Summary Free start times
// @Tags bot
// @Produce json
// @Param masterId query string true "Master ID"
// @Param serviceId query string true "Service ID"
// @Param date query string true "YYYY-MM-DD"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bot/availability [get]
func (h *BotHandler) Slots(c *gin.Context) {
	masterID, ok := requiredUUID(c, "masterId")
	if !ok {
		return
	}
	serviceID, ok := requiredUUID(c, "serviceId")
	if !ok {
		return
	}
	date, ok := requiredQuery(c, "date")
	if !ok {
		return
	}
	slots, err := h.availability.GetAvailableSlots(c.Request.Context(), masterID, serviceID, date)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewSlots(slots))
}

// @Summary Days with a free slot
// @Description A day is available when any active master can take the service on it.
// @Tags bot
// @Produce json
// @Param serviceId query string true "Service ID"
// @Param days query int false "1..60, default 30"
// @Param startDate query string false "YYYY-MM-DD, default today"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bot/availability/calendar [get]
func (h *BotHandler) Calendar(c *gin.Context) {
	serviceID, ok := requiredUUID(c, "serviceId")
	if !ok {
		return
	}
	days, ok := optionalInt(c, "days", queries.DefaultCalendarDays)
	if !ok {
		return
	}
	start, ok := optionalDate(c, "startDate")
	if !ok {
		return
	}
	if days < 1 || days > queries.MaxCalendarDays {
		httperr.Abort(c, errs.Kind(queries.ErrInvalidCalendarDays, errs.ErrValidation))
		return
	}

	availability, err := h.availability.Calendar(c.Request.Context(), serviceID, days, start)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewCalendar(availability))
}

// @Summary Masters free at a time
// @Tags bot
// @Produce json
// @Param serviceId query string true "Service ID"
// @Param date query string true "YYYY-MM-DD"
// @Param time query string true "HH:MM"
// @Success 200 {object} resdto.MasterSummaryListResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bot/availability/masters [get]
func (h *BotHandler) MastersForSlot(c *gin.Context) {
	serviceID, ok := requiredUUID(c, "serviceId")
	if !ok {
		return
	}
	date, ok := requiredQuery(c, "date")
	if !ok {
		return
	}
	at, ok := requiredQuery(c, "time")
	if !ok {
		return
	}
	masters, err := h.availability.MastersForSlot(c.Request.Context(), serviceID, date, at)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewMasterSummaryList(masters))
}

// @Summary Book from the bot
// @Description Bot bookings always start as pending.
// @Tags bot
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bot/bookings [post]
func (h *BotHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	req.Status = nil

	view, err := h.bookings.Create(c.Request.Context(), req, commands.SourceBot)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.BookingResponse{Booking: view})
}

// @Summary Portfolio of a master
// @Tags bot
// @Produce json
// @Param masterId query string true "Master ID"
// @Param page query int false "Page, from 1"
// @Param pageSize query int false "Page size (default 6, max 48)"
// @Success 200 {object} queries.PortfolioPage
// @Failure 400 {object} httperr.Response
// @Router /bot/portfolio [get]
func (h *BotHandler) Portfolio(c *gin.Context) {
	if _, ok := requiredUUID(c, "masterId"); !ok {
		return
	}
	f, ok := portfolioFilter(c, botPortfolioPageSize, botPortfolioMaxPageSize)
	if !ok {
		return
	}
	page, err := h.portfolio.List(c.Request.Context(), f)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary Notification flags
// @Description Map of booking id to the notifications already sent for it.
// @Tags bot
// @Produce json
// @Success 200 {object} map[string]notification.Flags
// @Router /bot/notifications [get]
func (h *BotHandler) Notifications(c *gin.Context) {
	all, err := h.flags.All(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, all)
}

// @Summary Register the client chat of a booking
// @Tags bot
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterChatRequest true "Chat"
// @Success 200 {object} resdto.OKResponse
// @Failure 400 {object} httperr.Response
// @Router /bot/notifications/register-chat [post]
func (h *BotHandler) RegisterChat(c *gin.Context) {
	var req reqdto.RegisterChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "bookingId and chatId required", nil)
		return
	}
	if err := h.notifications.RegisterChat(c.Request.Context(), req); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OKResponse{OK: true})
}

// @Summary Mark a notification as sent
// @Tags bot
// @Accept json
// @Produce json
// @Param request body reqdto.MarkNotificationRequest true "Notification"
// @Success 200 {object} resdto.OKResponse
// @Failure 400 {object} httperr.Response
// @Router /bot/notifications/mark [post]
func (h *BotHandler) MarkNotification(c *gin.Context) {
	var req reqdto.MarkNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "bookingId and type required", nil)
		return
	}
	if err := h.notifications.Mark(c.Request.Context(), req); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OKResponse{OK: true})
}
