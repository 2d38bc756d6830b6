package api

import (
	"net/http"
	"strings"

	"github.com/atomospherebrand-bot/relese/internal/domain/booking"
	reqdto "github.com/atomospherebrand-bot/relese/internal/handler/dto/request"
	resdto "github.com/atomospherebrand-bot/relese/internal/handler/dto/response"
	"github.com/atomospherebrand-bot/relese/internal/handler/httperr"
	"github.com/atomospherebrand-bot/relese/internal/pkg/errs"
	"github.com/atomospherebrand-bot/relese/internal/usecase/commands"
	"github.com/atomospherebrand-bot/relese/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds         commands.BookingCommands
	q            queries.BookingQueries
	availability queries.AvailabilityQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, availability queries.AvailabilityQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q, availability: availability}
}

// @Summary List bookings
// @Description Newest first. from and to are inclusive.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Param masterId query string false "Master ID"
// @Param status query string false "pending, confirmed or cancelled"
// @Param limit query int false "Max items"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var (
		f  queries.BookingFilter
		ok bool
	)
	if f.From, ok = optionalDate(c, "from"); !ok {
		return
	}
	if f.To, ok = optionalDate(c, "to"); !ok {
		return
	}
	if f.MasterID, ok = optionalUUID(c, "masterId"); !ok {
		return
	}
	if f.Limit, ok = optionalInt(c, "limit", 0); !ok {
		return
	}
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		s, err := booking.ParseStatus(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", nil)
			return
		}
		f.Status = &s
	}

	items, err := h.q.List(c.Request.Context(), f)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewBookingList(items))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.BookingResponse{Booking: view})
}

// @Summary Create booking
// @Description Status defaults to pending. An overlapping booking of the same master is rejected with 409.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), req, commands.SourceAdmin)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.BookingResponse{Booking: view})
}

// @Summary Update booking
// @Description Partial update. The duration follows the (new) service.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Changed fields"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id} [put]
func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.Update(c.Request.Context(), id, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.BookingResponse{Booking: view})
}

// @Summary Update booking status
// @Description Setting the current status again is a no-op.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Status"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.BookingResponse{Booking: view})
}

// @Summary Delete booking
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	removed, err := h.cmds.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if !removed {
		httperr.Abort(c, errs.Kind(errs.ErrBookingNotFound, errs.ErrNotFound))
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Free start times
// @Description Start times of the day on which the service fits for the master.
// @Tags bookings
// @Produce json
// @Param masterId query string true "Master ID"
// @Param serviceId query string true "Service ID"
// @Param date query string true "YYYY-MM-DD"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /availability [get]
func (h *BookingHandler) Availability(c *gin.Context) {
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
