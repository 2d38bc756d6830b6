package api

import (
	"bytes"
	"net/http"

	resdto "github.com/atomospherebrand-bot/relese/internal/handler/dto/response"
	"github.com/atomospherebrand-bot/relese/internal/handler/httperr"
	"github.com/atomospherebrand-bot/relese/internal/infra/excel"
	"github.com/atomospherebrand-bot/relese/internal/usecase/commands"
	"github.com/atomospherebrand-bot/relese/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const exportFileName = "bookings.xlsx"

type ReportHandler struct {
	q       queries.ReportQueries
	imports commands.ImportCommands
}

func NewReportHandler(q queries.ReportQueries, imports commands.ImportCommands) *ReportHandler {
	return &ReportHandler{q: q, imports: imports}
}

// @Summary List clients
// @Description Clients derived from bookings, grouped by phone, latest visit first.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param q query string false "Name, phone or telegram substring"
// @Success 200 {object} resdto.ClientListResponse
// @Router /clients [get]
func (h *ReportHandler) Clients(c *gin.Context) {
	items, err := h.q.Clients(c.Request.Context(), c.Query("q"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewClientList(items))
}

// @Summary Dashboard
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.Dashboard
// @Router /dashboard [get]
func (h *ReportHandler) Dashboard(c *gin.Context) {
	d, err := h.q.Dashboard(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// @Summary Counters
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.Stats
// @Router /stats [get]
func (h *ReportHandler) Stats(c *gin.Context) {
	s, err := h.q.Stats(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// @Summary Export bookings
// @Tags excel
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Success 200 {file} file
// @Failure 400 {object} httperr.Response
// @Router /excel/export [get]
func (h *ReportHandler) Export(c *gin.Context) {
	from, ok := optionalDate(c, "from")
	if !ok {
		return
	}
	to, ok := optionalDate(c, "to")
	if !ok {
		return
	}

	rows, err := h.q.ExportRows(c.Request.Context(), from, to)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	var buf bytes.Buffer
	if err := excel.WriteBookings(&buf, rows); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build spreadsheet", nil)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+exportFileName)
	c.Data(http.StatusOK, excel.ContentType, buf.Bytes())
}

// @Summary Import bookings
// @Description Every row is created like a regular booking; rejected rows are reported and skipped.
// @Tags excel
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "xlsx file"
// @Success 200 {object} commands.ImportResult
// @Failure 400 {object} httperr.Response
// @Router /excel/import [post]
func (h *ReportHandler) Import(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "File is required", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Failed to read file", nil)
		return
	}
	defer f.Close()

	result, err := h.imports.ImportBookings(c.Request.Context(), f)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
