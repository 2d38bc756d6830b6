package api

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/atomospherebrand-bot/relese/internal/domain/portfolio"
	reqdto "github.com/atomospherebrand-bot/relese/internal/handler/dto/request"
	resdto "github.com/atomospherebrand-bot/relese/internal/handler/dto/response"
	"github.com/atomospherebrand-bot/relese/internal/handler/httperr"
	"github.com/atomospherebrand-bot/relese/internal/infra/upload"
	"github.com/atomospherebrand-bot/relese/internal/pkg/errs"
	"github.com/atomospherebrand-bot/relese/internal/usecase/commands"
	"github.com/atomospherebrand-bot/relese/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// Uploader stores a multipart file and returns its public URL.
type Uploader interface {
	Save(fh *multipart.FileHeader) (*upload.Stored, error)
}

type ContentHandler struct {
	cmds      commands.ContentCommands
	studio    queries.StudioQueries
	portfolio queries.PortfolioQueries
	uploader  Uploader
}

func NewContentHandler(cmds commands.ContentCommands, studio queries.StudioQueries, portfolio queries.PortfolioQueries, uploader Uploader) *ContentHandler {
	return &ContentHandler{cmds: cmds, studio: studio, portfolio: portfolio, uploader: uploader}
}

// @Summary List bot messages
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MessageListResponse
// @Router /messages [get]
func (h *ContentHandler) ListMessages(c *gin.Context) {
	items, err := h.studio.Messages(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewMessageList(items))
}

// @Summary Save bot messages
// @Description Upserts every message by key in one transaction.
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SaveMessagesRequest true "Messages"
// @Success 200 {object} resdto.MessageListResponse
// @Failure 400 {object} httperr.Response
// @Router /messages [put]
func (h *ContentHandler) SaveMessages(c *gin.Context) {
	var req reqdto.SaveMessagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	items, err := h.cmds.SaveMessages(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewMessageList(items))
}

// @Summary Get studio settings
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SettingsResponse
// @Router /settings [get]
func (h *ContentHandler) GetSettings(c *gin.Context) {
	s, err := h.studio.Settings(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SettingsResponse{Settings: s})
}

// @Summary Save studio settings
// @Description A changed bot token starts, stops or restarts the bot process in the background.
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SaveSettingsRequest true "Settings"
// @Success 200 {object} resdto.SaveSettingsResponse
// @Failure 400 {object} httperr.Response
// @Router /settings [put]
func (h *ContentHandler) SaveSettings(c *gin.Context) {
	var req reqdto.SaveSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	saved, err := h.cmds.SaveSettings(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SaveSettingsResponse{
		Settings:          saved.Settings,
		BotRestarted:      saved.Bot.Queued,
		BotAction:         string(saved.Bot.Action),
		BotRestartMessage: saved.Bot.Message,
	})
}

// @Summary List portfolio
// @Tags portfolio
// @Produce json
// @Security BearerAuth
// @Param masterId query string false "Master ID"
// @Param style query string false "Style substring"
// @Param q query string false "Title or style substring"
// @Param page query int false "Page, from 1"
// @Param pageSize query int false "Page size (default 24, max 100)"
// @Success 200 {object} queries.PortfolioPage
// @Failure 400 {object} httperr.Response
// @Router /portfolio [get]
func (h *ContentHandler) ListPortfolio(c *gin.Context) {
	f, ok := portfolioFilter(c, portfolio.DefaultPageSize, portfolio.MaxPageSize)
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

// @Summary Portfolio filter options
// @Tags portfolio
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.PortfolioFilters
// @Router /portfolio/filters [get]
func (h *ContentHandler) PortfolioFilters(c *gin.Context) {
	filters, err := h.portfolio.Filters(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, filters)
}

// @Summary Add portfolio item
// @Tags portfolio
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePortfolioItemRequest true "Item"
// @Success 201 {object} resdto.PortfolioItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /portfolio [post]
func (h *ContentHandler) CreatePortfolioItem(c *gin.Context) {
	var req reqdto.CreatePortfolioItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	item, err := h.cmds.CreatePortfolioItem(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.PortfolioItemResponse{Item: item})
}

// @Summary Delete portfolio item
// @Tags portfolio
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /portfolio/{id} [delete]
func (h *ContentHandler) DeletePortfolioItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.DeletePortfolioItem(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List certificates
// @Tags certificates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CertificateListResponse
// @Router /certificates [get]
func (h *ContentHandler) ListCertificates(c *gin.Context) {
	items, err := h.studio.Certificates(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewCertificateList(items))
}

// @Summary Add certificate
// @Tags certificates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCertificateRequest true "Certificate"
// @Success 201 {object} resdto.CertificateResponse
// @Failure 400 {object} httperr.Response
// @Router /certificates [post]
func (h *ContentHandler) CreateCertificate(c *gin.Context) {
	var req reqdto.CreateCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cert, err := h.cmds.CreateCertificate(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CertificateResponse{Certificate: cert})
}

// @Summary Delete certificate
// @Tags certificates
// @Security BearerAuth
// @Param id path string true "Certificate ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /certificates/{id} [delete]
func (h *ContentHandler) DeleteCertificate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteCertificate(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Upload media
// @Description Multipart field file and an optional thumbnail. Files are served under /uploads.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Media file"
// @Param thumbnail formData file false "Thumbnail"
// @Success 200 {object} resdto.UploadResponse
// @Failure 400 {object} httperr.Response
// @Failure 413 {object} httperr.Response
// @Router /upload [post]
func (h *ContentHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "File is required", nil)
		return
	}
	stored, err := h.uploader.Save(fh)
	if err != nil {
		abortUpload(c, err)
		return
	}
	resp := resdto.UploadResponse{URL: stored.URL, MediaType: string(stored.MediaType)}

	if thumb, err := c.FormFile("thumbnail"); err == nil {
		t, err := h.uploader.Save(thumb)
		if err != nil {
			abortUpload(c, err)
			return
		}
		resp.Thumbnail = &t.URL
	} else if !errors.Is(err, http.ErrMissingFile) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid thumbnail", nil)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func abortUpload(c *gin.Context, err error) {
	switch {
	case errs.Is(err, upload.ErrTooLarge):
		httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, "File is too large", nil)
	case errs.Is(err, upload.ErrEmptyFile):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "File is empty", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to store file", nil)
	}
}

func portfolioFilter(c *gin.Context, defaultSize, maxSize int) (queries.PortfolioFilter, bool) {
	masterID, ok := optionalUUID(c, "masterId")
	if !ok {
		return queries.PortfolioFilter{}, false
	}
	page, ok := optionalInt(c, "page", 1)
	if !ok {
		return queries.PortfolioFilter{}, false
	}
	size, ok := optionalInt(c, "pageSize", defaultSize)
	if !ok {
		return queries.PortfolioFilter{}, false
	}
	return queries.PortfolioFilter{
		MasterID: masterID,
		Style:    c.Query("style"),
		Query:    c.Query("q"),
		Page:     portfolio.NewPage(page, size, defaultSize, maxSize),
	}, true
}
