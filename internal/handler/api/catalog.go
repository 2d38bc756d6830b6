package api

import (
	"net/http"

	reqdto "github.com/atomospherebrand-bot/relese/internal/handler/dto/request"
	resdto "github.com/atomospherebrand-bot/relese/internal/handler/dto/response"
	"github.com/atomospherebrand-bot/relese/internal/handler/httperr"
	"github.com/atomospherebrand-bot/relese/internal/usecase/commands"
	"github.com/atomospherebrand-bot/relese/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	cmds commands.CatalogCommands
	q    queries.CatalogQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, q: q}
}

// @Summary List masters
// @Tags masters
// @Produce json
// @Security BearerAuth
// @Param includeInactive query bool false "Include inactive masters"
// @Success 200 {object} resdto.MasterListResponse
// @Router /masters [get]
func (h *CatalogHandler) ListMasters(c *gin.Context) {
	includeInactive := true
	if c.Query("includeInactive") != "" {
		includeInactive = queryBool(c, "includeInactive")
	}
	items, err := h.q.ListMasters(c.Request.Context(), includeInactive)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewMasterList(items))
}

// @Summary Get master
// @Tags masters
// @Produce json
// @Security BearerAuth
// @Param id path string true "Master ID"
// @Success 200 {object} resdto.MasterResponse
// @Failure 404 {object} httperr.Response
// @Router /masters/{id} [get]
func (h *CatalogHandler) GetMaster(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetMaster(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MasterResponse{Master: view})
}

// @Summary Create master
// @Tags masters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateMasterRequest true "Master"
// @Success 201 {object} resdto.MasterResponse
// @Failure 400 {object} httperr.Response
// @Router /masters [post]
func (h *CatalogHandler) CreateMaster(c *gin.Context) {
	var req reqdto.CreateMasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.CreateMaster(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.MasterResponse{Master: view})
}

// @Summary Update master
// @Tags masters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Master ID"
// @Param request body reqdto.UpdateMasterRequest true "Changed fields"
// @Success 200 {object} resdto.MasterResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /masters/{id} [put]
func (h *CatalogHandler) UpdateMaster(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateMasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.UpdateMaster(c.Request.Context(), id, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MasterResponse{Master: view})
}

// @Summary Delete master
// @Description Bookings of the master are removed with it.
// @Tags masters
// @Security BearerAuth
// @Param id path string true "Master ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /masters/{id} [delete]
func (h *CatalogHandler) DeleteMaster(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteMaster(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List services
// @Tags services
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ServiceListResponse
// @Router /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	items, err := h.q.ListServices(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewServiceList(items))
}

// @Summary Get service
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 404 {object} httperr.Response
// @Router /services/{id} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetService(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ServiceResponse{Service: view})
}

// @Summary Create service
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateServiceRequest true "Service"
// @Success 201 {object} resdto.ServiceResponse
// @Failure 400 {object} httperr.Response
// @Router /services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req reqdto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.CreateService(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.ServiceResponse{Service: view})
}

// @Summary Update service
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param request body reqdto.UpdateServiceRequest true "Changed fields"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /services/{id} [put]
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.cmds.UpdateService(c.Request.Context(), id, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ServiceResponse{Service: view})
}

// @Summary Delete service
// @Tags services
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /services/{id} [delete]
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteService(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
