package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dropdeck/internal/domain/drop"
	reqdto "dropdeck/internal/handler/dto/request"
	resdto "dropdeck/internal/handler/dto/response"
	"dropdeck/internal/handler/httperr"
	"dropdeck/internal/handler/middleware"
	"dropdeck/internal/infra/catalog"
	"dropdeck/internal/pkg/errs"
	"dropdeck/internal/usecase/commands"
	"dropdeck/internal/usecase/queries"
)

type DropHandler struct {
	dropCommands commands.DropCommands
	dropQueries  queries.DropQueries
}

func NewDropHandler(dropCommands commands.DropCommands, dropQueries queries.DropQueries) *DropHandler {
	return &DropHandler{
		dropCommands: dropCommands,
		dropQueries:  dropQueries,
	}
}

// @Summary List drops
// @Description List the shop's drops filtered by status, paged
// @Tags drops
// @Produce json
// @Security BearerAuth
// @Param status query string true "queued, active or completed"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.DropPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /drops [get]
func (h *DropHandler) List(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	var q struct {
		Status string `form:"status" binding:"required"`
		Page   int    `form:"page"`
		Limit  int    `form:"limit"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters")
		return
	}

	page, err := h.dropQueries.List(c.Request.Context(), sess, drop.Status(q.Status), q.Page, q.Limit)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidStatus) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status filter")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromDropPage(page))
}

// @Summary Get active drop
// @Description Get the shop's currently active drop, if any
// @Tags drops
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DropResponse
// @Success 204 "No active drop"
// @Failure 401 {object} httperr.Response
// @Router /drops/active [get]
func (h *DropHandler) Active(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	rm, err := h.dropQueries.Active(c.Request.Context(), sess)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	if rm == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDropRM(rm))
}

// @Summary Create drop
// @Description Queue a single product drop
// @Tags drops
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDropRequest true "Drop request"
// @Success 201 {object} resdto.DropResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /drops [post]
func (h *DropHandler) Create(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	var req reqdto.CreateDropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	rm, err := h.dropCommands.Create(c.Request.Context(), sess, req.ToInput())
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromDropRM(rm))
}

// @Summary Schedule collection
// @Description Plan drops for every active product of the source collection on a contiguous timeline
// @Tags drops
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ScheduleRequest true "Schedule request"
// @Success 201 {object} resdto.ScheduleResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /drops/schedule [post]
func (h *DropHandler) Schedule(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	var req reqdto.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	schedule := h.dropCommands.ScheduleCollection
	if req.Append {
		schedule = h.dropCommands.AppendCollection
	}

	inserted, err := schedule(c.Request.Context(), sess, req.ToInput())
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromScheduledDrops(inserted))
}

// @Summary Delete queued drops
// @Description Delete the given queued drops; drops in other statuses are skipped
// @Tags drops
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.DeleteDropsRequest true "Drop ids"
// @Success 200 {object} resdto.DeletedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /drops [delete]
func (h *DropHandler) Delete(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	var req reqdto.DeleteDropsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}
	ids, err := req.ParseIDs()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid drop ID format")
		return
	}

	deleted, err := h.dropCommands.DeleteQueued(c.Request.Context(), sess, ids)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.DeletedResponse{Deleted: deleted})
}

// @Summary Clear queued drops
// @Description Delete every queued drop for the shop
// @Tags drops
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DeletedResponse
// @Failure 401 {object} httperr.Response
// @Router /drops/queued [delete]
func (h *DropHandler) ClearQueued(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	deleted, err := h.dropCommands.ClearQueued(c.Request.Context(), sess)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.DeletedResponse{Deleted: deleted})
}

// @Summary Clear completed drops
// @Description Delete every completed drop for the shop
// @Tags drops
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DeletedResponse
// @Failure 401 {object} httperr.Response
// @Router /drops/completed [delete]
func (h *DropHandler) ClearCompleted(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	deleted, err := h.dropCommands.ClearCompleted(c.Request.Context(), sess)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.DeletedResponse{Deleted: deleted})
}

// @Summary Stop and clear
// @Description Wipe the queue, finish any active drop, detach the source collection and clear the published key
// @Tags drops
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.StopAndClearResponse
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /drops/stop-and-clear [post]
func (h *DropHandler) StopAndClear(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	result, err := h.dropCommands.StopAndClear(c.Request.Context(), sess)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.StopAndClearResponse{
		QueuedRemoved:   result.QueuedRemoved,
		ActiveCompleted: result.ActiveCompleted,
		SettingsReset:   result.SettingsReset,
	})
}

// writeCommandError maps command sentinels to statuses. The sentinels are
// attached with errs.Mark, so matching goes through errs.Is.
func (h *DropHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrProductAlreadyQueued):
		httperr.AbortWithError(c, http.StatusConflict, err, "Product already has a pending drop")
	case errs.Is(err, commands.ErrNoSourceCollection):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "No source collection configured")
	case errs.Is(err, commands.ErrInvalidSchedule):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid schedule input")
	case catalog.IsKind(err, catalog.KindUnauthorized):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Catalog rejected credentials")
	case catalog.IsKind(err, catalog.KindUpstream), catalog.IsKind(err, catalog.KindUnreachable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Catalog unavailable")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
