package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "dropdeck/internal/handler/dto/request"
	resdto "dropdeck/internal/handler/dto/response"
	"dropdeck/internal/handler/httperr"
	"dropdeck/internal/handler/middleware"
	"dropdeck/internal/pkg/errs"
	"dropdeck/internal/usecase/commands"
	"dropdeck/internal/usecase/queries"
)

type SettingsHandler struct {
	settingsCommands commands.SettingsCommands
	settingsQueries  queries.SettingsQueries
}

func NewSettingsHandler(settingsCommands commands.SettingsCommands, settingsQueries queries.SettingsQueries) *SettingsHandler {
	return &SettingsHandler{
		settingsCommands: settingsCommands,
		settingsQueries:  settingsQueries,
	}
}

// @Summary Get settings
// @Description Get the shop's scheduling settings; defaults when never saved
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SettingsResponse
// @Failure 401 {object} httperr.Response
// @Router /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	cfg, err := h.settingsQueries.Get(c.Request.Context(), sess)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromSettings(cfg))
}

// @Summary Update settings
// @Description Patch the shop's scheduling settings
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateSettingsRequest true "Settings patch"
// @Success 200 {object} resdto.SettingsResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	var req reqdto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	cfg, err := h.settingsCommands.Update(c.Request.Context(), sess, req.ToPatch())
	if err != nil {
		if errs.Is(err, commands.ErrInvalidSettings) {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid settings")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromSettings(cfg))
}
