package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/estatehub/internal/application/setting/dto"
	"github.com/orris-inc/estatehub/internal/shared/logger"
	"github.com/orris-inc/estatehub/internal/shared/utils"
)

type SettingHandler struct {
	getUC    settingsReader
	updateUC settingsUpdater
	logger   logger.Interface
}

func NewSettingHandler(getUC settingsReader, updateUC settingsUpdater, logger logger.Interface) *SettingHandler {
	return &SettingHandler{getUC: getUC, updateUC: updateUC, logger: logger}
}

// GetSettings handles GET /admin/settings
func (h *SettingHandler) GetSettings(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateSettings handles PUT /admin/settings. Either every pair is stored or none.
func (h *SettingHandler) UpdateSettings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSettingsRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), req, userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("settings updated via API", "user_id", userID, "count", len(req.Settings))
	utils.SuccessResponse(c, http.StatusOK, "Settings updated successfully", result)
}
