package handlers

import (
	"net/http"

	request "smart_laundry/internal/adapter/http/dto/request"
	response "smart_laundry/internal/adapter/http/dto/response"
	"smart_laundry/internal/usecase"
	"smart_laundry/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSettingsPayload = pkg.NewDomainErrorSimple("INVALID_SETTINGS_INPUT", "Invalid settings payload", http.StatusBadRequest)

type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

// GetIntegration godoc
// @Summary  WhatsApp integration settings
// @Tags     settings
// @Produce  json
// @Success  200  {object}  response.IntegrationResponse
// @Router   /settings/integration [get]
func (h *SettingsHandler) GetIntegration(c *gin.Context) {
	cfg, err := h.usecase.GetIntegrationConfig(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromIntegrationConfig(cfg))
}

// UpdateIntegration godoc
// @Summary  Save WhatsApp integration settings
// @Tags     settings
// @Accept   json
// @Produce  json
// @Param    settings  body      request.UpdateIntegrationRequest  true  "Token and/or enabled flag"
// @Success  200       {object}  response.IntegrationResponse
// @Failure  400       {object}  pkg.HTTPError
// @Router   /settings/integration [put]
func (h *SettingsHandler) UpdateIntegration(c *gin.Context) {
	var payload request.UpdateIntegrationRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Empty() {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	cfg, err := h.usecase.UpdateIntegration(c.Request.Context(), payload.Token, payload.Enabled)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromIntegrationConfig(cfg))
}
