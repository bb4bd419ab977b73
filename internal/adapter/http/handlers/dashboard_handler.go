package handlers

import (
	"net/http"

	response "smart_laundry/internal/adapter/http/dto/response"
	"smart_laundry/internal/domain/entities"
	"smart_laundry/internal/usecase"
	"smart_laundry/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the read-only dashboard figures.
type DashboardHandler struct {
	usecase usecase.ISummaryUseCase
}

func NewDashboardHandler(uc usecase.ISummaryUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// GetSummary godoc
// @Summary  Financial summary
// @Tags     dashboard
// @Produce  json
// @Success  200  {object}  response.SummaryResponse
// @Router   /summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	s, err := h.usecase.GetSummary(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSummary(s))
}

// GetPricing godoc
// @Summary  Service price list
// @Tags     dashboard
// @Produce  json
// @Success  200  {array}  response.PricingResponse
// @Router   /pricing [get]
func (h *DashboardHandler) GetPricing(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromPricingTable(entities.PricingTable()))
}
