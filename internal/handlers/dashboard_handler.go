package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/magickal-mortalz/coven-service/internal/services"
	"github.com/magickal-mortalz/coven-service/internal/utils"
)

type DashboardHandler struct {
	BaseHandler
	service services.DashboardService
}

func NewDashboardHandler(service services.DashboardService, logger utils.Logger) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// GetDashboard aggregates a member's profile, progress, attendance, grimoire
// stats and upcoming sabbats into one view.
// @Summary Get member dashboard
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /members/{id}/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	h.LogRequest(c, "Getting dashboard")

	dashboard, err := h.service.GetDashboard(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, http.StatusOK, gin.H{"dashboard": dashboard})
}
