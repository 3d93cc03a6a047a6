package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/magickal-mortalz/coven-service/internal/models"
	"github.com/magickal-mortalz/coven-service/internal/services"
	"github.com/magickal-mortalz/coven-service/internal/utils"
)

type CurriculumHandler struct {
	BaseHandler
	service services.CurriculumService
}

func NewCurriculumHandler(service services.CurriculumService, logger utils.Logger) *CurriculumHandler {
	return &CurriculumHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// GetProgress returns a member's curriculum records grouped by year with
// completion statistics.
// @Summary Get curriculum progress
// @Tags curriculum
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /members/{id}/progress [get]
func (h *CurriculumHandler) GetProgress(c *gin.Context) {
	h.LogRequest(c, "Getting curriculum progress")

	progress, err := h.service.GetProgress(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, http.StatusOK, gin.H{"progress": progress})
}

// Advance promotes the member one rung up the degree ladder and seeds the
// next year's modules.
// @Summary Advance member degree
// @Tags curriculum
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /members/{id}/advance [post]
func (h *CurriculumHandler) Advance(c *gin.Context) {
	h.LogRequest(c, "Advancing member degree")

	result, err := h.service.Advance(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, http.StatusOK, gin.H{"new_degree": result.NewDegree, "year": result.Year})
}

// UpdateModuleStatus sets the status of one curriculum record.
// @Summary Update module status
// @Tags curriculum
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /progress/{id}/status [put]
func (h *CurriculumHandler) UpdateModuleStatus(c *gin.Context) {
	h.LogRequest(c, "Updating module status")

	var req services.UpdateModuleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.service.UpdateModuleStatus(c.Request.Context(), c.Param("id"), models.ModuleStatus(req.Status)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, http.StatusOK, gin.H{"message": "module status updated"})
}
