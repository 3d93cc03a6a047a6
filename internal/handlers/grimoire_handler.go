package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/magickal-mortalz/coven-service/internal/services"
	"github.com/magickal-mortalz/coven-service/internal/utils"
)

type GrimoireHandler struct {
	BaseHandler
	service services.GrimoireService
}

func NewGrimoireHandler(service services.GrimoireService, logger utils.Logger) *GrimoireHandler {
	return &GrimoireHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// CreateEntry adds a journal entry to a member's grimoire.
// @Summary Create grimoire entry
// @Tags grimoire
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /members/{id}/grimoire [post]
func (h *GrimoireHandler) CreateEntry(c *gin.Context) {
	h.LogRequest(c, "Creating grimoire entry")

	var req services.CreateGrimoireEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	entry, err := h.service.Create(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, http.StatusCreated, gin.H{"entry_id": entry.ID, "entry": entry})
}

// ListEntries returns a member's grimoire, optionally filtered by category.
// @Summary List grimoire entries
// @Tags grimoire
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {object} map[string]interface{}
// @Router /members/{id}/grimoire [get]
func (h *GrimoireHandler) ListEntries(c *gin.Context) {
	h.LogRequest(c, "Listing grimoire entries")

	grimoire, err := h.service.List(c.Request.Context(), c.Param("id"), c.Query("category"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, http.StatusOK, gin.H{"grimoire": grimoire})
}

// UpdateEntry patches a grimoire entry and bumps its modified date.
// @Summary Update grimoire entry
// @Tags grimoire
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /grimoire/{id} [put]
func (h *GrimoireHandler) UpdateEntry(c *gin.Context) {
	h.LogRequest(c, "Updating grimoire entry")

	var req services.UpdateGrimoireEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.service.Update(c.Request.Context(), c.Param("id"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, http.StatusOK, gin.H{"message": "entry updated"})
}

// DeleteEntry removes a grimoire entry permanently.
// @Summary Delete grimoire entry
// @Tags grimoire
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /grimoire/{id} [delete]
func (h *GrimoireHandler) DeleteEntry(c *gin.Context) {
	h.LogRequest(c, "Deleting grimoire entry")

	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, http.StatusOK, gin.H{"message": "entry deleted"})
}
