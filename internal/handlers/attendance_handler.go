package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/magickal-mortalz/coven-service/internal/services"
	"github.com/magickal-mortalz/coven-service/internal/utils"
)

type AttendanceHandler struct {
	BaseHandler
	service services.AttendanceService
}

func NewAttendanceHandler(service services.AttendanceService, logger utils.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// RecordAttendance records a member's presence (or absence) at an event.
// @Summary Record attendance
// @Tags attendance
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /members/{id}/attendance [post]
func (h *AttendanceHandler) RecordAttendance(c *gin.Context) {
	h.LogRequest(c, "Recording attendance")

	var req services.RecordAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	record, err := h.service.Record(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, http.StatusCreated, gin.H{"attendance_id": record.ID, "record": record})
}

// GetAttendance returns a member's attendance history with per-type tallies.
// @Summary Get member attendance
// @Tags attendance
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /members/{id}/attendance [get]
func (h *AttendanceHandler) GetAttendance(c *gin.Context) {
	h.LogRequest(c, "Getting attendance history")

	attendance, err := h.service.GetMemberAttendance(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, http.StatusOK, gin.H{"attendance": attendance})
}

// GetUpcomingSabbats returns sabbats falling inside the next three months.
// @Summary List upcoming sabbats
// @Tags attendance
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /calendar/upcoming [get]
func (h *AttendanceHandler) GetUpcomingSabbats(c *gin.Context) {
	h.LogRequest(c, "Listing upcoming sabbats")

	sabbats := h.service.UpcomingSabbats(c.Request.Context())
	h.OK(c, http.StatusOK, gin.H{"sabbats": sabbats, "total": len(sabbats)})
}
