package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/magickal-mortalz/coven-service/internal/services"
	"github.com/magickal-mortalz/coven-service/internal/utils"
)

type MemberHandler struct {
	BaseHandler
	service services.MemberService
}

func NewMemberHandler(service services.MemberService, logger utils.Logger) *MemberHandler {
	return &MemberHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// CreateMember registers a new member and seeds their first curriculum year.
// @Summary Create member
// @Tags members
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /members [post]
func (h *MemberHandler) CreateMember(c *gin.Context) {
	h.LogRequest(c, "Creating member")

	var req services.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	member, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, http.StatusCreated, gin.H{"member_id": member.ID, "member": member})
}

// GetMember returns one member by id.
// @Summary Get member
// @Tags members
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /members/{id} [get]
func (h *MemberHandler) GetMember(c *gin.Context) {
	h.LogRequest(c, "Getting member")

	member, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, http.StatusOK, gin.H{"member": member})
}

// ListMembers returns all active members.
// @Summary List active members
// @Tags members
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	h.LogRequest(c, "Listing members")

	members, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, http.StatusOK, gin.H{"members": members, "total": len(members)})
}

// UpdateMember patches a member's profile fields.
// @Summary Update member
// @Tags members
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /members/{id} [patch]
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	h.LogRequest(c, "Updating member")

	var req services.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.service.Update(c.Request.Context(), c.Param("id"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, http.StatusOK, gin.H{"message": "profile updated"})
}
