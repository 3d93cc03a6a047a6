package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/magickal-mortalz/coven-service/internal/services"
	"github.com/magickal-mortalz/coven-service/internal/utils"
)

type HandlerManager struct {
	memberHandler     *MemberHandler
	curriculumHandler *CurriculumHandler
	attendanceHandler *AttendanceHandler
	grimoireHandler   *GrimoireHandler
	dashboardHandler  *DashboardHandler
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		memberHandler:     NewMemberHandler(serviceManager.Member(), logger),
		curriculumHandler: NewCurriculumHandler(serviceManager.Curriculum(), logger),
		attendanceHandler: NewAttendanceHandler(serviceManager.Attendance(), logger),
		grimoireHandler:   NewGrimoireHandler(serviceManager.Grimoire(), logger),
		dashboardHandler:  NewDashboardHandler(serviceManager.Dashboard(), logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", HealthCheck)

	v1 := router.Group("/api/v1")
	{
		members := v1.Group("/members")
		{
			members.POST("", hm.memberHandler.CreateMember)
			members.GET("", hm.memberHandler.ListMembers)
			members.GET("/:id", hm.memberHandler.GetMember)
			members.PATCH("/:id", hm.memberHandler.UpdateMember)

			members.GET("/:id/progress", hm.curriculumHandler.GetProgress)
			members.POST("/:id/advance", hm.curriculumHandler.Advance)

			members.POST("/:id/attendance", hm.attendanceHandler.RecordAttendance)
			members.GET("/:id/attendance", hm.attendanceHandler.GetAttendance)

			members.POST("/:id/grimoire", hm.grimoireHandler.CreateEntry)
			members.GET("/:id/grimoire", hm.grimoireHandler.ListEntries)

			members.GET("/:id/dashboard", hm.dashboardHandler.GetDashboard)
		}

		v1.PUT("/progress/:id/status", hm.curriculumHandler.UpdateModuleStatus)

		grimoire := v1.Group("/grimoire")
		{
			grimoire.PUT("/:id", hm.grimoireHandler.UpdateEntry)
			grimoire.DELETE("/:id", hm.grimoireHandler.DeleteEntry)
		}

		v1.GET("/calendar/upcoming", hm.attendanceHandler.GetUpcomingSabbats)
	}
}

// HealthCheck reports process liveness.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "coven-service"})
}
