package services

import (
	"log/slog"

	"github.com/magickal-mortalz/coven-service/internal/audit"
	"github.com/magickal-mortalz/coven-service/internal/cache"
	"github.com/magickal-mortalz/coven-service/internal/repositories"
	"github.com/magickal-mortalz/coven-service/internal/utils"
	"github.com/magickal-mortalz/coven-service/internal/validator"
)

// serviceManager wires the domain services over shared dependencies.
type serviceManager struct {
	memberService     MemberService
	curriculumService CurriculumService
	attendanceService AttendanceService
	grimoireService   GrimoireService
	dashboardService  DashboardService
}

// ServiceManagerDeps are the shared collaborators every service draws from.
type ServiceManagerDeps struct {
	Repo      repositories.Repository
	Recorder  audit.Recorder
	Validator *validator.Validator
	IDs       utils.IDGenerator
	Clock     utils.Clock
	Cache     *cache.CacheHelper
	Logger    *slog.Logger
}

// NewServiceManager builds all services. Dependencies default sensibly: a
// nil clock means wall time, a nil recorder means no auditing, a nil cache
// means no caching.
func NewServiceManager(deps ServiceManagerDeps) ServiceManager {
	if deps.Clock == nil {
		deps.Clock = utils.RealClock{}
	}
	if deps.IDs == nil {
		deps.IDs = utils.NewGenerator(deps.Clock)
	}
	if deps.Recorder == nil {
		deps.Recorder = audit.NopRecorder{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	curriculum := NewCurriculumService(deps.Repo, deps.Recorder, deps.IDs, deps.Clock, deps.Logger)
	members := NewMemberService(deps.Repo, curriculum, deps.Recorder, deps.Validator, deps.IDs, deps.Clock, deps.Logger)
	attendance := NewAttendanceService(deps.Repo, deps.Recorder, deps.Validator, deps.IDs, deps.Clock, deps.Logger)
	grimoire := NewGrimoireService(deps.Repo, deps.Recorder, deps.Validator, deps.IDs, deps.Clock, deps.Logger)
	dashboard := NewDashboardService(members, curriculum, attendance, grimoire, deps.Cache, deps.Logger)

	return &serviceManager{
		memberService:     members,
		curriculumService: curriculum,
		attendanceService: attendance,
		grimoireService:   grimoire,
		dashboardService:  dashboard,
	}
}

func (m *serviceManager) Member() MemberService         { return m.memberService }
func (m *serviceManager) Curriculum() CurriculumService { return m.curriculumService }
func (m *serviceManager) Attendance() AttendanceService { return m.attendanceService }
func (m *serviceManager) Grimoire() GrimoireService     { return m.grimoireService }
func (m *serviceManager) Dashboard() DashboardService   { return m.dashboardService }
