package services

import (
	"context"

	"github.com/magickal-mortalz/coven-service/internal/models"
	"github.com/magickal-mortalz/coven-service/internal/validator"
)

// ===== REQUEST DTOs =====
// Request shapes live with the validator; services alias them.

type CreateMemberRequest = validator.CreateMemberRequest
type UpdateMemberRequest = validator.UpdateMemberRequest
type UpdateModuleStatusRequest = validator.UpdateModuleStatusRequest
type RecordAttendanceRequest = validator.RecordAttendanceRequest
type CreateGrimoireEntryRequest = validator.CreateGrimoireEntryRequest
type UpdateGrimoireEntryRequest = validator.UpdateGrimoireEntryRequest

// ===== RESPONSE DTOs =====

type ProgressStats struct {
	TotalModules    int `json:"total_modules"`
	Completed       int `json:"completed"`
	InProgress      int `json:"in_progress"`
	NotStarted      int `json:"not_started"`
	PercentComplete int `json:"percent_complete"`
}

type ProgressResponse struct {
	Stats      ProgressStats                    `json:"stats"`
	ByYear     map[int][]*models.ProgressRecord `json:"by_year"`
	Curriculum []models.CurriculumYear          `json:"curriculum"`
}

type AdvanceResponse struct {
	NewDegree models.Degree `json:"new_degree"`
	Year      int           `json:"year"`
}

type EventTypeStats struct {
	Attended int `json:"attended"`
	Total    int `json:"total"`
}

type AttendanceStats struct {
	TotalEvents int                       `json:"total_events"`
	ByType      map[string]EventTypeStats `json:"by_type"`
}

type AttendanceResponse struct {
	Records []*models.AttendanceRecord `json:"records"`
	Stats   AttendanceStats            `json:"stats"`
	Sabbats []models.Sabbat            `json:"sabbats"`
}

type GrimoireStats struct {
	TotalEntries int            `json:"total_entries"`
	ByCategory   map[string]int `json:"by_category"`
}

type GrimoireResponse struct {
	Entries    []*models.GrimoireEntry   `json:"entries"`
	Stats      GrimoireStats             `json:"stats"`
	Categories []models.GrimoireCategory `json:"categories"`
}

type DashboardResponse struct {
	Member          *models.Member          `json:"member"`
	Progress        *ProgressResponse       `json:"progress"`
	Attendance      *AttendanceResponse     `json:"attendance"`
	Grimoire        *GrimoireResponse       `json:"grimoire"`
	UpcomingSabbats []models.UpcomingSabbat `json:"upcoming_sabbats"`
}

// ===== SERVICE INTERFACES =====

type MemberService interface {
	Create(ctx context.Context, req *CreateMemberRequest) (*models.Member, error)
	Get(ctx context.Context, id string) (*models.Member, error)
	ListActive(ctx context.Context) ([]*models.Member, error)
	Update(ctx context.Context, id string, req *UpdateMemberRequest) error
}

type CurriculumService interface {
	// SeedYear creates the year's module rows for a member. Idempotent:
	// re-seeding an already seeded year is a no-op.
	SeedYear(ctx context.Context, memberID string, year int) error
	Advance(ctx context.Context, memberID string) (*AdvanceResponse, error)
	UpdateModuleStatus(ctx context.Context, progressID string, status models.ModuleStatus) error
	GetProgress(ctx context.Context, memberID string) (*ProgressResponse, error)
}

type AttendanceService interface {
	Record(ctx context.Context, memberID string, req *RecordAttendanceRequest) (*models.AttendanceRecord, error)
	GetMemberAttendance(ctx context.Context, memberID string) (*AttendanceResponse, error)
	UpcomingSabbats(ctx context.Context) []models.UpcomingSabbat
}

type GrimoireService interface {
	Create(ctx context.Context, memberID string, req *CreateGrimoireEntryRequest) (*models.GrimoireEntry, error)
	List(ctx context.Context, memberID, category string) (*GrimoireResponse, error)
	Update(ctx context.Context, entryID string, req *UpdateGrimoireEntryRequest) error
	Delete(ctx context.Context, entryID string) error
}

type DashboardService interface {
	GetDashboard(ctx context.Context, memberID string) (*DashboardResponse, error)
}

// ServiceManager wires and exposes all domain services.
type ServiceManager interface {
	Member() MemberService
	Curriculum() CurriculumService
	Attendance() AttendanceService
	Grimoire() GrimoireService
	Dashboard() DashboardService
}
