package repositories

import (
	"context"
	"time"

	"github.com/magickal-mortalz/coven-service/internal/models"
)

// ===== PATCH STRUCTS =====
// Nil pointer means "leave the column untouched". Patches are the typed
// counterpart of the old free-form field maps; anything not listed here
// simply cannot be written.

type MemberPatch struct {
	Email         *string        `json:"email"`
	CraftName     *string        `json:"craft_name"`
	RealName      *string        `json:"real_name"`
	CurrentDegree *models.Degree `json:"current_degree"`
	Avatar        *string        `json:"avatar"`
	Bio           *string        `json:"bio"`
	IsActive      *bool          `json:"is_active"`
	LastLogin     *time.Time     `json:"last_login"`
}

type ProgressPatch struct {
	Status             *models.ModuleStatus `json:"status"`
	StartDate          *time.Time           `json:"start_date"`
	CompletedDate      *time.Time           `json:"completed_date"`
	Notes              *string              `json:"notes"`
	InstructorApproval *string              `json:"instructor_approval"`
}

type GrimoirePatch struct {
	EntryType    *string    `json:"entry_type"`
	Title        *string    `json:"title"`
	Content      *string    `json:"content"`
	Tags         *string    `json:"tags"`
	IsPrivate    *bool      `json:"is_private"`
	Category     *string    `json:"category"`
	ModifiedDate *time.Time `json:"modified_date"`
}

// ===== REPOSITORY INTERFACES =====

type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	GetByID(ctx context.Context, id string) (*models.Member, error)
	ListActive(ctx context.Context) ([]*models.Member, error)
	Update(ctx context.Context, id string, patch MemberPatch) error
}

type ProgressRepository interface {
	CreateBatch(ctx context.Context, records []*models.ProgressRecord) error
	GetByID(ctx context.Context, id string) (*models.ProgressRecord, error)
	ListByMember(ctx context.Context, memberID string) ([]*models.ProgressRecord, error)
	// HasYear reports whether any progress rows exist for the member/year
	// pair. It is the guard that makes year seeding idempotent.
	HasYear(ctx context.Context, memberID string, year int) (bool, error)
	Update(ctx context.Context, id string, patch ProgressPatch) error
}

type AttendanceRepository interface {
	Create(ctx context.Context, record *models.AttendanceRecord) error
	ListByMember(ctx context.Context, memberID string) ([]*models.AttendanceRecord, error)
}

type GrimoireRepository interface {
	Create(ctx context.Context, entry *models.GrimoireEntry) error
	GetByID(ctx context.Context, id string) (*models.GrimoireEntry, error)
	ListByMember(ctx context.Context, memberID string) ([]*models.GrimoireEntry, error)
	Update(ctx context.Context, id string, patch GrimoirePatch) error
	Delete(ctx context.Context, id string) error
}

// ActivityRepository is append-only: entries are written by the audit sink
// and never mutated or deleted.
type ActivityRepository interface {
	Append(ctx context.Context, entry *models.ActivityLogEntry) error
}

// Repository is the umbrella over all per-entity repositories.
type Repository interface {
	Member() MemberRepository
	Progress() ProgressRepository
	Attendance() AttendanceRepository
	Grimoire() GrimoireRepository
	Activity() ActivityRepository
}

// ErrNotFound is returned by keyed repository reads when the record is
// absent. It is distinct from backend failures, which wrap
// tabular.ErrUnavailable.
type notFoundError string

func (e notFoundError) Error() string { return string(e) }

// ErrNotFound sentinel shared by all repositories.
const ErrNotFound = notFoundError("record not found")
