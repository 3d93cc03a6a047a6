package sheet

import (
	"context"
	"fmt"

	"github.com/magickal-mortalz/coven-service/internal/repositories"
	"github.com/magickal-mortalz/coven-service/internal/tabular"
)

// SheetRepository implements the main Repository interface over a tabular
// store.
type SheetRepository struct {
	store tabular.Store

	member     repositories.MemberRepository
	progress   repositories.ProgressRepository
	attendance repositories.AttendanceRepository
	grimoire   repositories.GrimoireRepository
	activity   repositories.ActivityRepository
}

// NewSheetRepository creates the repository manager with all sub-repositories.
func NewSheetRepository(store tabular.Store) *SheetRepository {
	return &SheetRepository{
		store:      store,
		member:     &memberSheet{store: store},
		progress:   &progressSheet{store: store},
		attendance: &attendanceSheet{store: store},
		grimoire:   &grimoireSheet{store: store},
		activity:   &activitySheet{store: store},
	}
}

// Initialize creates any missing collections with their header rows.
func (r *SheetRepository) Initialize(ctx context.Context) error {
	if err := r.store.EnsureCollections(ctx, Schemas()); err != nil {
		return fmt.Errorf("ensure collections: %w", err)
	}
	return nil
}

func (r *SheetRepository) Member() repositories.MemberRepository         { return r.member }
func (r *SheetRepository) Progress() repositories.ProgressRepository     { return r.progress }
func (r *SheetRepository) Attendance() repositories.AttendanceRepository { return r.attendance }
func (r *SheetRepository) Grimoire() repositories.GrimoireRepository     { return r.grimoire }
func (r *SheetRepository) Activity() repositories.ActivityRepository     { return r.activity }
