package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/magickal-mortalz/coven-service/internal/audit"
	"github.com/magickal-mortalz/coven-service/internal/models"
	"github.com/magickal-mortalz/coven-service/internal/repositories"
	"github.com/magickal-mortalz/coven-service/internal/utils"
)

type curriculumService struct {
	repo     repositories.Repository
	recorder audit.Recorder
	ids      utils.IDGenerator
	clock    utils.Clock
	logger   *slog.Logger
}

func NewCurriculumService(
	repo repositories.Repository,
	recorder audit.Recorder,
	ids utils.IDGenerator,
	clock utils.Clock,
	logger *slog.Logger,
) CurriculumService {
	return &curriculumService{
		repo:     repo,
		recorder: recorder,
		ids:      ids,
		clock:    clock,
		logger:   logger,
	}
}

// SeedYear appends one progress row per module in the year's catalog. The
// first module starts In Progress with a start date; the rest are Not
// Started. Re-seeding an already seeded year is a no-op, which is what
// makes Advance safe to retry after a crash between its two steps.
func (s *curriculumService) SeedYear(ctx context.Context, memberID string, year int) error {
	catalog, ok := models.CurriculumForYear(year)
	if !ok {
		return ErrUnknownYear
	}

	seeded, err := s.repo.Progress().HasYear(ctx, memberID, year)
	if err != nil {
		return fmt.Errorf("seed year %d: %w", year, err)
	}
	if seeded {
		s.logger.InfoContext(ctx, "year already seeded, skipping",
			"member_id", memberID, "year", year)
		return nil
	}

	now := s.clock.Now()
	records := make([]*models.ProgressRecord, 0, len(catalog.Modules))
	for i, module := range catalog.Modules {
		record := &models.ProgressRecord{
			ID:       s.ids.NewID("PRG"),
			MemberID: memberID,
			Year:     year,
			Module:   module,
			Status:   models.StatusNotStarted,
		}
		if i == 0 {
			record.Status = models.StatusInProgress
			record.StartDate = &now
		}
		records = append(records, record)
	}

	if err := s.repo.Progress().CreateBatch(ctx, records); err != nil {
		return fmt.Errorf("seed year %d: %w", year, err)
	}
	s.logger.InfoContext(ctx, "curriculum year seeded",
		"member_id", memberID, "year", year, "modules", len(records))
	return nil
}

// Advance seeds the next year's modules, then promotes the member's degree.
// The two steps have no shared transaction: a failure in between leaves the
// year seeded and the degree unchanged, and rerunning Advance completes the
// promotion without duplicating rows.
func (s *curriculumService) Advance(ctx context.Context, memberID string) (*AdvanceResponse, error) {
	member, err := s.repo.Member().GetByID(ctx, memberID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("advance member: %w", err)
	}

	nextDegree, ok := member.CurrentDegree.Next()
	if !ok {
		return nil, ErrAlreadyAtMaxDegree
	}

	// The terminal degree has no curriculum year of its own, so there is
	// nothing to seed when a 3rd Degree Initiate becomes High Priest/ess.
	nextYear := nextDegree.Year()
	if nextYear > 0 {
		if err := s.SeedYear(ctx, memberID, nextYear); err != nil {
			return nil, err
		}
	}

	err = s.repo.Member().Update(ctx, memberID, repositories.MemberPatch{
		CurrentDegree: &nextDegree,
	})
	if err != nil {
		return nil, fmt.Errorf("promote member: %w", err)
	}

	s.recorder.Record(ctx, memberID, models.ActionDegreeAdvanced,
		fmt.Sprintf("Advanced to %s", nextDegree))
	s.logger.InfoContext(ctx, "member advanced",
		"member_id", memberID, "new_degree", nextDegree, "year", nextYear)

	return &AdvanceResponse{NewDegree: nextDegree, Year: nextYear}, nil
}

// UpdateModuleStatus sets the status unconditionally: transitions are
// permissive in any direction, matching how instructors actually use the
// tracker. Moving to In Progress stamps a start date and moving to
// Completed stamps a completion date; a backward move clears neither.
func (s *curriculumService) UpdateModuleStatus(ctx context.Context, progressID string, status models.ModuleStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	record, err := s.repo.Progress().GetByID(ctx, progressID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrProgressNotFound
	}
	if err != nil {
		return fmt.Errorf("update module status: %w", err)
	}

	now := s.clock.Now()
	patch := repositories.ProgressPatch{Status: &status}
	switch status {
	case models.StatusInProgress:
		patch.StartDate = &now
	case models.StatusCompleted:
		patch.CompletedDate = &now
	}

	if err := s.repo.Progress().Update(ctx, progressID, patch); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrProgressNotFound
		}
		return fmt.Errorf("update module status: %w", err)
	}

	s.recorder.Record(ctx, record.MemberID, models.ActionModuleStatusUpdated,
		fmt.Sprintf("%s: %s", record.Module, status))
	return nil
}

func (s *curriculumService) GetProgress(ctx context.Context, memberID string) (*ProgressResponse, error) {
	records, err := s.repo.Progress().ListByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}

	stats := ProgressStats{TotalModules: len(records)}
	byYear := make(map[int][]*models.ProgressRecord)
	for _, r := range records {
		switch r.Status {
		case models.StatusCompleted:
			stats.Completed++
		case models.StatusInProgress:
			stats.InProgress++
		default:
			stats.NotStarted++
		}
		byYear[r.Year] = append(byYear[r.Year], r)
	}
	if stats.TotalModules > 0 {
		stats.PercentComplete = int(math.Round(100 * float64(stats.Completed) / float64(stats.TotalModules)))
	}

	return &ProgressResponse{
		Stats:      stats,
		ByYear:     byYear,
		Curriculum: models.Curriculum,
	}, nil
}
