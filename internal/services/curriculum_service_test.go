package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magickal-mortalz/coven-service/internal/models"
)

func createTestMember(t *testing.T, manager ServiceManager) *models.Member {
	t.Helper()
	member, err := manager.Member().Create(context.Background(), &CreateMemberRequest{
		Email:     "hazel@coven.example",
		CraftName: "Hazel",
	})
	require.NoError(t, err)
	return member
}

func TestSeedYearIdempotent(t *testing.T) {
	ctx := context.Background()
	manager, _ := newTestManager(t, nil)
	member := createTestMember(t, manager)

	// Year 1 was seeded on creation; re-seeding must not duplicate rows.
	require.NoError(t, manager.Curriculum().SeedYear(ctx, member.ID, 1))

	progress, err := manager.Curriculum().GetProgress(ctx, member.ID)
	require.NoError(t, err)
	year1, _ := models.CurriculumForYear(1)
	assert.Equal(t, len(year1.Modules), progress.Stats.TotalModules)
	assert.Equal(t, 1, progress.Stats.InProgress)
}

func TestSeedYearUnknown(t *testing.T) {
	ctx := context.Background()
	manager, _ := newTestManager(t, nil)
	member := createTestMember(t, manager)

	err := manager.Curriculum().SeedYear(ctx, member.ID, 7)
	assert.True(t, errors.Is(err, ErrUnknownYear))
}

func TestAdvanceSeedsNextYear(t *testing.T) {
	ctx := context.Background()
	manager, recorder := newTestManager(t, nil)
	member := createTestMember(t, manager)

	result, err := manager.Curriculum().Advance(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DegreeFirst, result.NewDegree)
	assert.Equal(t, 2, result.Year)

	fetched, err := manager.Member().Get(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DegreeFirst, fetched.CurrentDegree)

	progress, err := manager.Curriculum().GetProgress(ctx, member.ID)
	require.NoError(t, err)
	year1, _ := models.CurriculumForYear(1)
	year2, _ := models.CurriculumForYear(2)
	assert.Equal(t, len(year1.Modules)+len(year2.Modules), progress.Stats.TotalModules)
	require.Len(t, progress.ByYear[2], len(year2.Modules))

	// Year 1 rows are untouched by the promotion.
	assert.Equal(t, models.StatusInProgress, progress.ByYear[1][0].Status)

	assert.Contains(t, recorder.actions(), models.ActionDegreeAdvanced)
}

func TestAdvanceToTerminalDegree(t *testing.T) {
	ctx := context.Background()
	manager, _ := newTestManager(t, nil)
	member := createTestMember(t, manager)

	degrees := []models.Degree{
		models.DegreeFirst,
		models.DegreeSecond,
		models.DegreeThird,
		models.DegreeHighPriest,
	}
	for _, want := range degrees {
		result, err := manager.Curriculum().Advance(ctx, member.ID)
		require.NoError(t, err)
		assert.Equal(t, want, result.NewDegree)
	}

	// No fifth year exists: the terminal promotion seeds nothing.
	progress, err := manager.Curriculum().GetProgress(ctx, member.ID)
	require.NoError(t, err)
	total := 0
	for year := 1; year <= 4; year++ {
		catalog, _ := models.CurriculumForYear(year)
		total += len(catalog.Modules)
	}
	assert.Equal(t, total, progress.Stats.TotalModules)

	_, err = manager.Curriculum().Advance(ctx, member.ID)
	assert.True(t, errors.Is(err, ErrAlreadyAtMaxDegree))
}

func TestAdvanceUnknownMember(t *testing.T) {
	ctx := context.Background()
	manager, _ := newTestManager(t, nil)

	_, err := manager.Curriculum().Advance(ctx, "MEM-MISSING")
	assert.True(t, errors.Is(err, ErrMemberNotFound))
}

func TestUpdateModuleStatusStampsDates(t *testing.T) {
	ctx := context.Background()
	manager, _ := newTestManager(t, nil)
	member := createTestMember(t, manager)

	progress, err := manager.Curriculum().GetProgress(ctx, member.ID)
	require.NoError(t, err)
	record := progress.ByYear[1][1]
	assert.Equal(t, models.StatusNotStarted, record.Status)
	assert.Nil(t, record.StartDate)

	require.NoError(t, manager.Curriculum().UpdateModuleStatus(ctx, record.ID, models.StatusInProgress))

	progress, err = manager.Curriculum().GetProgress(ctx, member.ID)
	require.NoError(t, err)
	record = progress.ByYear[1][1]
	assert.Equal(t, models.StatusInProgress, record.Status)
	require.NotNil(t, record.StartDate)
	assert.Nil(t, record.CompletedDate)

	require.NoError(t, manager.Curriculum().UpdateModuleStatus(ctx, record.ID, models.StatusCompleted))

	progress, err = manager.Curriculum().GetProgress(ctx, member.ID)
	require.NoError(t, err)
	record = progress.ByYear[1][1]
	assert.Equal(t, models.StatusCompleted, record.Status)
	require.NotNil(t, record.CompletedDate)

	// Backward moves keep the stamped dates.
	require.NoError(t, manager.Curriculum().UpdateModuleStatus(ctx, record.ID, models.StatusNotStarted))
	progress, err = manager.Curriculum().GetProgress(ctx, member.ID)
	require.NoError(t, err)
	record = progress.ByYear[1][1]
	assert.Equal(t, models.StatusNotStarted, record.Status)
	assert.NotNil(t, record.StartDate)
	assert.NotNil(t, record.CompletedDate)
}

func TestUpdateModuleStatusInvalid(t *testing.T) {
	ctx := context.Background()
	manager, _ := newTestManager(t, nil)

	err := manager.Curriculum().UpdateModuleStatus(ctx, "PRG-ANY", "Transcended")
	assert.True(t, errors.Is(err, ErrInvalidStatus))
}

func TestUpdateModuleStatusNotFound(t *testing.T) {
	ctx := context.Background()
	manager, _ := newTestManager(t, nil)

	err := manager.Curriculum().UpdateModuleStatus(ctx, "PRG-MISSING", models.StatusCompleted)
	assert.True(t, errors.Is(err, ErrProgressNotFound))
}

func TestGetProgressPercent(t *testing.T) {
	ctx := context.Background()
	manager, _ := newTestManager(t, nil)
	member := createTestMember(t, manager)

	progress, err := manager.Curriculum().GetProgress(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, progress.Stats.PercentComplete)

	first := progress.ByYear[1][0]
	require.NoError(t, manager.Curriculum().UpdateModuleStatus(ctx, first.ID, models.StatusCompleted))

	progress, err = manager.Curriculum().GetProgress(ctx, member.ID)
	require.NoError(t, err)
	// 1 of 8 modules, rounded.
	assert.Equal(t, 13, progress.Stats.PercentComplete)
}

func TestGetProgressEmpty(t *testing.T) {
	ctx := context.Background()
	manager, _ := newTestManager(t, nil)

	progress, err := manager.Curriculum().GetProgress(ctx, "MEM-NOBODY")
	require.NoError(t, err)
	assert.Equal(t, 0, progress.Stats.TotalModules)
	assert.Equal(t, 0, progress.Stats.PercentComplete)
	assert.Empty(t, progress.ByYear)
}
