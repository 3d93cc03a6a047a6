package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magickal-mortalz/coven-service/internal/models"
	"github.com/magickal-mortalz/coven-service/internal/validator"
)

func TestCreateMemberDefaults(t *testing.T) {
	ctx := context.Background()
	manager, recorder := newTestManager(t, nil)

	member, err := manager.Member().Create(ctx, &CreateMemberRequest{
		Email:     "willow@coven.example",
		CraftName: "Willow",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(member.ID, "MEM-"))
	assert.Equal(t, models.DegreeNeophyte, member.CurrentDegree)
	assert.Equal(t, models.DefaultAvatar, member.Avatar)
	assert.True(t, member.IsActive)
	assert.True(t, member.JoinDate.Equal(testTime))

	// Round trip through the store.
	fetched, err := manager.Member().Get(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, "Willow", fetched.CraftName)
	assert.Equal(t, models.DegreeNeophyte, fetched.CurrentDegree)
	assert.True(t, fetched.JoinDate.Equal(testTime))

	assert.Contains(t, recorder.actions(), models.ActionMemberCreated)
}

func TestCreateMemberSeedsFirstYear(t *testing.T) {
	ctx := context.Background()
	manager, _ := newTestManager(t, nil)

	member, err := manager.Member().Create(ctx, &CreateMemberRequest{
		Email:     "rowan@coven.example",
		CraftName: "Rowan",
	})
	require.NoError(t, err)

	progress, err := manager.Curriculum().GetProgress(ctx, member.ID)
	require.NoError(t, err)

	year1, _ := models.CurriculumForYear(1)
	assert.Equal(t, len(year1.Modules), progress.Stats.TotalModules)
	assert.Equal(t, 1, progress.Stats.InProgress)
	assert.Equal(t, len(year1.Modules)-1, progress.Stats.NotStarted)
	assert.Equal(t, 0, progress.Stats.Completed)

	first := progress.ByYear[1][0]
	assert.Equal(t, models.StatusInProgress, first.Status)
	require.NotNil(t, first.StartDate)
}

func TestCreateMemberValidation(t *testing.T) {
	ctx := context.Background()
	manager, _ := newTestManager(t, nil)

	_, err := manager.Member().Create(ctx, &CreateMemberRequest{CraftName: "Nameless"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	_, err = manager.Member().Create(ctx, &CreateMemberRequest{
		Email: "not-an-email", CraftName: "Nameless",
	})
	assert.ErrorAs(t, err, &verrs)
}

func TestGetMemberNotFound(t *testing.T) {
	ctx := context.Background()
	manager, _ := newTestManager(t, nil)

	_, err := manager.Member().Get(ctx, "MEM-MISSING")
	assert.True(t, errors.Is(err, ErrMemberNotFound))
}

func TestUpdateMember(t *testing.T) {
	ctx := context.Background()
	manager, recorder := newTestManager(t, nil)

	member, err := manager.Member().Create(ctx, &CreateMemberRequest{
		Email:     "ivy@coven.example",
		CraftName: "Ivy",
	})
	require.NoError(t, err)

	bio := "Keeper of the eastern watchtower"
	require.NoError(t, manager.Member().Update(ctx, member.ID, &UpdateMemberRequest{Bio: &bio}))

	fetched, err := manager.Member().Get(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, bio, fetched.Bio)
	assert.Equal(t, "Ivy", fetched.CraftName)

	assert.Contains(t, recorder.actions(), models.ActionMemberUpdated)
}

func TestUpdateMemberNotFound(t *testing.T) {
	ctx := context.Background()
	manager, _ := newTestManager(t, nil)

	bio := "nobody"
	err := manager.Member().Update(ctx, "MEM-MISSING", &UpdateMemberRequest{Bio: &bio})
	assert.True(t, errors.Is(err, ErrMemberNotFound))
}

func TestListActiveExcludesDeactivated(t *testing.T) {
	ctx := context.Background()
	manager, _ := newTestManager(t, nil)

	active, err := manager.Member().Create(ctx, &CreateMemberRequest{
		Email: "ash@coven.example", CraftName: "Ash",
	})
	require.NoError(t, err)
	departed, err := manager.Member().Create(ctx, &CreateMemberRequest{
		Email: "thorn@coven.example", CraftName: "Thorn",
	})
	require.NoError(t, err)

	inactive := false
	require.NoError(t, manager.Member().Update(ctx, departed.ID, &UpdateMemberRequest{IsActive: &inactive}))

	members, err := manager.Member().ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, active.ID, members[0].ID)
}
