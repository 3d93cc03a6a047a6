package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/magickal-mortalz/coven-service/internal/cache"
)

// dashboardService composes the per-domain queries into one member
// dashboard. Policy: the member lookup is the gate — if it fails, the whole
// aggregate fails; every other sub-query degrades to an empty section so a
// broken collection cannot blank the entire dashboard.
type dashboardService struct {
	members    MemberService
	curriculum CurriculumService
	attendance AttendanceService
	grimoire   GrimoireService
	cache      *cache.CacheHelper
	logger     *slog.Logger
}

func NewDashboardService(
	members MemberService,
	curriculum CurriculumService,
	attendance AttendanceService,
	grimoire GrimoireService,
	cacheHelper *cache.CacheHelper,
	logger *slog.Logger,
) DashboardService {
	return &dashboardService{
		members:    members,
		curriculum: curriculum,
		attendance: attendance,
		grimoire:   grimoire,
		cache:      cacheHelper,
		logger:     logger,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, memberID string) (*DashboardResponse, error) {
	var cached DashboardResponse
	if err := s.cache.Get(ctx, memberID, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrCacheNotAvailable) && !errors.Is(err, cache.ErrCacheNotFound) {
		s.logger.WarnContext(ctx, "dashboard cache read failed", "member_id", memberID, "error", err)
	}

	member, err := s.members.Get(ctx, memberID)
	if err != nil {
		return nil, err
	}

	response := &DashboardResponse{
		Member:          member,
		UpcomingSabbats: s.attendance.UpcomingSabbats(ctx),
	}

	if progress, err := s.curriculum.GetProgress(ctx, memberID); err != nil {
		s.logger.WarnContext(ctx, "dashboard progress query failed", "member_id", memberID, "error", err)
		response.Progress = &ProgressResponse{}
	} else {
		response.Progress = progress
	}

	if attendance, err := s.attendance.GetMemberAttendance(ctx, memberID); err != nil {
		s.logger.WarnContext(ctx, "dashboard attendance query failed", "member_id", memberID, "error", err)
		response.Attendance = &AttendanceResponse{}
	} else {
		response.Attendance = attendance
	}

	if grimoire, err := s.grimoire.List(ctx, memberID, ""); err != nil {
		s.logger.WarnContext(ctx, "dashboard grimoire query failed", "member_id", memberID, "error", err)
		response.Grimoire = &GrimoireResponse{}
	} else {
		response.Grimoire = grimoire
	}

	// Short TTL instead of invalidation: a member's own writes show up
	// within a minute, which the dashboard tolerates.
	if err := s.cache.Set(ctx, memberID, response, cache.DashboardCacheConfig.TTL); err != nil &&
		!errors.Is(err, cache.ErrCacheNotAvailable) {
		s.logger.WarnContext(ctx, "dashboard cache write failed", "member_id", memberID, "error", err)
	}

	return response, nil
}
