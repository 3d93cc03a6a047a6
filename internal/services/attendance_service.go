package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/magickal-mortalz/coven-service/internal/audit"
	"github.com/magickal-mortalz/coven-service/internal/models"
	"github.com/magickal-mortalz/coven-service/internal/repositories"
	"github.com/magickal-mortalz/coven-service/internal/utils"
	"github.com/magickal-mortalz/coven-service/internal/validator"
)

type attendanceService struct {
	repo      repositories.Repository
	recorder  audit.Recorder
	validator *validator.Validator
	ids       utils.IDGenerator
	clock     utils.Clock
	logger    *slog.Logger
}

func NewAttendanceService(
	repo repositories.Repository,
	recorder audit.Recorder,
	v *validator.Validator,
	ids utils.IDGenerator,
	clock utils.Clock,
	logger *slog.Logger,
) AttendanceService {
	return &attendanceService{
		repo:      repo,
		recorder:  recorder,
		validator: v,
		ids:       ids,
		clock:     clock,
		logger:    logger,
	}
}

func (s *attendanceService) Record(ctx context.Context, memberID string, req *RecordAttendanceRequest) (*models.AttendanceRecord, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, errs
	}

	record := &models.AttendanceRecord{
		ID:         s.ids.NewID("ATT"),
		MemberID:   memberID,
		EventType:  models.EventType(req.EventType),
		EventName:  req.EventName,
		EventDate:  s.clock.Now(),
		Attended:   true,
		Notes:      req.Notes,
		RecordedBy: req.RecordedBy,
	}
	if record.EventType == "" {
		record.EventType = models.EventSabbat
	}
	if record.RecordedBy == "" {
		record.RecordedBy = models.RecordedBySelf
	}
	if req.Attended != nil {
		record.Attended = *req.Attended
	}
	if req.EventDate != "" {
		if t, ok := utils.ParseDateTime(req.EventDate); ok {
			record.EventDate = t
		}
	}

	if err := s.repo.Attendance().Create(ctx, record); err != nil {
		return nil, fmt.Errorf("record attendance: %w", err)
	}

	presence := "Present"
	if !record.Attended {
		presence = "Absent"
	}
	s.recorder.Record(ctx, memberID, models.ActionAttendanceRecorded,
		fmt.Sprintf("%s: %s", record.EventName, presence))
	return record, nil
}

func (s *attendanceService) GetMemberAttendance(ctx context.Context, memberID string) (*AttendanceResponse, error) {
	records, err := s.repo.Attendance().ListByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("get attendance: %w", err)
	}

	stats := AttendanceStats{
		TotalEvents: len(records),
		ByType:      make(map[string]EventTypeStats),
	}
	for _, r := range records {
		ts := stats.ByType[string(r.EventType)]
		ts.Total++
		if r.Attended {
			ts.Attended++
		}
		stats.ByType[string(r.EventType)] = ts
	}

	return &AttendanceResponse{
		Records: records,
		Stats:   stats,
		Sabbats: models.Sabbats,
	}, nil
}

// UpcomingSabbats projects the fixed annual calendar onto the current and
// next year and keeps dates within the next three months. Evaluating both
// years is what makes the December→January wraparound come out right.
func (s *attendanceService) UpcomingSabbats(_ context.Context) []models.UpcomingSabbat {
	now := s.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	horizon := today.AddDate(0, 3, 0)

	upcoming := make([]models.UpcomingSabbat, 0, len(models.Sabbats))
	for _, sabbat := range models.Sabbats {
		month, day, ok := parseMonthDay(sabbat.Date)
		if !ok {
			continue
		}
		for _, year := range []int{today.Year(), today.Year() + 1} {
			date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
			if date.Before(today) || date.After(horizon) {
				continue
			}
			upcoming = append(upcoming, models.UpcomingSabbat{
				Name:      sabbat.Name,
				Date:      sabbat.Date,
				Emoji:     sabbat.Emoji,
				FullDate:  date,
				DaysUntil: int(date.Sub(today).Hours() / 24),
			})
		}
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].FullDate.Before(upcoming[j].FullDate)
	})
	return upcoming
}

func parseMonthDay(s string) (month, day int, ok bool) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	month, err1 := strconv.Atoi(parts[0])
	day, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, 0, false
	}
	return month, day, true
}
