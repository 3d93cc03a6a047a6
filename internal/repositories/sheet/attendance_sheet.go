package sheet

import (
	"context"
	"fmt"

	"github.com/magickal-mortalz/coven-service/internal/models"
	"github.com/magickal-mortalz/coven-service/internal/tabular"
)

type attendanceSheet struct {
	store tabular.Store
}

func (r *attendanceSheet) Create(ctx context.Context, a *models.AttendanceRecord) error {
	row := attendanceSchema.Row(map[string]string{
		"ID":         a.ID,
		"MemberID":   a.MemberID,
		"EventType":  string(a.EventType),
		"EventName":  a.EventName,
		"EventDate":  formatTime(a.EventDate),
		"Attended":   formatBool(a.Attended),
		"Notes":      a.Notes,
		"RecordedBy": a.RecordedBy,
	})
	if err := r.store.Append(ctx, CollectionAttendance, row); err != nil {
		return fmt.Errorf("record attendance: %w", err)
	}
	return nil
}

func (r *attendanceSheet) ListByMember(ctx context.Context, memberID string) ([]*models.AttendanceRecord, error) {
	records, err := r.store.ReadAll(ctx, CollectionAttendance)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	result := make([]*models.AttendanceRecord, 0)
	for _, rec := range records {
		if rec["MemberID"] == memberID {
			result = append(result, attendanceFromRecord(rec))
		}
	}
	return result, nil
}

func attendanceFromRecord(rec tabular.Record) *models.AttendanceRecord {
	return &models.AttendanceRecord{
		ID:         rec["ID"],
		MemberID:   rec["MemberID"],
		EventType:  models.EventType(rec["EventType"]),
		EventName:  rec["EventName"],
		EventDate:  parseTime(rec["EventDate"]),
		Attended:   parseBool(rec["Attended"]),
		Notes:      rec["Notes"],
		RecordedBy: rec["RecordedBy"],
	}
}
