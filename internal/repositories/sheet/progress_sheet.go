package sheet

import (
	"context"
	"errors"
	"fmt"

	"github.com/magickal-mortalz/coven-service/internal/models"
	"github.com/magickal-mortalz/coven-service/internal/repositories"
	"github.com/magickal-mortalz/coven-service/internal/tabular"
)

type progressSheet struct {
	store tabular.Store
}

func (r *progressSheet) CreateBatch(ctx context.Context, records []*models.ProgressRecord) error {
	for _, p := range records {
		row := progressSchema.Row(map[string]string{
			"ID":                 p.ID,
			"MemberID":           p.MemberID,
			"Year":               formatInt(p.Year),
			"Module":             p.Module,
			"Status":             string(p.Status),
			"StartDate":          formatTimePtr(p.StartDate),
			"CompletedDate":      formatTimePtr(p.CompletedDate),
			"Notes":              p.Notes,
			"InstructorApproval": p.InstructorApproval,
		})
		if err := r.store.Append(ctx, CollectionProgress, row); err != nil {
			return fmt.Errorf("create progress record %s: %w", p.ID, err)
		}
	}
	return nil
}

func (r *progressSheet) GetByID(ctx context.Context, id string) (*models.ProgressRecord, error) {
	records, err := r.store.ReadAll(ctx, CollectionProgress)
	if err != nil {
		return nil, fmt.Errorf("get progress record: %w", err)
	}
	for _, rec := range records {
		if rec["ID"] == id {
			return progressFromRecord(rec), nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *progressSheet) ListByMember(ctx context.Context, memberID string) ([]*models.ProgressRecord, error) {
	records, err := r.store.ReadAll(ctx, CollectionProgress)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	result := make([]*models.ProgressRecord, 0)
	for _, rec := range records {
		if rec["MemberID"] == memberID {
			result = append(result, progressFromRecord(rec))
		}
	}
	return result, nil
}

func (r *progressSheet) HasYear(ctx context.Context, memberID string, year int) (bool, error) {
	records, err := r.store.ReadAll(ctx, CollectionProgress)
	if err != nil {
		return false, fmt.Errorf("check seeded year: %w", err)
	}
	want := formatInt(year)
	for _, rec := range records {
		if rec["MemberID"] == memberID && rec["Year"] == want {
			return true, nil
		}
	}
	return false, nil
}

func (r *progressSheet) Update(ctx context.Context, id string, patch repositories.ProgressPatch) error {
	fields := map[string]string{}
	if patch.Status != nil {
		fields["Status"] = string(*patch.Status)
	}
	if patch.StartDate != nil {
		fields["StartDate"] = formatTime(*patch.StartDate)
	}
	if patch.CompletedDate != nil {
		fields["CompletedDate"] = formatTime(*patch.CompletedDate)
	}
	if patch.Notes != nil {
		fields["Notes"] = *patch.Notes
	}
	if patch.InstructorApproval != nil {
		fields["InstructorApproval"] = *patch.InstructorApproval
	}
	if len(fields) == 0 {
		return nil
	}

	err := r.store.UpdateByKey(ctx, CollectionProgress, idColumn, id, fields)
	if errors.Is(err, tabular.ErrRowNotFound) {
		return repositories.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update progress record: %w", err)
	}
	return nil
}

func progressFromRecord(rec tabular.Record) *models.ProgressRecord {
	return &models.ProgressRecord{
		ID:                 rec["ID"],
		MemberID:           rec["MemberID"],
		Year:               parseInt(rec["Year"]),
		Module:             rec["Module"],
		Status:             models.ModuleStatus(rec["Status"]),
		StartDate:          parseTimePtr(rec["StartDate"]),
		CompletedDate:      parseTimePtr(rec["CompletedDate"]),
		Notes:              rec["Notes"],
		InstructorApproval: rec["InstructorApproval"],
	}
}
