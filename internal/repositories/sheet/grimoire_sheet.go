package sheet

import (
	"context"
	"errors"
	"fmt"

	"github.com/magickal-mortalz/coven-service/internal/models"
	"github.com/magickal-mortalz/coven-service/internal/repositories"
	"github.com/magickal-mortalz/coven-service/internal/tabular"
)

type grimoireSheet struct {
	store tabular.Store
}

func (r *grimoireSheet) Create(ctx context.Context, e *models.GrimoireEntry) error {
	row := grimoireSchema.Row(map[string]string{
		"ID":           e.ID,
		"MemberID":     e.MemberID,
		"EntryType":    e.EntryType,
		"Title":        e.Title,
		"Content":      e.Content,
		"Tags":         e.Tags,
		"CreatedDate":  formatTime(e.CreatedDate),
		"ModifiedDate": formatTime(e.ModifiedDate),
		"IsPrivate":    formatBool(e.IsPrivate),
		"Category":     e.Category,
	})
	if err := r.store.Append(ctx, CollectionGrimoire, row); err != nil {
		return fmt.Errorf("create grimoire entry: %w", err)
	}
	return nil
}

func (r *grimoireSheet) GetByID(ctx context.Context, id string) (*models.GrimoireEntry, error) {
	records, err := r.store.ReadAll(ctx, CollectionGrimoire)
	if err != nil {
		return nil, fmt.Errorf("get grimoire entry: %w", err)
	}
	for _, rec := range records {
		if rec["ID"] == id {
			return grimoireFromRecord(rec), nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *grimoireSheet) ListByMember(ctx context.Context, memberID string) ([]*models.GrimoireEntry, error) {
	records, err := r.store.ReadAll(ctx, CollectionGrimoire)
	if err != nil {
		return nil, fmt.Errorf("list grimoire entries: %w", err)
	}
	result := make([]*models.GrimoireEntry, 0)
	for _, rec := range records {
		if rec["MemberID"] == memberID {
			result = append(result, grimoireFromRecord(rec))
		}
	}
	return result, nil
}

func (r *grimoireSheet) Update(ctx context.Context, id string, patch repositories.GrimoirePatch) error {
	fields := map[string]string{}
	if patch.EntryType != nil {
		fields["EntryType"] = *patch.EntryType
	}
	if patch.Title != nil {
		fields["Title"] = *patch.Title
	}
	if patch.Content != nil {
		fields["Content"] = *patch.Content
	}
	if patch.Tags != nil {
		fields["Tags"] = *patch.Tags
	}
	if patch.IsPrivate != nil {
		fields["IsPrivate"] = formatBool(*patch.IsPrivate)
	}
	if patch.Category != nil {
		fields["Category"] = *patch.Category
	}
	if patch.ModifiedDate != nil {
		fields["ModifiedDate"] = formatTime(*patch.ModifiedDate)
	}
	if len(fields) == 0 {
		return nil
	}

	err := r.store.UpdateByKey(ctx, CollectionGrimoire, idColumn, id, fields)
	if errors.Is(err, tabular.ErrRowNotFound) {
		return repositories.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update grimoire entry: %w", err)
	}
	return nil
}

func (r *grimoireSheet) Delete(ctx context.Context, id string) error {
	err := r.store.DeleteByKey(ctx, CollectionGrimoire, idColumn, id)
	if errors.Is(err, tabular.ErrRowNotFound) {
		return repositories.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete grimoire entry: %w", err)
	}
	return nil
}

func grimoireFromRecord(rec tabular.Record) *models.GrimoireEntry {
	return &models.GrimoireEntry{
		ID:           rec["ID"],
		MemberID:     rec["MemberID"],
		EntryType:    rec["EntryType"],
		Title:        rec["Title"],
		Content:      rec["Content"],
		Tags:         rec["Tags"],
		CreatedDate:  parseTime(rec["CreatedDate"]),
		ModifiedDate: parseTime(rec["ModifiedDate"]),
		IsPrivate:    parseBool(rec["IsPrivate"]),
		Category:     rec["Category"],
	}
}
