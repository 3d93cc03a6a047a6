package sheet

import (
	"context"
	"errors"
	"fmt"

	"github.com/magickal-mortalz/coven-service/internal/models"
	"github.com/magickal-mortalz/coven-service/internal/repositories"
	"github.com/magickal-mortalz/coven-service/internal/tabular"
)

type memberSheet struct {
	store tabular.Store
}

func (r *memberSheet) Create(ctx context.Context, m *models.Member) error {
	row := membersSchema.Row(map[string]string{
		"ID":            m.ID,
		"Email":         m.Email,
		"CraftName":     m.CraftName,
		"RealName":      m.RealName,
		"JoinDate":      formatTime(m.JoinDate),
		"CurrentDegree": string(m.CurrentDegree),
		"Avatar":        m.Avatar,
		"Bio":           m.Bio,
		"IsActive":      formatBool(m.IsActive),
		"LastLogin":     formatTime(m.LastLogin),
	})
	if err := r.store.Append(ctx, CollectionMembers, row); err != nil {
		return fmt.Errorf("create member: %w", err)
	}
	return nil
}

func (r *memberSheet) GetByID(ctx context.Context, id string) (*models.Member, error) {
	records, err := r.store.ReadAll(ctx, CollectionMembers)
	if err != nil {
		return nil, fmt.Errorf("get member: %w", err)
	}
	for _, rec := range records {
		if rec["ID"] == id {
			return memberFromRecord(rec), nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *memberSheet) ListActive(ctx context.Context) ([]*models.Member, error) {
	records, err := r.store.ReadAll(ctx, CollectionMembers)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	members := make([]*models.Member, 0, len(records))
	for _, rec := range records {
		if !parseBool(rec["IsActive"]) {
			continue
		}
		members = append(members, memberFromRecord(rec))
	}
	return members, nil
}

func (r *memberSheet) Update(ctx context.Context, id string, patch repositories.MemberPatch) error {
	fields := map[string]string{}
	if patch.Email != nil {
		fields["Email"] = *patch.Email
	}
	if patch.CraftName != nil {
		fields["CraftName"] = *patch.CraftName
	}
	if patch.RealName != nil {
		fields["RealName"] = *patch.RealName
	}
	if patch.CurrentDegree != nil {
		fields["CurrentDegree"] = string(*patch.CurrentDegree)
	}
	if patch.Avatar != nil {
		fields["Avatar"] = *patch.Avatar
	}
	if patch.Bio != nil {
		fields["Bio"] = *patch.Bio
	}
	if patch.IsActive != nil {
		fields["IsActive"] = formatBool(*patch.IsActive)
	}
	if patch.LastLogin != nil {
		fields["LastLogin"] = formatTime(*patch.LastLogin)
	}
	if len(fields) == 0 {
		return nil
	}

	err := r.store.UpdateByKey(ctx, CollectionMembers, idColumn, id, fields)
	if errors.Is(err, tabular.ErrRowNotFound) {
		return repositories.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update member: %w", err)
	}
	return nil
}

func memberFromRecord(rec tabular.Record) *models.Member {
	return &models.Member{
		ID:            rec["ID"],
		Email:         rec["Email"],
		CraftName:     rec["CraftName"],
		RealName:      rec["RealName"],
		JoinDate:      parseTime(rec["JoinDate"]),
		CurrentDegree: models.Degree(rec["CurrentDegree"]),
		Avatar:        rec["Avatar"],
		Bio:           rec["Bio"],
		IsActive:      parseBool(rec["IsActive"]),
		LastLogin:     parseTime(rec["LastLogin"]),
	}
}
