package sheet

import (
	"context"
	"fmt"

	"github.com/magickal-mortalz/coven-service/internal/models"
	"github.com/magickal-mortalz/coven-service/internal/tabular"
)

type activitySheet struct {
	store tabular.Store
}

func (r *activitySheet) Append(ctx context.Context, e *models.ActivityLogEntry) error {
	memberID := e.MemberID
	if memberID == "" {
		memberID = models.SystemMemberID
	}
	row := activitySchema.Row(map[string]string{
		"Timestamp": formatTime(e.Timestamp),
		"MemberID":  memberID,
		"Action":    e.Action,
		"Details":   e.Details,
		"IPAddress": e.IPAddress,
	})
	if err := r.store.Append(ctx, CollectionActivity, row); err != nil {
		return fmt.Errorf("append activity: %w", err)
	}
	return nil
}
