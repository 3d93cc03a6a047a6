// Package audit implements the append-only activity sink. Recording is
// fire-and-forget: a failing broker or store must never fail the operation
// being audited, so every error here is logged and swallowed.
package audit

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/magickal-mortalz/coven-service/internal/models"
	"github.com/magickal-mortalz/coven-service/internal/utils"
)

// Topic carries serialized ActivityLogEntry payloads.
const Topic = "coven.activity"

// Recorder is the audit sink consumed by the domain services.
type Recorder interface {
	Record(ctx context.Context, memberID, action, details string)
}

// NopRecorder discards everything. Test helper and fallback.
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, string, string, string) {}

// PublishingRecorder publishes activity entries over a Watermill publisher.
type PublishingRecorder struct {
	publisher message.Publisher
	clock     utils.Clock
	logger    *slog.Logger
}

func NewPublishingRecorder(publisher message.Publisher, clock utils.Clock, logger *slog.Logger) *PublishingRecorder {
	if clock == nil {
		clock = utils.RealClock{}
	}
	return &PublishingRecorder{publisher: publisher, clock: clock, logger: logger}
}

func (r *PublishingRecorder) Record(ctx context.Context, memberID, action, details string) {
	if memberID == "" {
		memberID = models.SystemMemberID
	}
	entry := models.ActivityLogEntry{
		Timestamp: r.clock.Now(),
		MemberID:  memberID,
		Action:    action,
		Details:   details,
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		r.logger.ErrorContext(ctx, "audit entry marshal failed", "action", action, "error", err)
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	if err := r.publisher.Publish(Topic, msg); err != nil {
		r.logger.ErrorContext(ctx, "audit publish failed", "action", action, "error", err)
	}
}
