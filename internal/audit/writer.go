package audit

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/magickal-mortalz/coven-service/internal/models"
	"github.com/magickal-mortalz/coven-service/internal/repositories"
)

// Writer consumes published activity entries and appends them to the
// ActivityLog collection. Messages are always acked: a row that cannot be
// written is logged and dropped rather than redelivered forever, keeping the
// sink best-effort end to end.
type Writer struct {
	subscriber message.Subscriber
	activity   repositories.ActivityRepository
	logger     *slog.Logger
}

func NewWriter(subscriber message.Subscriber, activity repositories.ActivityRepository, logger *slog.Logger) *Writer {
	return &Writer{subscriber: subscriber, activity: activity, logger: logger}
}

// Run subscribes and persists entries until ctx is cancelled.
func (w *Writer) Run(ctx context.Context) error {
	messages, err := w.subscriber.Subscribe(ctx, Topic)
	if err != nil {
		return err
	}

	for msg := range messages {
		w.persist(ctx, msg)
		msg.Ack()
	}
	return nil
}

func (w *Writer) persist(ctx context.Context, msg *message.Message) {
	var entry models.ActivityLogEntry
	if err := json.Unmarshal(msg.Payload, &entry); err != nil {
		w.logger.ErrorContext(ctx, "audit entry decode failed", "message_id", msg.UUID, "error", err)
		return
	}
	if err := w.activity.Append(ctx, &entry); err != nil {
		w.logger.ErrorContext(ctx, "audit entry write failed",
			"message_id", msg.UUID,
			"action", entry.Action,
			"error", err)
	}
}
