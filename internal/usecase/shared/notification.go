package shared

import (
	"context"

	"github.com/atomospherebrand-bot/relese/internal/domain/notification"

	"github.com/google/uuid"
)

// NotificationStore persists per-booking chat ids and sent-message flags.
type NotificationStore interface {
	RegisterChat(ctx context.Context, bookingID uuid.UUID, chatID int64) error
	Mark(ctx context.Context, bookingID uuid.UUID, kind notification.Kind) error
	Get(ctx context.Context, bookingID uuid.UUID) (notification.Flags, error)
	All(ctx context.Context) (map[string]notification.Flags, error)
	Forget(ctx context.Context, bookingID uuid.UUID) error
}
