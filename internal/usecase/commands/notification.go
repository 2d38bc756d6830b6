package commands

import (
	"context"

	"github.com/atomospherebrand-bot/relese/internal/domain/notification"
	reqdto "github.com/atomospherebrand-bot/relese/internal/handler/dto/request"
	"github.com/atomospherebrand-bot/relese/internal/pkg/errs"
	"github.com/atomospherebrand-bot/relese/internal/usecase/shared"
)

var ErrNotificationStore = errs.New("notification store unavailable")

type NotificationCommands interface {
	RegisterChat(ctx context.Context, req reqdto.RegisterChatRequest) error
	Mark(ctx context.Context, req reqdto.MarkNotificationRequest) error
}

type notificationCommandsImpl struct {
	store shared.NotificationStore
}

func NewNotificationCommands(store shared.NotificationStore) NotificationCommands {
	return &notificationCommandsImpl{store: store}
}

func (c *notificationCommandsImpl) RegisterChat(ctx context.Context, req reqdto.RegisterChatRequest) error {
	if err := c.store.RegisterChat(ctx, req.BookingID, req.ChatID); err != nil {
		return errs.Mark(err, ErrNotificationStore)
	}
	return nil
}

func (c *notificationCommandsImpl) Mark(ctx context.Context, req reqdto.MarkNotificationRequest) error {
	kind, err := notification.ParseKind(req.Type)
	if err != nil {
		return errs.Kind(err, errs.ErrValidation)
	}
	if err := c.store.Mark(ctx, req.BookingID, kind); err != nil {
		return errs.Mark(err, ErrNotificationStore)
	}
	return nil
}
