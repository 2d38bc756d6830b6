package queries

import (
	"context"

	"github.com/atomospherebrand-bot/relese/internal/domain/notification"
	"github.com/atomospherebrand-bot/relese/internal/pkg/errs"
	"github.com/atomospherebrand-bot/relese/internal/usecase/shared"
)

type NotificationQueries interface {
	All(ctx context.Context) (map[string]notification.Flags, error)
}

type notificationQueriesImpl struct {
	store shared.NotificationStore
}

func NewNotificationQueries(store shared.NotificationStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) All(ctx context.Context) (map[string]notification.Flags, error) {
	flags, err := q.store.All(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return flags, nil
}
