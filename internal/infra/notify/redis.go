package notify

import (
	"context"
	"strconv"

	"github.com/atomospherebrand-bot/relese/internal/domain/notification"
	"github.com/atomospherebrand-bot/relese/internal/pkg/config"
	"github.com/atomospherebrand-bot/relese/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "notif:"
	indexKey  = "notif:index"

	fieldChatID       = "chatId"
	fieldConfirmation = "confirmationSent"
	fieldReminder24   = "rem24hSent"
	fieldReminder2    = "rem2hSent"
)

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func Ping(ctx context.Context, client *redis.Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return errs.Wrap(err, "failed to ping redis")
	}
	return nil
}

// Store keeps one hash per booking (notif:<id>) and a set of the ids that
// have flags so the whole map can be listed without SCAN.
type Store struct {
	client redis.UniversalClient
}

func NewStore(client redis.UniversalClient) *Store {
	return &Store{client: client}
}

func key(bookingID uuid.UUID) string {
	return keyPrefix + bookingID.String()
}

func (s *Store) RegisterChat(ctx context.Context, bookingID uuid.UUID, chatID int64) error {
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, key(bookingID), fieldChatID, strconv.FormatInt(chatID, 10))
		p.SAdd(ctx, indexKey, bookingID.String())
		return nil
	})
	if err != nil {
		return errs.Wrap(err, "failed to register chat")
	}
	return nil
}

func (s *Store) Mark(ctx context.Context, bookingID uuid.UUID, kind notification.Kind) error {
	field, err := fieldFor(kind)
	if err != nil {
		return err
	}
	_, err = s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, key(bookingID), field, "1")
		p.SAdd(ctx, indexKey, bookingID.String())
		return nil
	})
	if err != nil {
		return errs.Wrap(err, "failed to mark notification")
	}
	return nil
}

// Get returns zero flags when nothing is stored for the booking.
func (s *Store) Get(ctx context.Context, bookingID uuid.UUID) (notification.Flags, error) {
	values, err := s.client.HGetAll(ctx, key(bookingID)).Result()
	if err != nil {
		return notification.Flags{}, errs.Wrap(err, "failed to read notification flags")
	}
	return decode(values), nil
}

func (s *Store) All(ctx context.Context) (map[string]notification.Flags, error) {
	ids, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errs.Wrap(err, "failed to read notification index")
	}

	cmds := make([]*redis.MapStringStringCmd, len(ids))
	_, err = s.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		for i, id := range ids {
			cmds[i] = p.HGetAll(ctx, keyPrefix+id)
		}
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to read notification flags")
	}

	out := make(map[string]notification.Flags, len(ids))
	for i, id := range ids {
		values := cmds[i].Val()
		if len(values) == 0 {
			continue
		}
		out[id] = decode(values)
	}
	return out, nil
}

func (s *Store) Forget(ctx context.Context, bookingID uuid.UUID) error {
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Del(ctx, key(bookingID))
		p.SRem(ctx, indexKey, bookingID.String())
		return nil
	})
	if err != nil {
		return errs.Wrap(err, "failed to forget notification flags")
	}
	return nil
}

func fieldFor(kind notification.Kind) (string, error) {
	switch kind {
	case notification.KindConfirm:
		return fieldConfirmation, nil
	case notification.KindReminder24:
		return fieldReminder24, nil
	case notification.KindReminder2:
		return fieldReminder2, nil
	}
	return "", notification.ErrInvalidKind
}

func decode(values map[string]string) notification.Flags {
	var f notification.Flags
	if raw, ok := values[fieldChatID]; ok {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			f.ChatID = &id
		}
	}
	f.ConfirmationSent = values[fieldConfirmation] == "1"
	f.Reminder24Sent = values[fieldReminder24] == "1"
	f.Reminder2Sent = values[fieldReminder2] == "1"
	return f
}
