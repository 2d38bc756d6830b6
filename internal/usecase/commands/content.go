package commands

import (
	"context"
	"log/slog"

	"github.com/atomospherebrand-bot/relese/internal/domain/studio"
	reqdto "github.com/atomospherebrand-bot/relese/internal/handler/dto/request"
	"github.com/atomospherebrand-bot/relese/internal/pkg/clock"
	"github.com/atomospherebrand-bot/relese/internal/pkg/errs"
	"github.com/atomospherebrand-bot/relese/internal/usecase/queries"
	"github.com/atomospherebrand-bot/relese/internal/usecase/shared"

	"github.com/google/uuid"
)

// BotController restarts or stops the external bot process when the token
// stored in settings changes.
type BotController interface {
	Apply(action studio.TokenAction, previousToken, nextToken string) studio.BotCommand
}

// SavedSettings is the stored settings plus what was asked of the bot.
type SavedSettings struct {
	Settings *queries.SettingsView
	Bot      studio.BotCommand
}

type ContentCommands interface {
	SaveSettings(ctx context.Context, req reqdto.SaveSettingsRequest) (*SavedSettings, error)
	SaveMessages(ctx context.Context, req reqdto.SaveMessagesRequest) ([]*queries.MessageView, error)

	CreatePortfolioItem(ctx context.Context, req reqdto.CreatePortfolioItemRequest) (*queries.PortfolioView, error)
	DeletePortfolioItem(ctx context.Context, id uuid.UUID) error

	CreateCertificate(ctx context.Context, req reqdto.CreateCertificateRequest) (*queries.CertificateView, error)
	DeleteCertificate(ctx context.Context, id uuid.UUID) error
}

type contentCommandsImpl struct {
	uow    shared.UnitOfWork
	bot    BotController
	clock  clock.Clock
	logger *slog.Logger
}

func NewContentCommands(uow shared.UnitOfWork, bot BotController, clk clock.Clock, logger *slog.Logger) ContentCommands {
	if logger == nil {
		logger = slog.Default()
	}
	return &contentCommandsImpl{uow: uow, bot: bot, clock: clk, logger: logger}
}

func (c *contentCommandsImpl) SaveSettings(ctx context.Context, req reqdto.SaveSettingsRequest) (*SavedSettings, error) {
	next := req.ToDomain()

	var (
		saved    studio.Settings
		previous string
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Studio().GetSettings(ctx)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		previous = current.BotToken

		saved, err = tx.Studio().SaveSettings(ctx, next)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	action := studio.TokenChange(previous, saved.BotToken)
	c.logger.Info("settings saved", "token_action", string(action))
	bot := studio.BotCommand{Action: action}
	if action != studio.TokenActionNone && c.bot != nil {
		bot = c.bot.Apply(action, previous, saved.BotToken)
	}
	return &SavedSettings{Settings: queries.ToSettingsView(saved), Bot: bot}, nil
}

func (c *contentCommandsImpl) SaveMessages(ctx context.Context, req reqdto.SaveMessagesRequest) ([]*queries.MessageView, error) {
	messages, err := req.ToDomain()
	if err != nil {
		return nil, errs.Kind(err, errs.ErrValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, m := range messages {
			if err := tx.Studio().UpsertMessage(ctx, m); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]*queries.MessageView, 0, len(messages))
	for _, m := range messages {
		v := queries.ToMessageView(m)
		out = append(out, &v)
	}
	c.logger.Info("bot messages saved", "count", len(out))
	return out, nil
}

func (c *contentCommandsImpl) CreatePortfolioItem(ctx context.Context, req reqdto.CreatePortfolioItemRequest) (*queries.PortfolioView, error) {
	item, err := req.ToDomain(c.clock.Now())
	if err != nil {
		return nil, errs.Kind(err, errs.ErrValidation)
	}

	var masterName *string
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if item.MasterID != nil {
			m, err := tx.Masters().FindByID(ctx, *item.MasterID)
			if err != nil {
				return lookupErr(err, errs.ErrMasterNotFound)
			}
			label := m.Label()
			masterName = &label
		}
		if err := tx.Portfolio().Create(ctx, item); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view := queries.ToPortfolioView(item, masterName)
	return &view, nil
}

func (c *contentCommandsImpl) DeletePortfolioItem(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		removed, err := tx.Portfolio().Delete(ctx, id)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !removed {
			return errs.Kind(errs.ErrPortfolioItemNotFound, errs.ErrNotFound)
		}
		return nil
	})
}

func (c *contentCommandsImpl) CreateCertificate(ctx context.Context, req reqdto.CreateCertificateRequest) (*queries.CertificateView, error) {
	cert, err := req.ToDomain(c.clock.Now())
	if err != nil {
		return nil, errs.Kind(err, errs.ErrValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Studio().CreateCertificate(ctx, cert); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view := queries.ToCertificateView(cert)
	return &view, nil
}

func (c *contentCommandsImpl) DeleteCertificate(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		removed, err := tx.Studio().DeleteCertificate(ctx, id)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !removed {
			return errs.Kind(errs.ErrCertificateNotFound, errs.ErrNotFound)
		}
		return nil
	})
}
