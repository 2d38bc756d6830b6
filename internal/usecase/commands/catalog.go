package commands

import (
	"context"
	"log/slog"

	"github.com/atomospherebrand-bot/relese/internal/domain/master"
	reqdto "github.com/atomospherebrand-bot/relese/internal/handler/dto/request"
	"github.com/atomospherebrand-bot/relese/internal/infra"
	"github.com/atomospherebrand-bot/relese/internal/pkg/clock"
	"github.com/atomospherebrand-bot/relese/internal/pkg/errs"
	"github.com/atomospherebrand-bot/relese/internal/usecase/queries"
	"github.com/atomospherebrand-bot/relese/internal/usecase/shared"

	"github.com/google/uuid"
)

type CatalogCommands interface {
	CreateMaster(ctx context.Context, req reqdto.CreateMasterRequest) (*queries.MasterView, error)
	UpdateMaster(ctx context.Context, id uuid.UUID, req reqdto.UpdateMasterRequest) (*queries.MasterView, error)
	DeleteMaster(ctx context.Context, id uuid.UUID) error

	CreateService(ctx context.Context, req reqdto.CreateServiceRequest) (*queries.ServiceView, error)
	UpdateService(ctx context.Context, id uuid.UUID, req reqdto.UpdateServiceRequest) (*queries.ServiceView, error)
	DeleteService(ctx context.Context, id uuid.UUID) error
}

type catalogCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewCatalogCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) CatalogCommands {
	if logger == nil {
		logger = slog.Default()
	}
	return &catalogCommandsImpl{uow: uow, clock: clk, logger: logger}
}

func (c *catalogCommandsImpl) CreateMaster(ctx context.Context, req reqdto.CreateMasterRequest) (*queries.MasterView, error) {
	m, err := master.New(req.ToDomain())
	if err != nil {
		return nil, errs.Kind(err, errs.ErrValidation)
	}
	m.CreatedAt = c.clock.Now()

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Masters().Create(ctx, m); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("master created", "master_id", m.ID, "nickname", m.Nickname)
	view := queries.ToMasterView(m)
	return &view, nil
}

func (c *catalogCommandsImpl) UpdateMaster(ctx context.Context, id uuid.UUID, req reqdto.UpdateMasterRequest) (*queries.MasterView, error) {
	var updated *master.Master
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, err := tx.Masters().FindByID(ctx, id)
		if err != nil {
			return lookupErr(err, errs.ErrMasterNotFound)
		}
		if err := m.Apply(req.ToDomain()); err != nil {
			return errs.Kind(err, errs.ErrValidation)
		}
		if err := tx.Masters().Update(ctx, m); err != nil {
			return lookupErr(err, errs.ErrMasterNotFound)
		}
		updated = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	view := queries.ToMasterView(updated)
	return &view, nil
}

func (c *catalogCommandsImpl) DeleteMaster(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		removed, err := tx.Masters().Delete(ctx, id)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !removed {
			return errs.Kind(errs.ErrMasterNotFound, errs.ErrNotFound)
		}
		c.logger.Info("master deleted", "master_id", id)
		return nil
	})
}

func (c *catalogCommandsImpl) CreateService(ctx context.Context, req reqdto.CreateServiceRequest) (*queries.ServiceView, error) {
	s, err := req.ToDomain()
	if err != nil {
		return nil, errs.Kind(err, errs.ErrValidation)
	}
	s.CreatedAt = c.clock.Now()

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Services().Create(ctx, s); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("service created", "service_id", s.ID, "duration", s.Duration)
	view := queries.ToServiceView(s)
	return &view, nil
}

// UpdateService does not touch existing bookings; they keep the duration
// they were booked with until they are edited.
func (c *catalogCommandsImpl) UpdateService(ctx context.Context, id uuid.UUID, req reqdto.UpdateServiceRequest) (*queries.ServiceView, error) {
	var view queries.ServiceView
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Services().FindByID(ctx, id)
		if err != nil {
			return lookupErr(err, errs.ErrServiceNotFound)
		}
		if err := s.Apply(req.ToDomain()); err != nil {
			return errs.Kind(err, errs.ErrValidation)
		}
		if err := tx.Services().Update(ctx, s); err != nil {
			return lookupErr(err, errs.ErrServiceNotFound)
		}
		view = queries.ToServiceView(s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *catalogCommandsImpl) DeleteService(ctx context.Context, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		removed, err := tx.Services().Delete(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Kind(err, errs.ErrConflict)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !removed {
			return errs.Kind(errs.ErrServiceNotFound, errs.ErrNotFound)
		}
		c.logger.Info("service deleted", "service_id", id)
		return nil
	})
}
