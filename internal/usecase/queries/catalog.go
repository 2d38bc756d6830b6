package queries

import (
	"context"

	"github.com/atomospherebrand-bot/relese/internal/infra"
	"github.com/atomospherebrand-bot/relese/internal/pkg/errs"

	"github.com/google/uuid"
)

type CatalogReadStore interface {
	ListMasters(ctx context.Context, includeInactive bool) ([]*MasterView, error)
	FindMaster(ctx context.Context, id uuid.UUID) (*MasterView, error)
	ListServices(ctx context.Context) ([]*ServiceView, error)
	FindService(ctx context.Context, id uuid.UUID) (*ServiceView, error)
}

type CatalogQueries interface {
	ListMasters(ctx context.Context, includeInactive bool) ([]*MasterView, error)
	GetMaster(ctx context.Context, id uuid.UUID) (*MasterView, error)
	ListServices(ctx context.Context) ([]*ServiceView, error)
	GetService(ctx context.Context, id uuid.UUID) (*ServiceView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) ListMasters(ctx context.Context, includeInactive bool) ([]*MasterView, error) {
	return q.store.ListMasters(ctx, includeInactive)
}

func (q *catalogQueriesImpl) GetMaster(ctx context.Context, id uuid.UUID) (*MasterView, error) {
	m, err := q.store.FindMaster(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Kind(errs.ErrMasterNotFound, errs.ErrNotFound)
		}
		return nil, err
	}
	return m, nil
}

func (q *catalogQueriesImpl) ListServices(ctx context.Context) ([]*ServiceView, error) {
	return q.store.ListServices(ctx)
}

func (q *catalogQueriesImpl) GetService(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	s, err := q.store.FindService(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Kind(errs.ErrServiceNotFound, errs.ErrNotFound)
		}
		return nil, err
	}
	return s, nil
}
