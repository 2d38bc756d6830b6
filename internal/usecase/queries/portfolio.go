package queries

import (
	"context"
	"strings"

	"github.com/atomospherebrand-bot/relese/internal/domain/portfolio"

	"github.com/google/uuid"
)

// PortfolioFilter matches style and title case-insensitively by substring.
type PortfolioFilter struct {
	MasterID *uuid.UUID
	Style    string
	Query    string
	Page     portfolio.Page
}

type PortfolioReadStore interface {
	List(ctx context.Context, f PortfolioFilter) ([]*PortfolioView, int, error)
	Styles(ctx context.Context) ([]string, error)
}

type PortfolioQueries interface {
	List(ctx context.Context, f PortfolioFilter) (*PortfolioPage, error)
	Filters(ctx context.Context) (*PortfolioFilters, error)
}

type portfolioQueriesImpl struct {
	store   PortfolioReadStore
	catalog CatalogReadStore
}

func NewPortfolioQueries(store PortfolioReadStore, catalog CatalogReadStore) PortfolioQueries {
	return &portfolioQueriesImpl{store: store, catalog: catalog}
}

func (q *portfolioQueriesImpl) List(ctx context.Context, f PortfolioFilter) (*PortfolioPage, error) {
	f.Style = strings.TrimSpace(f.Style)
	f.Query = strings.TrimSpace(f.Query)
	if f.Page.Size == 0 {
		f.Page = portfolio.NewPage(f.Page.Number, 0, portfolio.DefaultPageSize, portfolio.MaxPageSize)
	}

	items, total, err := q.store.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*PortfolioView{}
	}
	return &PortfolioPage{
		Items:    items,
		Total:    total,
		Page:     f.Page.Number,
		PageSize: f.Page.Size,
	}, nil
}

func (q *portfolioQueriesImpl) Filters(ctx context.Context) (*PortfolioFilters, error) {
	masters, err := q.catalog.ListMasters(ctx, true)
	if err != nil {
		return nil, err
	}
	styles, err := q.store.Styles(ctx)
	if err != nil {
		return nil, err
	}
	if styles == nil {
		styles = []string{}
	}
	return &PortfolioFilters{Masters: masters, Styles: styles}, nil
}
