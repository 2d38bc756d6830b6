package readstore

import (
	"context"

	"github.com/atomospherebrand-bot/relese/internal/infra"
	"github.com/atomospherebrand-bot/relese/internal/infra/db"
	"github.com/atomospherebrand-bot/relese/internal/pkg/pgconv"
	"github.com/atomospherebrand-bot/relese/internal/usecase/queries"
)

const (
	portfolioWhere = `
WHERE ($1::uuid IS NULL OR p.master_id = $1::uuid)
  AND ($2::text = '' OR p.style ILIKE '%' || $2::text || '%')
  AND ($3::text = '' OR p.title ILIKE '%' || $3::text || '%')`

	countPortfolioSQL = `SELECT count(*) FROM portfolio_items p` + portfolioWhere

	listPortfolioSQL = `
SELECT p.id, p.url, p.title, p.master_id, COALESCE(NULLIF(m.nickname, ''), m.name),
       p.style, p.media_type, p.thumbnail, p.created_at
FROM portfolio_items p
LEFT JOIN masters m ON m.id = p.master_id` + portfolioWhere + `
ORDER BY p.created_at DESC, p.id DESC
LIMIT $4 OFFSET $5`

	listStylesSQL = `
SELECT DISTINCT trim(style) AS style
FROM portfolio_items
WHERE NULLIF(trim(style), '') IS NOT NULL
ORDER BY style`
)

type PortfolioReadStore struct {
	db db.DBTX
}

func NewPortfolioReadStore(db db.DBTX) *PortfolioReadStore {
	return &PortfolioReadStore{db: db}
}

func (r *PortfolioReadStore) List(ctx context.Context, f queries.PortfolioFilter) ([]*queries.PortfolioView, int, error) {
	masterID := pgconv.UUIDPtrToPgtype(f.MasterID)

	var total int64
	if err := r.db.QueryRow(ctx, countPortfolioSQL, masterID, f.Style, f.Query).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count portfolio items", err)
	}

	rows, err := r.db.Query(ctx, listPortfolioSQL, masterID, f.Style, f.Query, f.Page.Size, f.Page.Offset())
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list portfolio items", err)
	}
	defer rows.Close()

	result := make([]*queries.PortfolioView, 0, f.Page.Size)
	for rows.Next() {
		var v queries.PortfolioView
		if err := rows.Scan(&v.ID, &v.URL, &v.Title, &v.MasterID, &v.MasterName, &v.Style, &v.MediaType, &v.Thumbnail, &v.CreatedAt); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan portfolio item", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate portfolio items", err)
	}
	return result, int(total), nil
}

func (r *PortfolioReadStore) Styles(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, listStylesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list portfolio styles", err)
	}
	defer rows.Close()

	styles := make([]string, 0)
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, infra.WrapRepoErr("failed to scan portfolio style", err)
		}
		styles = append(styles, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate portfolio styles", err)
	}
	return styles, nil
}
