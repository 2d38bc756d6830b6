package repository

import (
	"context"

	"github.com/atomospherebrand-bot/relese/internal/domain/portfolio"
	"github.com/atomospherebrand-bot/relese/internal/infra"
	"github.com/atomospherebrand-bot/relese/internal/infra/db"

	"github.com/google/uuid"
)

type PortfolioRepository struct {
	db db.DBTX
}

func NewPortfolioRepository(db db.DBTX) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

func (r *PortfolioRepository) Create(ctx context.Context, item *portfolio.Item) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO portfolio_items (id, url, title, master_id, style, media_type, thumbnail, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		item.ID, item.URL, item.Title, item.MasterID, item.Style, string(item.MediaType), item.Thumbnail, item.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create portfolio item", err)
	}
	return nil
}

func (r *PortfolioRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM portfolio_items WHERE id = $1`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete portfolio item", err)
	}
	return tag.RowsAffected() > 0, nil
}
