package repository

import (
	"context"

	"github.com/atomospherebrand-bot/relese/internal/domain/service"
	"github.com/atomospherebrand-bot/relese/internal/infra"
	"github.com/atomospherebrand-bot/relese/internal/infra/db"
	"github.com/atomospherebrand-bot/relese/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	findServiceSQL = `SELECT id, name, duration, price, description, created_at FROM services WHERE id = $1`

	insertServiceSQL = `
INSERT INTO services (id, name, duration, price, description)
VALUES ($1, $2, $3, $4, $5)
RETURNING created_at`

	updateServiceSQL = `UPDATE services SET name = $2, duration = $3, price = $4, description = $5 WHERE id = $1`

	deleteServiceSQL = `DELETE FROM services WHERE id = $1`
)

type ServiceRepository struct {
	db db.DBTX
}

func NewServiceRepository(db db.DBTX) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*service.Service, error) {
	var s service.Service
	err := r.db.QueryRow(ctx, findServiceSQL, id).Scan(&s.ID, &s.Name, &s.Duration, &s.Price, &s.Description, &s.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}
	return &s, nil
}

func (r *ServiceRepository) Create(ctx context.Context, s *service.Service) error {
	err := r.db.QueryRow(ctx, insertServiceSQL, s.ID, s.Name, s.Duration, s.Price, s.Description).Scan(&s.CreatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to create service", err)
	}
	return nil
}

func (r *ServiceRepository) Update(ctx context.Context, s *service.Service) error {
	tag, err := r.db.Exec(ctx, updateServiceSQL, s.ID, s.Name, s.Duration, s.Price, s.Description)
	if err != nil {
		return infra.WrapRepoErr("failed to update service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, deleteServiceSQL, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete service", err)
	}
	return tag.RowsAffected() > 0, nil
}
