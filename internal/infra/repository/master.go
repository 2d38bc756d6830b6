package repository

import (
	"context"

	"github.com/atomospherebrand-bot/relese/internal/domain/master"
	"github.com/atomospherebrand-bot/relese/internal/infra"
	"github.com/atomospherebrand-bot/relese/internal/infra/db"
	"github.com/atomospherebrand-bot/relese/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	findMasterSQL = `
SELECT id, name, nickname, telegram, specialization, avatar, teletype_url, is_active, created_at
FROM masters WHERE id = $1`

	insertMasterSQL = `
INSERT INTO masters (id, name, nickname, telegram, specialization, avatar, teletype_url, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING created_at`

	updateMasterSQL = `
UPDATE masters
SET name = $2, nickname = $3, telegram = $4, specialization = $5, avatar = $6, teletype_url = $7, is_active = $8
WHERE id = $1`

	deleteMasterSQL = `DELETE FROM masters WHERE id = $1`
)

type MasterRepository struct {
	db db.DBTX
}

func NewMasterRepository(db db.DBTX) *MasterRepository {
	return &MasterRepository{db: db}
}

func (r *MasterRepository) FindByID(ctx context.Context, id uuid.UUID) (*master.Master, error) {
	var m master.Master
	err := r.db.QueryRow(ctx, findMasterSQL, id).Scan(
		&m.ID, &m.Name, &m.Nickname, &m.Telegram, &m.Specialization, &m.Avatar, &m.TeletypeURL, &m.IsActive, &m.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("master not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find master by ID", err)
	}
	return &m, nil
}

func (r *MasterRepository) Create(ctx context.Context, m *master.Master) error {
	err := r.db.QueryRow(ctx, insertMasterSQL,
		m.ID, m.Name, m.Nickname, m.Telegram, m.Specialization, m.Avatar, m.TeletypeURL, m.IsActive,
	).Scan(&m.CreatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to create master", err)
	}
	return nil
}

func (r *MasterRepository) Update(ctx context.Context, m *master.Master) error {
	tag, err := r.db.Exec(ctx, updateMasterSQL,
		m.ID, m.Name, m.Nickname, m.Telegram, m.Specialization, m.Avatar, m.TeletypeURL, m.IsActive,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update master", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("master not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *MasterRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, deleteMasterSQL, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete master", err)
	}
	return tag.RowsAffected() > 0, nil
}
