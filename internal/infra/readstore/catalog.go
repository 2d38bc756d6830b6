package readstore

import (
	"context"

	"github.com/atomospherebrand-bot/relese/internal/infra"
	"github.com/atomospherebrand-bot/relese/internal/infra/db"
	"github.com/atomospherebrand-bot/relese/internal/pkg/pgconv"
	"github.com/atomospherebrand-bot/relese/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	masterColumns = `
SELECT id, name, nickname, telegram, specialization, avatar, teletype_url, is_active, created_at
FROM masters`

	listMastersSQL = masterColumns + `
WHERE ($1::bool OR is_active)
ORDER BY name, nickname`

	getMasterSQL = masterColumns + ` WHERE id = $1`

	serviceColumns = `SELECT id, name, duration, price, description, created_at FROM services`

	listServicesSQL = serviceColumns + ` ORDER BY name`

	getServiceSQL = serviceColumns + ` WHERE id = $1`
)

// CatalogReadStore serves masters and services.
type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(db db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: db}
}

func (r *CatalogReadStore) ListMasters(ctx context.Context, includeInactive bool) ([]*queries.MasterView, error) {
	rows, err := r.db.Query(ctx, listMastersSQL, includeInactive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list masters", err)
	}
	defer rows.Close()

	result := make([]*queries.MasterView, 0)
	for rows.Next() {
		m, err := scanMaster(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan master", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate masters", err)
	}
	return result, nil
}

func (r *CatalogReadStore) FindMaster(ctx context.Context, id uuid.UUID) (*queries.MasterView, error) {
	m, err := scanMaster(r.db.QueryRow(ctx, getMasterSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("master not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find master by ID", err)
	}
	return m, nil
}

func (r *CatalogReadStore) ListServices(ctx context.Context) ([]*queries.ServiceView, error) {
	rows, err := r.db.Query(ctx, listServicesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	result := make([]*queries.ServiceView, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan service", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate services", err)
	}
	return result, nil
}

func (r *CatalogReadStore) FindService(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	s, err := scanService(r.db.QueryRow(ctx, getServiceSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}
	return s, nil
}

func scanMaster(row rowScanner) (*queries.MasterView, error) {
	var m queries.MasterView
	err := row.Scan(&m.ID, &m.Name, &m.Nickname, &m.Telegram, &m.Specialization, &m.Avatar, &m.TeletypeURL, &m.IsActive, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func scanService(row rowScanner) (*queries.ServiceView, error) {
	var (
		s        queries.ServiceView
		duration int32
		price    int32
	)
	if err := row.Scan(&s.ID, &s.Name, &duration, &price, &s.Description, &s.CreatedAt); err != nil {
		return nil, err
	}
	s.Duration = int(duration)
	s.Price = int(price)
	return &s, nil
}
