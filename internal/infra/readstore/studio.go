package readstore

import (
	"context"

	"github.com/atomospherebrand-bot/relese/internal/infra"
	"github.com/atomospherebrand-bot/relese/internal/infra/db"
	"github.com/atomospherebrand-bot/relese/internal/infra/repository"
	"github.com/atomospherebrand-bot/relese/internal/usecase/queries"
)

const (
	listMessagesSQL = `SELECT key, label, value, type, image_url FROM bot_messages ORDER BY key`

	messagesByKeySQL = `SELECT key, value FROM bot_messages WHERE key = ANY($1::text[])`

	listCertificatesSQL = `SELECT id, url, type, caption, uploaded_at FROM certificates ORDER BY uploaded_at DESC`
)

type StudioReadStore struct {
	db db.DBTX
}

func NewStudioReadStore(db db.DBTX) *StudioReadStore {
	return &StudioReadStore{db: db}
}

func (r *StudioReadStore) GetSettings(ctx context.Context) (*queries.SettingsView, error) {
	s, err := repository.NewStudioRepository(r.db).GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	return queries.ToSettingsView(s), nil
}

func (r *StudioReadStore) ListMessages(ctx context.Context) ([]*queries.MessageView, error) {
	rows, err := r.db.Query(ctx, listMessagesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bot messages", err)
	}
	defer rows.Close()

	result := make([]*queries.MessageView, 0)
	for rows.Next() {
		var m queries.MessageView
		if err := rows.Scan(&m.Key, &m.Label, &m.Value, &m.Type, &m.ImageURL); err != nil {
			return nil, infra.WrapRepoErr("failed to scan bot message", err)
		}
		result = append(result, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bot messages", err)
	}
	return result, nil
}

// MessagesByKey omits keys that have no stored message.
func (r *StudioReadStore) MessagesByKey(ctx context.Context, keys ...string) (map[string]string, error) {
	rows, err := r.db.Query(ctx, messagesByKeySQL, keys)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load bot messages", err)
	}
	defer rows.Close()

	out := make(map[string]string, len(keys))
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, infra.WrapRepoErr("failed to scan bot message", err)
		}
		out[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bot messages", err)
	}
	return out, nil
}

func (r *StudioReadStore) ListCertificates(ctx context.Context) ([]*queries.CertificateView, error) {
	rows, err := r.db.Query(ctx, listCertificatesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list certificates", err)
	}
	defer rows.Close()

	result := make([]*queries.CertificateView, 0)
	for rows.Next() {
		var c queries.CertificateView
		if err := rows.Scan(&c.ID, &c.URL, &c.Type, &c.Caption, &c.UploadedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan certificate", err)
		}
		result = append(result, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate certificates", err)
	}
	return result, nil
}
