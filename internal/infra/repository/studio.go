package repository

import (
	"context"

	"github.com/atomospherebrand-bot/relese/internal/domain/studio"
	"github.com/atomospherebrand-bot/relese/internal/infra"
	"github.com/atomospherebrand-bot/relese/internal/infra/db"
	"github.com/atomospherebrand-bot/relese/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	getSettingsSQL = `
SELECT bot_token, studio_name, address, yandex_map_url, latitude, longitude,
       payment_methods, working_hours, updated_at
FROM settings WHERE id = $1`

	upsertSettingsSQL = `
INSERT INTO settings (id, bot_token, studio_name, address, yandex_map_url, latitude, longitude,
                      payment_methods, working_hours, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
ON CONFLICT (id) DO UPDATE SET
    bot_token = EXCLUDED.bot_token,
    studio_name = EXCLUDED.studio_name,
    address = EXCLUDED.address,
    yandex_map_url = EXCLUDED.yandex_map_url,
    latitude = EXCLUDED.latitude,
    longitude = EXCLUDED.longitude,
    payment_methods = EXCLUDED.payment_methods,
    working_hours = EXCLUDED.working_hours,
    updated_at = now()
RETURNING updated_at`

	upsertMessageSQL = `
INSERT INTO bot_messages (key, label, value, type, image_url)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (key) DO UPDATE SET
    label = EXCLUDED.label,
    value = EXCLUDED.value,
    type = EXCLUDED.type,
    image_url = EXCLUDED.image_url`
)

// StudioRepository persists the settings row, bot messages and certificates.
type StudioRepository struct {
	db db.DBTX
}

func NewStudioRepository(db db.DBTX) *StudioRepository {
	return &StudioRepository{db: db}
}

// GetSettings returns defaults when the row does not exist yet.
func (r *StudioRepository) GetSettings(ctx context.Context) (studio.Settings, error) {
	var s studio.Settings
	err := r.db.QueryRow(ctx, getSettingsSQL, studio.SettingsID).Scan(
		&s.BotToken, &s.StudioName, &s.Address, &s.YandexMapURL, &s.Latitude, &s.Longitude,
		&s.PaymentMethods, &s.WorkingHours, &s.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return studio.DefaultSettings(), nil
		}
		return studio.Settings{}, infra.WrapRepoErr("failed to get settings", err)
	}
	return s, nil
}

func (r *StudioRepository) SaveSettings(ctx context.Context, s studio.Settings) (studio.Settings, error) {
	err := r.db.QueryRow(ctx, upsertSettingsSQL, studio.SettingsID,
		s.BotToken, s.StudioName, s.Address, s.YandexMapURL, s.Latitude, s.Longitude,
		s.PaymentMethods, s.WorkingHours,
	).Scan(&s.UpdatedAt)
	if err != nil {
		return studio.Settings{}, infra.WrapRepoErr("failed to save settings", err)
	}
	return s, nil
}

func (r *StudioRepository) UpsertMessage(ctx context.Context, m studio.Message) error {
	if _, err := r.db.Exec(ctx, upsertMessageSQL, m.Key, m.Label, m.Value, string(m.Type), m.ImageURL); err != nil {
		return infra.WrapRepoErr("failed to save bot message", err)
	}
	return nil
}

func (r *StudioRepository) CreateCertificate(ctx context.Context, c *studio.Certificate) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO certificates (id, url, type, caption, uploaded_at) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.URL, string(c.Type), c.Caption, c.UploadedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create certificate", err)
	}
	return nil
}

func (r *StudioRepository) DeleteCertificate(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM certificates WHERE id = $1`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete certificate", err)
	}
	return tag.RowsAffected() > 0, nil
}
