package queries

import (
	"context"
)

type StudioReadStore interface {
	// GetSettings returns defaults when the settings row is missing.
	GetSettings(ctx context.Context) (*SettingsView, error)
	ListMessages(ctx context.Context) ([]*MessageView, error)
	MessagesByKey(ctx context.Context, keys ...string) (map[string]string, error)
	ListCertificates(ctx context.Context) ([]*CertificateView, error)
}

type StudioQueries interface {
	Settings(ctx context.Context) (*SettingsView, error)
	// PublicSettings is the bot view and never carries the token.
	PublicSettings(ctx context.Context) (*SettingsView, error)
	Messages(ctx context.Context) ([]*MessageView, error)
	Certificates(ctx context.Context) ([]*CertificateView, error)
}

type studioQueriesImpl struct {
	store StudioReadStore
}

func NewStudioQueries(store StudioReadStore) StudioQueries {
	return &studioQueriesImpl{store: store}
}

func (q *studioQueriesImpl) Settings(ctx context.Context) (*SettingsView, error) {
	return q.store.GetSettings(ctx)
}

func (q *studioQueriesImpl) PublicSettings(ctx context.Context) (*SettingsView, error) {
	s, err := q.store.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	public := *s
	public.BotToken = ""
	return &public, nil
}

func (q *studioQueriesImpl) Messages(ctx context.Context) ([]*MessageView, error) {
	msgs, err := q.store.ListMessages(ctx)
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []*MessageView{}
	}
	return msgs, nil
}

func (q *studioQueriesImpl) Certificates(ctx context.Context) ([]*CertificateView, error) {
	certs, err := q.store.ListCertificates(ctx)
	if err != nil {
		return nil, err
	}
	if certs == nil {
		certs = []*CertificateView{}
	}
	return certs, nil
}
