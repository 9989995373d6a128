package queries

import (
	"context"

	"dropdeck/internal/domain/session"
	"dropdeck/internal/domain/settings"
)

type SettingsQueries interface {
	Get(ctx context.Context, sess session.Session) (settings.Settings, error)
}

type settingsQueries struct {
	settings SettingsReader
}

func NewSettingsQueries(reader SettingsReader) SettingsQueries {
	return &settingsQueries{settings: reader}
}

func (q *settingsQueries) Get(ctx context.Context, sess session.Session) (settings.Settings, error) {
	return q.settings.Get(ctx, sess.Shop)
}
