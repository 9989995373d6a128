package commands

import (
	"context"
	"time"

	"dropdeck/internal/domain/session"
	"dropdeck/internal/domain/settings"
	"dropdeck/internal/pkg/errs"
)

var ErrInvalidSettings = errs.New("invalid settings")

type SettingsCommands interface {
	Update(ctx context.Context, sess session.Session, patch settings.Patch) (settings.Settings, error)
}

type settingsCommands struct {
	settings SettingsRepository
}

func NewSettingsCommands(repo SettingsRepository) SettingsCommands {
	return &settingsCommands{settings: repo}
}

func (u *settingsCommands) Update(ctx context.Context, sess session.Session, patch settings.Patch) (settings.Settings, error) {
	if patch.DropTime != nil {
		if _, err := time.Parse("15:04", *patch.DropTime); err != nil {
			return settings.Settings{}, errs.Mark(errs.Wrap(err, "drop time must be HH:MM"), ErrInvalidSettings)
		}
	}
	if patch.DefaultDurationMinutes != nil && *patch.DefaultDurationMinutes <= 0 {
		return settings.Settings{}, errs.Mark(errs.New("duration must be positive"), ErrInvalidSettings)
	}

	return u.settings.Upsert(ctx, sess.Shop, patch)
}
