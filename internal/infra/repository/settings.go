package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dropdeck/internal/domain/settings"
	"dropdeck/internal/infra"
)

type SettingsRepository struct {
	db *pgxpool.Pool
}

func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get never fails on absence: a shop without a row gets the defaults.
func (r *SettingsRepository) Get(ctx context.Context, shop string) (settings.Settings, error) {
	var s settings.Settings
	err := r.db.QueryRow(ctx,
		`SELECT shop, queued_collection_id, drop_time, default_drop_duration_minutes, default_drop_date
		 FROM app_settings WHERE shop = $1`,
		shop,
	).Scan(&s.Shop, &s.QueuedCollectionID, &s.DropTime, &s.DefaultDurationMinutes, &s.DefaultDropDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.Defaults(shop), nil
		}
		return settings.Settings{}, infra.WrapRepoErr("failed to get settings", err)
	}
	return s, nil
}

// Upsert reads the current row (or defaults), applies the patch and writes the
// whole row back keyed by shop.
func (r *SettingsRepository) Upsert(ctx context.Context, shop string, patch settings.Patch) (settings.Settings, error) {
	current, err := r.Get(ctx, shop)
	if err != nil {
		return settings.Settings{}, err
	}
	next := current.Apply(patch)
	next.Shop = shop

	err = r.db.QueryRow(ctx,
		`INSERT INTO app_settings (shop, queued_collection_id, drop_time, default_drop_duration_minutes, default_drop_date)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (shop) DO UPDATE SET
		     queued_collection_id = EXCLUDED.queued_collection_id,
		     drop_time = EXCLUDED.drop_time,
		     default_drop_duration_minutes = EXCLUDED.default_drop_duration_minutes,
		     default_drop_date = EXCLUDED.default_drop_date
		 RETURNING shop, queued_collection_id, drop_time, default_drop_duration_minutes, default_drop_date`,
		next.Shop, next.QueuedCollectionID, next.DropTime, next.DefaultDurationMinutes, next.DefaultDropDate,
	).Scan(&next.Shop, &next.QueuedCollectionID, &next.DropTime, &next.DefaultDurationMinutes, &next.DefaultDropDate)
	if err != nil {
		return settings.Settings{}, infra.WrapRepoErr("failed to upsert settings", err)
	}
	return next, nil
}

// ClearQueuedCollection nulls out the source collection; part of stop-and-clear.
func (r *SettingsRepository) ClearQueuedCollection(ctx context.Context, shop string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE app_settings SET queued_collection_id = NULL WHERE shop = $1`,
		shop,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to clear queued collection", err)
	}
	return nil
}
