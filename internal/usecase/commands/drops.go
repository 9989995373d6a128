package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"dropdeck/internal/domain/drop"
	"dropdeck/internal/domain/session"
	"dropdeck/internal/domain/settings"
	"dropdeck/internal/infra"
	"dropdeck/internal/pkg/clock"
	"dropdeck/internal/pkg/errs"
	"dropdeck/internal/usecase/readmodel"
)

var (
	ErrProductAlreadyQueued = errs.New("product already has a pending drop")
	ErrNoSourceCollection   = errs.New("no source collection configured")
	ErrInvalidSchedule      = errs.New("invalid schedule input")
)

type CreateDropInput struct {
	ProductID       string
	Title           string
	ThumbnailURL    string
	StartTime       *time.Time
	DurationMinutes *int
}

type ScheduleInput struct {
	CollectionID    *string
	Anchor          *time.Time
	DurationMinutes *int
}

type StopAndClearResult struct {
	QueuedRemoved   int64
	ActiveCompleted bool
	SettingsReset   bool
}

type DropCommands interface {
	Create(ctx context.Context, sess session.Session, input CreateDropInput) (*readmodel.DropRM, error)
	ScheduleCollection(ctx context.Context, sess session.Session, input ScheduleInput) ([]*readmodel.DropRM, error)
	AppendCollection(ctx context.Context, sess session.Session, input ScheduleInput) ([]*readmodel.DropRM, error)
	DeleteQueued(ctx context.Context, sess session.Session, ids []uuid.UUID) (int64, error)
	ClearQueued(ctx context.Context, sess session.Session) (int64, error)
	ClearCompleted(ctx context.Context, sess session.Session) (int64, error)
	StopAndClear(ctx context.Context, sess session.Session) (StopAndClearResult, error)
}

type dropCommands struct {
	drops    DropRepository
	settings SettingsRepository
	catalog  CatalogGateway
	notifier LifecycleNotifier
	clock    clock.Clock
	logger   *slog.Logger
}

func NewDropCommands(
	drops DropRepository,
	settingsRepo SettingsRepository,
	catalogGW CatalogGateway,
	notifier LifecycleNotifier,
	clk clock.Clock,
	logger *slog.Logger,
) DropCommands {
	return &dropCommands{
		drops:    drops,
		settings: settingsRepo,
		catalog:  catalogGW,
		notifier: notifier,
		clock:    clk,
		logger:   logger,
	}
}

// Create queues a single drop. Without an explicit start time the drop is
// appended after the current queue tail so windows stay contiguous.
func (u *dropCommands) Create(ctx context.Context, sess session.Session, input CreateDropInput) (*readmodel.DropRM, error) {
	cfg, err := u.settings.Get(ctx, sess.Shop)
	if err != nil {
		return nil, err
	}

	duration := cfg.DefaultDurationMinutes
	if input.DurationMinutes != nil {
		duration = *input.DurationMinutes
	}

	var start time.Time
	if input.StartTime != nil {
		start = *input.StartTime
	} else {
		start = u.appendAnchor(ctx, sess.Shop)
	}

	d, err := drop.NewDrop(sess.Shop, input.ProductID, input.Title, input.ThumbnailURL, start, duration)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSchedule)
	}

	rm, err := u.drops.Insert(ctx, d)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrProductAlreadyQueued)
		}
		return nil, err
	}

	u.notifyChanged(ctx, sess)
	return rm, nil
}

// ScheduleCollection plans a full batch from the source collection, anchored at
// the explicit anchor, the configured drop date and time, or now.
func (u *dropCommands) ScheduleCollection(ctx context.Context, sess session.Session, input ScheduleInput) ([]*readmodel.DropRM, error) {
	cfg, err := u.settings.Get(ctx, sess.Shop)
	if err != nil {
		return nil, err
	}

	anchor := u.clock.Now().UTC()
	if input.Anchor != nil {
		anchor = input.Anchor.UTC()
	} else if at, ok := configuredAnchor(cfg); ok {
		anchor = at
	}

	return u.scheduleBatch(ctx, sess, cfg, input, anchor)
}

// AppendCollection plans a batch that continues after the queue tail instead of
// restarting the timeline.
func (u *dropCommands) AppendCollection(ctx context.Context, sess session.Session, input ScheduleInput) ([]*readmodel.DropRM, error) {
	cfg, err := u.settings.Get(ctx, sess.Shop)
	if err != nil {
		return nil, err
	}
	return u.scheduleBatch(ctx, sess, cfg, input, u.appendAnchor(ctx, sess.Shop))
}

func (u *dropCommands) scheduleBatch(ctx context.Context, sess session.Session, cfg settings.Settings, input ScheduleInput, anchor time.Time) ([]*readmodel.DropRM, error) {
	collectionID := ""
	if input.CollectionID != nil {
		collectionID = *input.CollectionID
	} else if cfg.QueuedCollectionID != nil {
		collectionID = *cfg.QueuedCollectionID
	}
	if collectionID == "" {
		return nil, ErrNoSourceCollection
	}

	duration := cfg.DefaultDurationMinutes
	if input.DurationMinutes != nil {
		duration = *input.DurationMinutes
	}

	products, err := u.catalog.ListActiveProducts(ctx, sess, collectionID, 0)
	if err != nil {
		return nil, err
	}

	queuedRefs, err := u.drops.ListQueuedProductRefs(ctx, sess.Shop)
	if err != nil {
		return nil, err
	}

	snapshots := make([]drop.ProductSnapshot, 0, len(products))
	for _, p := range products {
		snapshots = append(snapshots, drop.ProductSnapshot{ID: p.ID, Title: p.Title, ImageURL: p.ImageURL})
	}

	batch, err := drop.PlanBatch(sess.Shop, snapshots, queuedRefs, anchor, duration)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSchedule)
	}
	if len(batch) == 0 {
		return nil, nil
	}

	inserted, err := u.drops.InsertBatch(ctx, batch)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrProductAlreadyQueued)
		}
		return nil, err
	}

	u.logger.Info("drop batch scheduled",
		"shop", sess.Shop, "collection_id", collectionID, "count", len(inserted), "anchor", anchor)
	u.notifyChanged(ctx, sess)
	return inserted, nil
}

func (u *dropCommands) DeleteQueued(ctx context.Context, sess session.Session, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	removed, err := u.drops.DeleteQueued(ctx, sess.Shop, ids)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		u.notifyChanged(ctx, sess)
	}
	return removed, nil
}

func (u *dropCommands) ClearQueued(ctx context.Context, sess session.Session) (int64, error) {
	removed, err := u.drops.DeleteAllQueued(ctx, sess.Shop)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		u.notifyChanged(ctx, sess)
	}
	return removed, nil
}

func (u *dropCommands) ClearCompleted(ctx context.Context, sess session.Session) (int64, error) {
	removed, err := u.drops.DeleteCompleted(ctx, sess.Shop)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		u.notifyChanged(ctx, sess)
	}
	return removed, nil
}

// StopAndClear wipes the queue, finishes any active drop at the current
// instant, detaches the source collection and clears the external key. This is
// the only path that publishes the empty value.
func (u *dropCommands) StopAndClear(ctx context.Context, sess session.Session) (StopAndClearResult, error) {
	var result StopAndClearResult

	removed, err := u.drops.DeleteAllQueued(ctx, sess.Shop)
	if err != nil {
		return result, err
	}
	result.QueuedRemoved = removed

	active, err := u.drops.GetActive(ctx, sess.Shop)
	if err != nil {
		return result, err
	}
	if active != nil {
		now := u.clock.Now().UTC()
		row, err := u.drops.UpdateStatusCAS(ctx, active.ID, sess.Shop, drop.StatusActive, drop.StatusCompleted, nil, &now)
		if err != nil {
			return result, err
		}
		result.ActiveCompleted = row != nil
	}

	if err := u.settings.ClearQueuedCollection(ctx, sess.Shop); err != nil {
		return result, err
	}
	result.SettingsReset = true

	if err := u.notifier.DropsCleared(ctx, sess); err != nil {
		// Store state is already cleared; the key write retries on later passes.
		u.logger.Error("failed to clear published key", "shop", sess.Shop, "error", err)
		return result, err
	}
	return result, nil
}

// appendAnchor finds where the next drop should start when appending: the end
// of the queue tail, or now for an empty queue. A tail that has already passed
// is clamped to now so an appended drop never starts in the past.
func (u *dropCommands) appendAnchor(ctx context.Context, shop string) time.Time {
	tail, ok, err := u.drops.QueueTailEnd(ctx, shop)
	if err != nil || !ok {
		return u.clock.Now().UTC()
	}
	now := u.clock.Now().UTC()
	if tail.Before(now) {
		return now
	}
	return tail
}

// configuredAnchor combines the settings drop date and wall-clock time into a
// concrete UTC instant.
func configuredAnchor(cfg settings.Settings) (time.Time, bool) {
	if cfg.DefaultDropDate == nil {
		return time.Time{}, false
	}
	at, err := time.Parse("15:04", cfg.DropTime)
	if err != nil {
		return time.Time{}, false
	}
	d := cfg.DefaultDropDate.UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), at.Hour(), at.Minute(), 0, 0, time.UTC), true
}

func (u *dropCommands) notifyChanged(ctx context.Context, sess session.Session) {
	if err := u.notifier.DropsChanged(ctx, sess); err != nil {
		u.logger.Warn("lifecycle nudge failed", "shop", sess.Shop, "error", err)
	}
}
