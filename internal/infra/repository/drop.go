package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"dropdeck/internal/domain/drop"
	"dropdeck/internal/infra"
	"dropdeck/internal/usecase/readmodel"
)

const dropColumns = `id, shop, product_id, title, thumbnail_url, start_time, end_time, duration_minutes, status, created_at`

type DropRepository struct {
	db *pgxpool.Pool
}

func NewDropRepository(db *pgxpool.Pool) *DropRepository {
	return &DropRepository{db: db}
}

func scanDrop(row pgx.Row) (*readmodel.DropRM, error) {
	var rm readmodel.DropRM
	var status string
	err := row.Scan(
		&rm.ID, &rm.Shop, &rm.ProductID, &rm.Title, &rm.ThumbnailURL,
		&rm.StartTime, &rm.EndTime, &rm.DurationMinutes, &status, &rm.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	rm.Status = drop.Status(status)
	return &rm, nil
}

func isDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// List returns one page of a shop's drops in the given status plus the exact
// total count. Active and queued drops are ordered by start time ascending,
// completed drops by end time descending (most recently finished first).
func (r *DropRepository) List(ctx context.Context, shop string, status drop.Status, page, limit int) ([]*readmodel.DropRM, int64, error) {
	order := "start_time ASC"
	if status == drop.StatusCompleted {
		order = "end_time DESC"
	}
	offset := (page - 1) * limit

	rows, err := r.db.Query(ctx,
		`SELECT `+dropColumns+` FROM drops WHERE shop = $1 AND status = $2 ORDER BY `+order+` LIMIT $3 OFFSET $4`,
		shop, string(status), limit, offset,
	)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list drops", err)
	}
	defer rows.Close()

	var result []*readmodel.DropRM
	for rows.Next() {
		rm, scanErr := scanDrop(rows)
		if scanErr != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan drop row", scanErr)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to read drop rows", err)
	}

	var total int64
	err = r.db.QueryRow(ctx,
		`SELECT count(*) FROM drops WHERE shop = $1 AND status = $2`,
		shop, string(status),
	).Scan(&total)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count drops", err)
	}

	return result, total, nil
}

// GetActive returns the shop's active drop, or nil when none. The partial
// unique index guarantees at most one row.
func (r *DropRepository) GetActive(ctx context.Context, shop string) (*readmodel.DropRM, error) {
	rm, err := scanDrop(r.db.QueryRow(ctx,
		`SELECT `+dropColumns+` FROM drops WHERE shop = $1 AND status = 'active' LIMIT 1`,
		shop,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get active drop", err)
	}
	return rm, nil
}

// ListDueQueued returns queued drops whose scheduled start has passed, earliest first.
func (r *DropRepository) ListDueQueued(ctx context.Context, shop string, now time.Time) ([]*readmodel.DropRM, error) {
	return r.listByStatusBoundary(ctx, shop, drop.StatusQueued, "start_time", now, "start_time ASC")
}

// ListExpiredActive returns active drops whose window has elapsed.
func (r *DropRepository) ListExpiredActive(ctx context.Context, shop string, now time.Time) ([]*readmodel.DropRM, error) {
	return r.listByStatusBoundary(ctx, shop, drop.StatusActive, "end_time", now, "end_time ASC")
}

func (r *DropRepository) listByStatusBoundary(ctx context.Context, shop string, status drop.Status, column string, now time.Time, order string) ([]*readmodel.DropRM, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+dropColumns+` FROM drops WHERE shop = $1 AND status = $2 AND `+column+` <= $3 ORDER BY `+order,
		shop, string(status), now.UTC(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list due drops", err)
	}
	defer rows.Close()

	var result []*readmodel.DropRM
	for rows.Next() {
		rm, scanErr := scanDrop(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan drop row", scanErr)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read drop rows", err)
	}
	return result, nil
}

// ListQueuedProductRefs returns the product references currently queued or
// active for the shop; the scheduler uses it for batch deduplication so a new
// batch never collides with the pending uniqueness index.
func (r *DropRepository) ListQueuedProductRefs(ctx context.Context, shop string) (map[string]struct{}, error) {
	rows, err := r.db.Query(ctx,
		`SELECT product_id FROM drops WHERE shop = $1 AND status IN ('queued', 'active')`,
		shop,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list queued product refs", err)
	}
	defer rows.Close()

	refs := make(map[string]struct{})
	for rows.Next() {
		var id string
		if scanErr := rows.Scan(&id); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan product ref", scanErr)
		}
		refs[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read product refs", err)
	}
	return refs, nil
}

// QueueTailEnd returns max(end_time) over the shop's queued drops; ok is false
// when the queue is empty.
func (r *DropRepository) QueueTailEnd(ctx context.Context, shop string) (time.Time, bool, error) {
	var tail *time.Time
	err := r.db.QueryRow(ctx,
		`SELECT max(end_time) FROM drops WHERE shop = $1 AND status = 'queued'`,
		shop,
	).Scan(&tail)
	if err != nil {
		return time.Time{}, false, infra.WrapRepoErr("failed to get queue tail", err)
	}
	if tail == nil {
		return time.Time{}, false, nil
	}
	return *tail, true, nil
}

func (r *DropRepository) Insert(ctx context.Context, d *drop.Drop) (*readmodel.DropRM, error) {
	rm, err := scanDrop(r.db.QueryRow(ctx,
		`INSERT INTO drops (id, shop, product_id, title, thumbnail_url, start_time, end_time, duration_minutes, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+dropColumns,
		d.ID(), d.Shop(), d.ProductID(), d.Title(), d.ThumbnailURL(),
		d.StartTime(), d.EndTime(), d.DurationMinutes(), string(d.Status()),
	))
	if err != nil {
		if isDuplicateKey(err) {
			return nil, infra.WrapRepoErr("product already queued for shop", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to insert drop", err)
	}
	return rm, nil
}

// InsertBatch inserts the whole scheduler batch in one transaction; any per-row
// conflict aborts the batch.
func (r *DropRepository) InsertBatch(ctx context.Context, ds []*drop.Drop) ([]*readmodel.DropRM, error) {
	if len(ds) == 0 {
		return nil, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to begin batch insert", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	batch := &pgx.Batch{}
	for _, d := range ds {
		batch.Queue(
			`INSERT INTO drops (id, shop, product_id, title, thumbnail_url, start_time, end_time, duration_minutes, status)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			 RETURNING `+dropColumns,
			d.ID(), d.Shop(), d.ProductID(), d.Title(), d.ThumbnailURL(),
			d.StartTime(), d.EndTime(), d.DurationMinutes(), string(d.Status()),
		)
	}

	br := tx.SendBatch(ctx, batch)
	result := make([]*readmodel.DropRM, 0, len(ds))
	for range ds {
		rm, scanErr := scanDrop(br.QueryRow())
		if scanErr != nil {
			_ = br.Close()
			if isDuplicateKey(scanErr) {
				return nil, infra.WrapRepoErr("batch contains an already queued product", scanErr, infra.KindDuplicateKey)
			}
			return nil, infra.WrapRepoErr("failed to insert drop batch", scanErr)
		}
		result = append(result, rm)
	}
	if err := br.Close(); err != nil {
		return nil, infra.WrapRepoErr("failed to close drop batch", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, infra.WrapRepoErr("failed to commit drop batch", err)
	}
	return result, nil
}

// UpdateStatusCAS performs a compare-and-set status transition. When startTime
// or endTime is non-nil the corresponding column is rewritten (promotion resets
// the window to the promotion instant). Returns nil without error when the
// precondition no longer holds — a concurrent promoter won.
func (r *DropRepository) UpdateStatusCAS(ctx context.Context, id uuid.UUID, shop string, from, to drop.Status, startTime, endTime *time.Time) (*readmodel.DropRM, error) {
	rm, err := scanDrop(r.db.QueryRow(ctx,
		`UPDATE drops
		 SET status = $1,
		     start_time = COALESCE($2, start_time),
		     end_time = COALESCE($3, end_time)
		 WHERE id = $4 AND shop = $5 AND status = $6
		 RETURNING `+dropColumns,
		string(to), startTime, endTime, id, shop, string(from),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to update drop status", err)
	}
	return rm, nil
}

// DeleteQueued removes the given ids as long as they are still queued; rows in
// other statuses are silently skipped.
func (r *DropRepository) DeleteQueued(ctx context.Context, shop string, ids []uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM drops WHERE shop = $1 AND id = ANY($2) AND status = 'queued'`,
		shop, ids,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete queued drops", err)
	}
	return tag.RowsAffected(), nil
}

func (r *DropRepository) DeleteAllQueued(ctx context.Context, shop string) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM drops WHERE shop = $1 AND status = 'queued'`,
		shop,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to clear queued drops", err)
	}
	return tag.RowsAffected(), nil
}

func (r *DropRepository) DeleteCompleted(ctx context.Context, shop string) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM drops WHERE shop = $1 AND status = 'completed'`,
		shop,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to clear completed drops", err)
	}
	return tag.RowsAffected(), nil
}
