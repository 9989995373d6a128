package queries

import (
	"context"

	"dropdeck/internal/domain/drop"
	"dropdeck/internal/domain/session"
	"dropdeck/internal/pkg/errs"
	"dropdeck/internal/usecase/readmodel"
)

var ErrInvalidStatus = errs.New("invalid drop status filter")

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// DropPage is one page of drops plus the exact total for the status filter.
type DropPage struct {
	Items      []*readmodel.DropRM
	TotalCount int64
	Page       int
	Limit      int
}

type DropQueries interface {
	List(ctx context.Context, sess session.Session, status drop.Status, page, limit int) (DropPage, error)
	Active(ctx context.Context, sess session.Session) (*readmodel.DropRM, error)
}

type dropQueries struct {
	drops DropReader
}

func NewDropQueries(drops DropReader) DropQueries {
	return &dropQueries{drops: drops}
}

func (q *dropQueries) List(ctx context.Context, sess session.Session, status drop.Status, page, limit int) (DropPage, error) {
	if !status.Valid() {
		return DropPage{}, ErrInvalidStatus
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	items, total, err := q.drops.List(ctx, sess.Shop, status, page, limit)
	if err != nil {
		return DropPage{}, err
	}
	return DropPage{Items: items, TotalCount: total, Page: page, Limit: limit}, nil
}

func (q *dropQueries) Active(ctx context.Context, sess session.Session) (*readmodel.DropRM, error) {
	return q.drops.GetActive(ctx, sess.Shop)
}
