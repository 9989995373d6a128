package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"dropdeck/internal/domain/drop"
	"dropdeck/internal/domain/session"
	"dropdeck/internal/usecase/readmodel"
)

//go:generate mockgen -source=ports.go -destination=../../tests/mock/engine/ports.go -package=enginemock

// DropStore is the slice of the store gateway the lifecycle loop needs.
type DropStore interface {
	GetActive(ctx context.Context, shop string) (*readmodel.DropRM, error)
	ListDueQueued(ctx context.Context, shop string, now time.Time) ([]*readmodel.DropRM, error)
	ListExpiredActive(ctx context.Context, shop string, now time.Time) ([]*readmodel.DropRM, error)
	UpdateStatusCAS(ctx context.Context, id uuid.UUID, shop string, from, to drop.Status, startTime, endTime *time.Time) (*readmodel.DropRM, error)
}

// CatalogGateway is the slice of the catalog the publisher needs.
type CatalogGateway interface {
	ResolveHandle(ctx context.Context, sess session.Session, productID string) (string, error)
	ShopOwnerID(ctx context.Context, sess session.Session) (string, error)
	LookupPublishedKey(ctx context.Context, sess session.Session) (instanceID, value string, found bool, err error)
	WritePublishedKey(ctx context.Context, sess session.Session, instanceID, value string) (string, error)
}

// EventSink receives status-change events alongside in-process subscribers;
// the kafka sink implements it, NopSink when no broker is configured.
type EventSink interface {
	Publish(ctx context.Context, shop string, ev Event) error
}

type NopSink struct{}

func (NopSink) Publish(context.Context, string, Event) error { return nil }
