package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"dropdeck/internal/domain/drop"
	"dropdeck/internal/domain/session"
	"dropdeck/internal/domain/settings"
	"dropdeck/internal/infra/catalog"
	"dropdeck/internal/usecase/readmodel"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

type DropRepository interface {
	GetActive(ctx context.Context, shop string) (*readmodel.DropRM, error)
	ListQueuedProductRefs(ctx context.Context, shop string) (map[string]struct{}, error)
	QueueTailEnd(ctx context.Context, shop string) (time.Time, bool, error)
	Insert(ctx context.Context, d *drop.Drop) (*readmodel.DropRM, error)
	InsertBatch(ctx context.Context, ds []*drop.Drop) ([]*readmodel.DropRM, error)
	UpdateStatusCAS(ctx context.Context, id uuid.UUID, shop string, from, to drop.Status, startTime, endTime *time.Time) (*readmodel.DropRM, error)
	DeleteQueued(ctx context.Context, shop string, ids []uuid.UUID) (int64, error)
	DeleteAllQueued(ctx context.Context, shop string) (int64, error)
	DeleteCompleted(ctx context.Context, shop string) (int64, error)
}

type SettingsRepository interface {
	Get(ctx context.Context, shop string) (settings.Settings, error)
	Upsert(ctx context.Context, shop string, patch settings.Patch) (settings.Settings, error)
	ClearQueuedCollection(ctx context.Context, shop string) error
}

type CatalogGateway interface {
	ListActiveProducts(ctx context.Context, sess session.Session, collectionID string, limit int) ([]catalog.Product, error)
}

// LifecycleNotifier wakes the scheduling engine after a mutation. DropsChanged
// requests a convergence pass; DropsCleared additionally clears the external
// published key.
type LifecycleNotifier interface {
	DropsChanged(ctx context.Context, sess session.Session) error
	DropsCleared(ctx context.Context, sess session.Session) error
}
