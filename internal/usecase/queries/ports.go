package queries

import (
	"context"

	"dropdeck/internal/domain/drop"
	"dropdeck/internal/domain/session"
	"dropdeck/internal/domain/settings"
	"dropdeck/internal/infra/catalog"
	"dropdeck/internal/usecase/readmodel"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/queries/ports.go -package=queriesmock

type DropReader interface {
	List(ctx context.Context, shop string, status drop.Status, page, limit int) ([]*readmodel.DropRM, int64, error)
	GetActive(ctx context.Context, shop string) (*readmodel.DropRM, error)
}

type SettingsReader interface {
	Get(ctx context.Context, shop string) (settings.Settings, error)
}

type CatalogReader interface {
	ListCollections(ctx context.Context, sess session.Session) ([]catalog.Collection, error)
	ListActiveProducts(ctx context.Context, sess session.Session, collectionID string, limit int) ([]catalog.Product, error)
}
