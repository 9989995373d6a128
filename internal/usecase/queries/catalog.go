package queries

import (
	"context"

	"dropdeck/internal/domain/session"
	"dropdeck/internal/infra/catalog"
)

type CatalogQueries interface {
	Collections(ctx context.Context, sess session.Session) ([]catalog.Collection, error)
	CollectionProducts(ctx context.Context, sess session.Session, collectionID string, limit int) ([]catalog.Product, error)
}

type catalogQueries struct {
	catalog CatalogReader
}

func NewCatalogQueries(reader CatalogReader) CatalogQueries {
	return &catalogQueries{catalog: reader}
}

func (q *catalogQueries) Collections(ctx context.Context, sess session.Session) ([]catalog.Collection, error) {
	return q.catalog.ListCollections(ctx, sess)
}

func (q *catalogQueries) CollectionProducts(ctx context.Context, sess session.Session, collectionID string, limit int) ([]catalog.Product, error) {
	return q.catalog.ListActiveProducts(ctx, sess, collectionID, limit)
}
