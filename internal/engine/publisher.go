package engine

import (
	"context"
	"log/slog"

	"dropdeck/internal/domain/session"
)

// Publish sources. Only an explicit stop-and-clear may write the empty value;
// a tick that finds no active drop leaves the key untouched.
const (
	SourceTick         = "tick"
	SourceSchedule     = "schedule"
	SourceStopAndClear = "stop_and_clear"
)

// PublisherCache is the per-shop in-memory record of the external key. It is
// rebuilt lazily after process start; owner and instance ids are resolved once
// and reused for every subsequent write.
type PublisherCache struct {
	OwnerID         string
	InstanceID      string
	LastPublished   string
	LastWriteFailed bool
	primed          bool
}

// Publisher converges the external published key onto the currently active
// drop's handle.
type Publisher struct {
	drops   DropStore
	catalog CatalogGateway
	metrics *Metrics
	logger  *slog.Logger
}

func NewPublisher(drops DropStore, catalog CatalogGateway, metrics *Metrics, logger *slog.Logger) *Publisher {
	return &Publisher{drops: drops, catalog: catalog, metrics: metrics, logger: logger}
}

// Publish reads the active drop, resolves its handle and writes it to the
// external key when it differs from the last published value. force bypasses
// the dedup check; a failed previous write also forces a retry. The empty
// value is written only for the stop-and-clear source.
func (p *Publisher) Publish(ctx context.Context, sess session.Session, pc *PublisherCache, force bool, source string) error {
	active, err := p.drops.GetActive(ctx, sess.Shop)
	if err != nil {
		return err
	}

	var value string
	switch {
	case active != nil:
		handle, err := p.catalog.ResolveHandle(ctx, sess, active.ProductID)
		if err != nil {
			pc.LastWriteFailed = true
			p.metrics.PublishWrites.WithLabelValues("resolve_error").Inc()
			return err
		}
		if handle == "" {
			p.logger.Warn("active drop has no resolvable handle, key left untouched",
				"shop", sess.Shop, "product_id", active.ProductID)
			p.metrics.PublishWrites.WithLabelValues("missing_handle").Inc()
			return nil
		}
		value = handle
	case source == SourceStopAndClear:
		value = ""
	default:
		return nil
	}

	if err := p.prime(ctx, sess, pc); err != nil {
		pc.LastWriteFailed = true
		p.metrics.PublishWrites.WithLabelValues("prime_error").Inc()
		return err
	}

	if !force && !pc.LastWriteFailed && value == pc.LastPublished {
		return nil
	}

	instanceID, err := p.catalog.WritePublishedKey(ctx, sess, pc.InstanceID, value)
	if err != nil {
		pc.LastWriteFailed = true
		p.metrics.PublishWrites.WithLabelValues("write_error").Inc()
		return err
	}

	pc.InstanceID = instanceID
	pc.LastPublished = value
	pc.LastWriteFailed = false
	p.metrics.PublishWrites.WithLabelValues("ok").Inc()
	p.logger.Info("published key updated", "shop", sess.Shop, "value", value, "source", source)
	return nil
}

// prime resolves the owner id and any existing key instance on first use. The
// existing value seeds LastPublished so a restart does not rewrite an
// unchanged key.
func (p *Publisher) prime(ctx context.Context, sess session.Session, pc *PublisherCache) error {
	if pc.primed {
		return nil
	}

	ownerID, err := p.catalog.ShopOwnerID(ctx, sess)
	if err != nil {
		return err
	}
	instanceID, existing, found, err := p.catalog.LookupPublishedKey(ctx, sess)
	if err != nil {
		return err
	}

	pc.OwnerID = ownerID
	if found {
		pc.InstanceID = instanceID
		pc.LastPublished = existing
	}
	pc.primed = true
	return nil
}
