package engine

import (
	"context"
	"log/slog"
	"time"

	"dropdeck/internal/domain/drop"
	"dropdeck/internal/domain/session"
	"dropdeck/internal/pkg/clock"
	"dropdeck/internal/usecase/readmodel"
)

// Lifecycle runs a single convergence pass for one shop: promote the earliest
// due queued drop when no drop is active, complete expired actives, then push
// the active handle to the external key and notify subscribers.
type Lifecycle struct {
	drops     DropStore
	publisher *Publisher
	hub       *Hub
	sink      EventSink
	metrics   *Metrics
	clock     clock.Clock
	logger    *slog.Logger
}

func NewLifecycle(drops DropStore, publisher *Publisher, hub *Hub, sink EventSink, metrics *Metrics, clk clock.Clock, logger *slog.Logger) *Lifecycle {
	return &Lifecycle{
		drops:     drops,
		publisher: publisher,
		hub:       hub,
		sink:      sink,
		metrics:   metrics,
		clock:     clk,
		logger:    logger,
	}
}

// RunPass executes one pass. Transitions that succeed are kept even when the
// subsequent key publish fails; the publish is retried on the next pass.
func (l *Lifecycle) RunPass(ctx context.Context, sess session.Session, pc *PublisherCache, source string) error {
	started := time.Now()
	defer func() {
		l.metrics.TickDuration.Observe(time.Since(started).Seconds())
	}()

	now := l.clock.Now().UTC()

	promoted, err := l.promote(ctx, sess.Shop, now)
	if err != nil {
		l.metrics.TickErrors.Inc()
		return err
	}
	completed, err := l.complete(ctx, sess.Shop, now)
	if err != nil {
		l.metrics.TickErrors.Inc()
		return err
	}

	pubErr := l.publisher.Publish(ctx, sess, pc, false, source)
	if pubErr != nil {
		l.logger.Error("publish failed, will retry next pass", "shop", sess.Shop, "error", pubErr)
	}

	l.broadcast(sess.Shop, now, promoted, completed)

	if pubErr != nil {
		l.metrics.TickErrors.Inc()
	}
	return pubErr
}

// PublishClear writes the empty value to the external key after a
// stop-and-clear wiped the shop's drops, then tells subscribers to refetch.
func (l *Lifecycle) PublishClear(ctx context.Context, sess session.Session, pc *PublisherCache) error {
	err := l.publisher.Publish(ctx, sess, pc, false, SourceStopAndClear)

	now := l.clock.Now().UTC()
	l.hub.Broadcast(sess.Shop, Event{Type: EventActiveDrop})
	l.hub.Broadcast(sess.Shop, Event{Type: EventRefreshNeeded})
	l.emitStatusChange(sess.Shop, StatusChange{Type: ChangeCleared, Timestamp: now})
	return err
}

// promote activates the earliest due queued drop. Only one drop may be active
// at a time; the window is re-anchored to the promotion instant so a drop
// scheduled in the past still gets its full duration. A compare-and-set miss
// means another instance won the race and is not an error.
func (l *Lifecycle) promote(ctx context.Context, shop string, now time.Time) (*readmodel.DropRM, error) {
	active, err := l.drops.GetActive(ctx, shop)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, nil
	}

	due, err := l.drops.ListDueQueued(ctx, shop, now)
	if err != nil {
		return nil, err
	}
	if len(due) == 0 {
		return nil, nil
	}

	next := due[0]
	startTime := now
	endTime := now.Add(time.Duration(next.DurationMinutes) * time.Minute)
	row, err := l.drops.UpdateStatusCAS(ctx, next.ID, shop, drop.StatusQueued, drop.StatusActive, &startTime, &endTime)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}

	l.metrics.Promotions.Inc()
	l.logger.Info("drop promoted", "shop", shop, "drop_id", row.ID, "product_id", row.ProductID, "end_time", row.EndTime)
	return row, nil
}

// complete finishes every active drop whose window has passed. The stored end
// time is kept as the completion boundary.
func (l *Lifecycle) complete(ctx context.Context, shop string, now time.Time) ([]*readmodel.DropRM, error) {
	expired, err := l.drops.ListExpiredActive(ctx, shop, now)
	if err != nil {
		return nil, err
	}

	var done []*readmodel.DropRM
	for _, d := range expired {
		row, err := l.drops.UpdateStatusCAS(ctx, d.ID, shop, drop.StatusActive, drop.StatusCompleted, nil, nil)
		if err != nil {
			return done, err
		}
		if row == nil {
			continue
		}
		l.metrics.Completions.Inc()
		l.logger.Info("drop completed", "shop", shop, "drop_id", row.ID, "product_id", row.ProductID)
		done = append(done, row)
	}
	return done, nil
}

func (l *Lifecycle) broadcast(shop string, now time.Time, promoted *readmodel.DropRM, completed []*readmodel.DropRM) {
	if promoted == nil && len(completed) == 0 {
		return
	}

	if promoted != nil {
		l.emitStatusChange(shop, StatusChange{
			Type:      ChangePromoted,
			ID:        promoted.ID.String(),
			Title:     promoted.Title,
			Timestamp: now,
		})
	}
	for _, d := range completed {
		l.emitStatusChange(shop, StatusChange{
			Type:      ChangeCompleted,
			ID:        d.ID.String(),
			Title:     d.Title,
			Timestamp: now,
		})
	}

	// List events carry no payload; subscribers refetch through the API.
	l.hub.Broadcast(shop, Event{Type: EventActiveDrop, Payload: promoted})
	l.hub.Broadcast(shop, Event{Type: EventScheduledDrops})
	if len(completed) > 0 {
		l.hub.Broadcast(shop, Event{Type: EventCompletedDrops})
	}
}

func (l *Lifecycle) emitStatusChange(shop string, change StatusChange) {
	ev := Event{Type: EventStatusChange, Payload: change}
	l.hub.Broadcast(shop, ev)

	// Sink delivery is best effort; losing a broker event must not stall ticks.
	sinkCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := l.sink.Publish(sinkCtx, shop, ev); err != nil {
		l.logger.Warn("event sink publish failed", "shop", shop, "error", err)
	}
}
