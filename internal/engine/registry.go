package engine

import (
	"context"
	"log/slog"
	"sync"

	"dropdeck/internal/domain/session"
	"dropdeck/internal/pkg/config"
	"dropdeck/internal/pkg/errs"
)

var ErrRegistryClosed = errs.New("engine registry is shut down")

// shopState survives actor restarts so the publisher cache keeps its dedup
// history while subscribers come and go. opMu serializes every pass that
// touches pc, whether it runs in the actor goroutine or as a one-shot.
type shopState struct {
	opMu  sync.Mutex
	pc    PublisherCache
	actor *actor
	refs  int
}

// Registry tracks one actor per shop with at least one event subscriber.
// Shops without subscribers get one-shot convergence passes on demand.
type Registry struct {
	mu      sync.Mutex
	shops   map[string]*shopState
	lc      *Lifecycle
	hub     *Hub
	cfg     config.EngineConfig
	metrics *Metrics
	logger  *slog.Logger
	wg      sync.WaitGroup
	closed  bool
}

func NewRegistry(lc *Lifecycle, hub *Hub, cfg config.EngineConfig, metrics *Metrics, logger *slog.Logger) *Registry {
	return &Registry{
		shops:   make(map[string]*shopState),
		lc:      lc,
		hub:     hub,
		cfg:     cfg,
		metrics: metrics,
		logger:  logger,
	}
}

func (r *Registry) state(shop string) *shopState {
	st, ok := r.shops[shop]
	if !ok {
		st = &shopState{}
		r.shops[shop] = st
	}
	return st
}

// Subscribe joins the shop's event room and guarantees an actor is ticking for
// it. The returned cancel releases both; the actor stops when the last
// subscriber leaves.
func (r *Registry) Subscribe(sess session.Session) (<-chan Event, func(), error) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, nil, ErrRegistryClosed
	}

	st := r.state(sess.Shop)
	st.refs++
	if st.actor == nil {
		st.actor = newActor(sess, &st.pc, &st.opMu, r.lc, r.hub, r.cfg, r.logger)
		r.metrics.ActiveActors.Inc()
		r.wg.Add(1)
		go func(a *actor) {
			defer r.wg.Done()
			a.run()
		}(st.actor)
	}
	r.mu.Unlock()

	events, leave := r.hub.Join(sess.Shop)

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			leave()
			r.release(sess.Shop)
		})
	}
	return events, cancel, nil
}

func (r *Registry) release(shop string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.shops[shop]
	if !ok {
		return
	}
	st.refs--
	if st.refs > 0 || st.actor == nil {
		return
	}
	close(st.actor.stop)
	st.actor = nil
	r.metrics.ActiveActors.Dec()
}

// Nudge requests an immediate convergence pass after a mutation. With an actor
// present the pass runs in its goroutine; otherwise a one-shot pass runs here,
// serialized per shop.
func (r *Registry) Nudge(ctx context.Context, sess session.Session, source string) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrRegistryClosed
	}
	st := r.state(sess.Shop)
	a := st.actor
	r.mu.Unlock()

	if a != nil {
		a.send(actorMsg{cmd: cmdNudge, source: source})
		return nil
	}

	st.opMu.Lock()
	defer st.opMu.Unlock()
	return r.lc.RunPass(ctx, sess, &st.pc, source)
}

// NotifyCleared pushes the empty value to the external key after a
// stop-and-clear wiped the shop's drops. Runs synchronously so the caller can
// report a publish failure.
func (r *Registry) NotifyCleared(ctx context.Context, sess session.Session) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrRegistryClosed
	}
	st := r.state(sess.Shop)
	a := st.actor
	r.mu.Unlock()

	if a != nil {
		reply := make(chan error, 1)
		if a.send(actorMsg{cmd: cmdClear, reply: reply}) {
			select {
			case err := <-reply:
				return err
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	st.opMu.Lock()
	defer st.opMu.Unlock()
	return r.lc.PublishClear(ctx, sess, &st.pc)
}

// DropsChanged and DropsCleared adapt the registry to the notifier port the
// command layer depends on. A mutation can reshape the drop lists without
// causing a status transition, in which case the pass broadcasts nothing, so
// the list refetch signals go out here.
func (r *Registry) DropsChanged(ctx context.Context, sess session.Session) error {
	err := r.Nudge(ctx, sess, SourceSchedule)
	r.hub.Broadcast(sess.Shop, Event{Type: EventScheduledDrops})
	r.hub.Broadcast(sess.Shop, Event{Type: EventCompletedDrops})
	return err
}

func (r *Registry) DropsCleared(ctx context.Context, sess session.Session) error {
	return r.NotifyCleared(ctx, sess)
}

// Shutdown stops every actor and waits for in-flight passes to finish.
func (r *Registry) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	for _, st := range r.shops {
		if st.actor != nil {
			close(st.actor.stop)
			st.actor = nil
			r.metrics.ActiveActors.Dec()
		}
	}
	r.mu.Unlock()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "engine shutdown timed out")
	}
}
