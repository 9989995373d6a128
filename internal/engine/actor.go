package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"dropdeck/internal/domain/session"
	"dropdeck/internal/pkg/config"
)

type actorCommand int

const (
	cmdNudge actorCommand = iota
	cmdClear
)

type actorMsg struct {
	cmd    actorCommand
	source string
	reply  chan error
}

// actor owns one shop's lifecycle: a single goroutine drains the mailbox and
// the tick timer. The publisher cache is shared with one-shot passes run by
// the registry, so every pass takes the shop's opMu.
type actor struct {
	sess    session.Session
	pc      *PublisherCache
	opMu    *sync.Mutex
	lc      *Lifecycle
	hub     *Hub
	cfg     config.EngineConfig
	logger  *slog.Logger
	mailbox chan actorMsg
	stop    chan struct{}
	done    chan struct{}
}

func newActor(sess session.Session, pc *PublisherCache, opMu *sync.Mutex, lc *Lifecycle, hub *Hub, cfg config.EngineConfig, logger *slog.Logger) *actor {
	return &actor{
		sess:    sess,
		pc:      pc,
		opMu:    opMu,
		lc:      lc,
		hub:     hub,
		cfg:     cfg,
		logger:  logger.With("shop", sess.Shop),
		mailbox: make(chan actorMsg, 8),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

func (a *actor) run() {
	defer close(a.done)

	ticker := time.NewTicker(a.cfg.TickInterval)
	defer ticker.Stop()
	heartbeat := time.NewTicker(a.cfg.HeartbeatInterval)
	defer heartbeat.Stop()

	a.logger.Debug("actor started")
	// Converge immediately so a new subscriber sees fresh state before the
	// first tick fires.
	a.pass(SourceTick)

	for {
		select {
		case <-a.stop:
			a.logger.Debug("actor stopped")
			return
		case <-ticker.C:
			a.pass(SourceTick)
		case <-heartbeat.C:
			a.hub.Broadcast(a.sess.Shop, Event{Type: EventHeartbeat})
		case msg := <-a.mailbox:
			var err error
			switch msg.cmd {
			case cmdNudge:
				err = a.pass(msg.source)
			case cmdClear:
				err = a.clear()
			}
			if msg.reply != nil {
				msg.reply <- err
			}
		}
	}
}

func (a *actor) pass(source string) error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.OpTimeout)
	defer cancel()

	a.opMu.Lock()
	defer a.opMu.Unlock()
	return a.lc.RunPass(ctx, a.sess, a.pc, source)
}

func (a *actor) clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.OpTimeout)
	defer cancel()

	a.opMu.Lock()
	defer a.opMu.Unlock()
	return a.lc.PublishClear(ctx, a.sess, a.pc)
}

// send enqueues a command without blocking; a full mailbox drops the command,
// which is safe because every pass converges from current store state.
func (a *actor) send(msg actorMsg) bool {
	select {
	case a.mailbox <- msg:
		return true
	case <-a.stop:
		return false
	default:
		return false
	}
}
