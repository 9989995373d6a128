//go:build unit

package engine_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"dropdeck/internal/engine"
	"dropdeck/internal/pkg/clock"
	"dropdeck/internal/pkg/config"
	"dropdeck/internal/usecase/readmodel"
	enginemock "dropdeck/tests/mock/engine"
)

type RegistryTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockStore   *enginemock.MockDropStore
	mockCatalog *enginemock.MockCatalogGateway
	hub         *engine.Hub
	registry    *engine.Registry
}

func (s *RegistryTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = enginemock.NewMockDropStore(s.mockCtrl)
	s.mockCatalog = enginemock.NewMockCatalogGateway(s.mockCtrl)
	s.hub = engine.NewHub()

	metrics := engine.NewTestMetrics()
	publisher := engine.NewPublisher(s.mockStore, s.mockCatalog, metrics, testLogger())
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	lc := engine.NewLifecycle(s.mockStore, publisher, s.hub, engine.NopSink{}, metrics, clk, testLogger())

	// Long intervals keep the timers quiet so the tests drive every pass.
	cfg := config.EngineConfig{
		TickInterval:      time.Hour,
		HeartbeatInterval: time.Hour,
		OpTimeout:         5 * time.Second,
	}
	s.registry = engine.NewRegistry(lc, s.hub, cfg, metrics, testLogger())
}

func (s *RegistryTestSuite) TearDownTest() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.NoError(s.registry.Shutdown(ctx))
	s.mockCtrl.Finish()
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

// One-shot nudges racing a freshly subscribed actor share the same publisher
// cache; both paths must hold the shop's pass lock.
func (s *RegistryTestSuite) TestConcurrentNudgeAndSubscribeSerializePasses() {
	var inFlight int32
	var overlapped int32

	s.mockStore.EXPECT().GetActive(gomock.Any(), testSession.Shop).
		DoAndReturn(func(context.Context, string) (*readmodel.DropRM, error) {
			if atomic.AddInt32(&inFlight, 1) > 1 {
				atomic.AddInt32(&overlapped, 1)
			}
			time.Sleep(2 * time.Millisecond)
			atomic.AddInt32(&inFlight, -1)
			return nil, nil
		}).AnyTimes()
	s.mockStore.EXPECT().ListDueQueued(gomock.Any(), testSession.Shop, gomock.Any()).Return(nil, nil).AnyTimes()
	s.mockStore.EXPECT().ListExpiredActive(gomock.Any(), testSession.Shop, gomock.Any()).Return(nil, nil).AnyTimes()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.NoError(s.registry.Nudge(context.Background(), testSession, engine.SourceSchedule))
		}()
	}

	// Starting the actor mid-nudge runs its initial pass concurrently with
	// the one-shots.
	_, cancel, err := s.registry.Subscribe(testSession)
	s.Require().NoError(err)
	wg.Wait()
	cancel()

	s.Zero(atomic.LoadInt32(&overlapped), "passes for one shop ran concurrently")
}

// A mutation that causes no status transition still tells subscribers to
// refetch the drop lists.
func (s *RegistryTestSuite) TestDropsChangedSignalsListRefetch() {
	s.mockStore.EXPECT().GetActive(gomock.Any(), testSession.Shop).Return(nil, nil).AnyTimes()
	s.mockStore.EXPECT().ListDueQueued(gomock.Any(), testSession.Shop, gomock.Any()).Return(nil, nil).AnyTimes()
	s.mockStore.EXPECT().ListExpiredActive(gomock.Any(), testSession.Shop, gomock.Any()).Return(nil, nil).AnyTimes()

	events, cancel, err := s.registry.Subscribe(testSession)
	s.Require().NoError(err)
	defer cancel()

	s.Require().NoError(s.registry.DropsChanged(context.Background(), testSession))

	seen := map[string]bool{}
	deadline := time.After(2 * time.Second)
	for !seen[engine.EventScheduledDrops] || !seen[engine.EventCompletedDrops] {
		select {
		case ev := <-events:
			seen[ev.Type] = true
		case <-deadline:
			s.FailNowf("timed out", "waiting for refetch events, saw %v", seen)
		}
	}
}
