//go:build unit

package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"dropdeck/internal/domain/drop"
	"dropdeck/internal/engine"
	"dropdeck/internal/pkg/clock"
	"dropdeck/internal/usecase/readmodel"
	enginemock "dropdeck/tests/mock/engine"
)

type LifecycleTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockStore   *enginemock.MockDropStore
	mockCatalog *enginemock.MockCatalogGateway
	hub         *engine.Hub
	clk         *clock.MockClock
	lifecycle   *engine.Lifecycle
	now         time.Time
}

func (s *LifecycleTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = enginemock.NewMockDropStore(s.mockCtrl)
	s.mockCatalog = enginemock.NewMockCatalogGateway(s.mockCtrl)
	s.hub = engine.NewHub()
	s.now = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	s.clk = clock.NewMockClock(s.now)

	metrics := engine.NewTestMetrics()
	publisher := engine.NewPublisher(s.mockStore, s.mockCatalog, metrics, testLogger())
	s.lifecycle = engine.NewLifecycle(s.mockStore, publisher, s.hub, engine.NopSink{}, metrics, s.clk, testLogger())
}

func (s *LifecycleTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLifecycleSuite(t *testing.T) {
	suite.Run(t, new(LifecycleTestSuite))
}

func queuedRow(productID string, start time.Time, durationMinutes int) *readmodel.DropRM {
	return &readmodel.DropRM{
		ID:              uuid.New(),
		Shop:            testSession.Shop,
		ProductID:       productID,
		Title:           "Drop " + productID,
		StartTime:       start,
		EndTime:         start.Add(time.Duration(durationMinutes) * time.Minute),
		DurationMinutes: durationMinutes,
		Status:          drop.StatusQueued,
	}
}

func drainEvents(ch <-chan engine.Event) []engine.Event {
	var out []engine.Event
	for {
		select {
		case ev := <-ch:
			out = append(out, ev)
		default:
			return out
		}
	}
}

func eventTypes(evs []engine.Event) []string {
	out := make([]string, len(evs))
	for i, ev := range evs {
		out[i] = ev.Type
	}
	return out
}

func (s *LifecycleTestSuite) TestPromotesEarliestDueDrop() {
	due := queuedRow("123", s.now.Add(-time.Minute), 60)
	promoted := *due
	promoted.Status = drop.StatusActive
	promoted.StartTime = s.now
	promoted.EndTime = s.now.Add(time.Hour)

	s.mockStore.EXPECT().GetActive(gomock.Any(), testSession.Shop).Return(nil, nil)
	s.mockStore.EXPECT().ListDueQueued(gomock.Any(), testSession.Shop, s.now).Return([]*readmodel.DropRM{due}, nil)
	s.mockStore.EXPECT().
		UpdateStatusCAS(gomock.Any(), due.ID, testSession.Shop, drop.StatusQueued, drop.StatusActive, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, _, _ drop.Status, startTime, endTime *time.Time) (*readmodel.DropRM, error) {
			s.Require().NotNil(startTime)
			s.Require().NotNil(endTime)
			s.Equal(s.now, *startTime)
			s.Equal(s.now.Add(time.Hour), *endTime)
			return &promoted, nil
		})
	s.mockStore.EXPECT().ListExpiredActive(gomock.Any(), testSession.Shop, s.now).Return(nil, nil)

	// Publish converges onto the freshly promoted drop.
	s.mockStore.EXPECT().GetActive(gomock.Any(), testSession.Shop).Return(&promoted, nil)
	s.mockCatalog.EXPECT().ResolveHandle(gomock.Any(), testSession, "123").Return("drop-123", nil)
	s.mockCatalog.EXPECT().ShopOwnerID(gomock.Any(), testSession).Return("gid://shopify/Shop/1", nil)
	s.mockCatalog.EXPECT().LookupPublishedKey(gomock.Any(), testSession).Return("", "", false, nil)
	s.mockCatalog.EXPECT().WritePublishedKey(gomock.Any(), testSession, "", "drop-123").Return("900", nil)

	events, leave := s.hub.Join(testSession.Shop)
	defer leave()

	pc := &engine.PublisherCache{}
	err := s.lifecycle.RunPass(context.Background(), testSession, pc, engine.SourceTick)

	s.NoError(err)
	s.Equal("drop-123", pc.LastPublished)
	types := eventTypes(drainEvents(events))
	s.Contains(types, engine.EventStatusChange)
	s.Contains(types, engine.EventActiveDrop)
	s.Contains(types, engine.EventScheduledDrops)
}

func (s *LifecycleTestSuite) TestDoesNotPromoteWhileAnotherDropIsActive() {
	active := activeRow("777")

	s.mockStore.EXPECT().GetActive(gomock.Any(), testSession.Shop).Return(active, nil)
	s.mockStore.EXPECT().ListExpiredActive(gomock.Any(), testSession.Shop, s.now).Return(nil, nil)

	// Publish sees the same active drop; key already up to date.
	s.mockStore.EXPECT().GetActive(gomock.Any(), testSession.Shop).Return(active, nil)
	s.mockCatalog.EXPECT().ResolveHandle(gomock.Any(), testSession, "777").Return("drop-777", nil)
	s.mockCatalog.EXPECT().ShopOwnerID(gomock.Any(), testSession).Return("gid://shopify/Shop/1", nil)
	s.mockCatalog.EXPECT().LookupPublishedKey(gomock.Any(), testSession).Return("900", "drop-777", true, nil)

	pc := &engine.PublisherCache{}
	err := s.lifecycle.RunPass(context.Background(), testSession, pc, engine.SourceTick)

	s.NoError(err)
}

func (s *LifecycleTestSuite) TestCompletesExpiredActiveDrop() {
	expired := activeRow("777")
	expired.EndTime = s.now.Add(-time.Minute)
	completed := *expired
	completed.Status = drop.StatusCompleted

	s.mockStore.EXPECT().GetActive(gomock.Any(), testSession.Shop).Return(expired, nil)
	s.mockStore.EXPECT().ListExpiredActive(gomock.Any(), testSession.Shop, s.now).Return([]*readmodel.DropRM{expired}, nil)
	s.mockStore.EXPECT().
		UpdateStatusCAS(gomock.Any(), expired.ID, testSession.Shop, drop.StatusActive, drop.StatusCompleted, nil, nil).
		Return(&completed, nil)

	// No active drop remains and the source is a tick, so the key keeps its
	// last value.
	s.mockStore.EXPECT().GetActive(gomock.Any(), testSession.Shop).Return(nil, nil)

	events, leave := s.hub.Join(testSession.Shop)
	defer leave()

	pc := &engine.PublisherCache{LastPublished: "drop-777"}
	err := s.lifecycle.RunPass(context.Background(), testSession, pc, engine.SourceTick)

	s.NoError(err)
	s.Equal("drop-777", pc.LastPublished)
	types := eventTypes(drainEvents(events))
	s.Contains(types, engine.EventStatusChange)
	s.Contains(types, engine.EventCompletedDrops)
}

func (s *LifecycleTestSuite) TestLostPromotionRaceIsNotAnError() {
	due := queuedRow("123", s.now.Add(-time.Minute), 60)

	s.mockStore.EXPECT().GetActive(gomock.Any(), testSession.Shop).Return(nil, nil)
	s.mockStore.EXPECT().ListDueQueued(gomock.Any(), testSession.Shop, s.now).Return([]*readmodel.DropRM{due}, nil)
	s.mockStore.EXPECT().
		UpdateStatusCAS(gomock.Any(), due.ID, testSession.Shop, drop.StatusQueued, drop.StatusActive, gomock.Any(), gomock.Any()).
		Return(nil, nil)
	s.mockStore.EXPECT().ListExpiredActive(gomock.Any(), testSession.Shop, s.now).Return(nil, nil)
	s.mockStore.EXPECT().GetActive(gomock.Any(), testSession.Shop).Return(nil, nil)

	events, leave := s.hub.Join(testSession.Shop)
	defer leave()

	pc := &engine.PublisherCache{}
	err := s.lifecycle.RunPass(context.Background(), testSession, pc, engine.SourceTick)

	s.NoError(err)
	s.Empty(drainEvents(events))
}

func (s *LifecycleTestSuite) TestPublishClearBroadcastsRefresh() {
	s.mockStore.EXPECT().GetActive(gomock.Any(), testSession.Shop).Return(nil, nil)
	s.mockCatalog.EXPECT().ShopOwnerID(gomock.Any(), testSession).Return("gid://shopify/Shop/1", nil)
	s.mockCatalog.EXPECT().LookupPublishedKey(gomock.Any(), testSession).Return("900", "drop-777", true, nil)
	s.mockCatalog.EXPECT().WritePublishedKey(gomock.Any(), testSession, "900", "").Return("900", nil)

	events, leave := s.hub.Join(testSession.Shop)
	defer leave()

	pc := &engine.PublisherCache{}
	err := s.lifecycle.PublishClear(context.Background(), testSession, pc)

	s.NoError(err)
	types := eventTypes(drainEvents(events))
	s.Contains(types, engine.EventRefreshNeeded)
	s.Contains(types, engine.EventStatusChange)
}
