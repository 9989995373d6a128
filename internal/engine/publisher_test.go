//go:build unit

package engine_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"dropdeck/internal/domain/drop"
	"dropdeck/internal/domain/session"
	"dropdeck/internal/engine"
	"dropdeck/internal/pkg/errs"
	"dropdeck/internal/usecase/readmodel"
	enginemock "dropdeck/tests/mock/engine"
)

var testSession = session.Session{Shop: "shop.example.com", AccessToken: "shpat_test"}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func activeRow(productID string) *readmodel.DropRM {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return &readmodel.DropRM{
		ID:              uuid.New(),
		Shop:            testSession.Shop,
		ProductID:       productID,
		Title:           "Hoodie",
		StartTime:       now,
		EndTime:         now.Add(time.Hour),
		DurationMinutes: 60,
		Status:          drop.StatusActive,
	}
}

type PublisherTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockStore   *enginemock.MockDropStore
	mockCatalog *enginemock.MockCatalogGateway
	publisher   *engine.Publisher
}

func (s *PublisherTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = enginemock.NewMockDropStore(s.mockCtrl)
	s.mockCatalog = enginemock.NewMockCatalogGateway(s.mockCtrl)
	s.publisher = engine.NewPublisher(s.mockStore, s.mockCatalog, engine.NewTestMetrics(), testLogger())
}

func (s *PublisherTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPublisherSuite(t *testing.T) {
	suite.Run(t, new(PublisherTestSuite))
}

func (s *PublisherTestSuite) expectPrime(instanceID, existing string, found bool) {
	s.mockCatalog.EXPECT().ShopOwnerID(gomock.Any(), testSession).Return("gid://shopify/Shop/1", nil)
	s.mockCatalog.EXPECT().LookupPublishedKey(gomock.Any(), testSession).Return(instanceID, existing, found, nil)
}

func (s *PublisherTestSuite) TestWritesHandleOfActiveDrop() {
	pc := &engine.PublisherCache{}

	s.mockStore.EXPECT().GetActive(gomock.Any(), testSession.Shop).Return(activeRow("123"), nil)
	s.mockCatalog.EXPECT().ResolveHandle(gomock.Any(), testSession, "123").Return("summer-hoodie", nil)
	s.expectPrime("900", "old-product", true)
	s.mockCatalog.EXPECT().WritePublishedKey(gomock.Any(), testSession, "900", "summer-hoodie").Return("900", nil)

	err := s.publisher.Publish(context.Background(), testSession, pc, false, engine.SourceTick)

	s.NoError(err)
	s.Equal("summer-hoodie", pc.LastPublished)
	s.Equal("900", pc.InstanceID)
	s.False(pc.LastWriteFailed)
}

func (s *PublisherTestSuite) TestSkipsWriteWhenValueUnchanged() {
	pc := &engine.PublisherCache{}

	s.mockStore.EXPECT().GetActive(gomock.Any(), testSession.Shop).Return(activeRow("123"), nil)
	s.mockCatalog.EXPECT().ResolveHandle(gomock.Any(), testSession, "123").Return("summer-hoodie", nil)
	// The existing key already holds the handle; the write is deduplicated.
	s.expectPrime("900", "summer-hoodie", true)

	err := s.publisher.Publish(context.Background(), testSession, pc, false, engine.SourceTick)

	s.NoError(err)
	s.Equal("summer-hoodie", pc.LastPublished)
}

func (s *PublisherTestSuite) TestForceBypassesDedup() {
	pc := &engine.PublisherCache{}

	s.mockStore.EXPECT().GetActive(gomock.Any(), testSession.Shop).Return(activeRow("123"), nil)
	s.mockCatalog.EXPECT().ResolveHandle(gomock.Any(), testSession, "123").Return("summer-hoodie", nil)
	s.expectPrime("900", "summer-hoodie", true)
	s.mockCatalog.EXPECT().WritePublishedKey(gomock.Any(), testSession, "900", "summer-hoodie").Return("900", nil)

	err := s.publisher.Publish(context.Background(), testSession, pc, true, engine.SourceTick)

	s.NoError(err)
}

func (s *PublisherTestSuite) TestNoActiveOnTickLeavesKeyUntouched() {
	pc := &engine.PublisherCache{}

	s.mockStore.EXPECT().GetActive(gomock.Any(), testSession.Shop).Return(nil, nil)

	err := s.publisher.Publish(context.Background(), testSession, pc, false, engine.SourceTick)

	s.NoError(err)
	s.Empty(pc.LastPublished)
}

func (s *PublisherTestSuite) TestStopAndClearWritesEmptyValue() {
	pc := &engine.PublisherCache{}

	s.mockStore.EXPECT().GetActive(gomock.Any(), testSession.Shop).Return(nil, nil)
	s.expectPrime("900", "summer-hoodie", true)
	s.mockCatalog.EXPECT().WritePublishedKey(gomock.Any(), testSession, "900", "").Return("900", nil)

	err := s.publisher.Publish(context.Background(), testSession, pc, false, engine.SourceStopAndClear)

	s.NoError(err)
	s.Empty(pc.LastPublished)
	s.False(pc.LastWriteFailed)
}

func (s *PublisherTestSuite) TestMissingHandleSkipsWrite() {
	pc := &engine.PublisherCache{}

	s.mockStore.EXPECT().GetActive(gomock.Any(), testSession.Shop).Return(activeRow("123"), nil)
	s.mockCatalog.EXPECT().ResolveHandle(gomock.Any(), testSession, "123").Return("", nil)

	err := s.publisher.Publish(context.Background(), testSession, pc, false, engine.SourceTick)

	s.NoError(err)
	s.Empty(pc.LastPublished)
}

func (s *PublisherTestSuite) TestFailedWriteRetriesNextPass() {
	pc := &engine.PublisherCache{}

	s.mockStore.EXPECT().GetActive(gomock.Any(), testSession.Shop).Return(activeRow("123"), nil)
	s.mockCatalog.EXPECT().ResolveHandle(gomock.Any(), testSession, "123").Return("summer-hoodie", nil)
	s.expectPrime("900", "", true)
	s.mockCatalog.EXPECT().WritePublishedKey(gomock.Any(), testSession, "900", "summer-hoodie").
		Return("", errs.New("boom"))

	err := s.publisher.Publish(context.Background(), testSession, pc, false, engine.SourceTick)
	s.Error(err)
	s.True(pc.LastWriteFailed)

	// Second pass: same value, but the failed flag forces the retry.
	s.mockStore.EXPECT().GetActive(gomock.Any(), testSession.Shop).Return(activeRow("123"), nil)
	s.mockCatalog.EXPECT().ResolveHandle(gomock.Any(), testSession, "123").Return("summer-hoodie", nil)
	s.mockCatalog.EXPECT().WritePublishedKey(gomock.Any(), testSession, "900", "summer-hoodie").Return("900", nil)

	err = s.publisher.Publish(context.Background(), testSession, pc, false, engine.SourceTick)
	s.NoError(err)
	s.False(pc.LastWriteFailed)
	s.Equal("summer-hoodie", pc.LastPublished)
}
