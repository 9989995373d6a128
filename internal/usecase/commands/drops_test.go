//go:build unit

package commands_test

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
	"dropdeck/internal/domain/settings"
	"dropdeck/internal/infra"
	"dropdeck/internal/infra/catalog"
	"dropdeck/internal/pkg/clock"
	"dropdeck/internal/pkg/errs"
	"dropdeck/internal/usecase/commands"
	"dropdeck/internal/usecase/readmodel"
	commandsmock "dropdeck/tests/mock/commands"
)

var testSession = session.Session{Shop: "shop.example.com", AccessToken: "shpat_test"}

type DropCommandsTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockDrops    *commandsmock.MockDropRepository
	mockSettings *commandsmock.MockSettingsRepository
	mockCatalog  *commandsmock.MockCatalogGateway
	mockNotifier *commandsmock.MockLifecycleNotifier
	clk          *clock.MockClock
	now          time.Time
	uc           commands.DropCommands
}

func (s *DropCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDrops = commandsmock.NewMockDropRepository(s.mockCtrl)
	s.mockSettings = commandsmock.NewMockSettingsRepository(s.mockCtrl)
	s.mockCatalog = commandsmock.NewMockCatalogGateway(s.mockCtrl)
	s.mockNotifier = commandsmock.NewMockLifecycleNotifier(s.mockCtrl)
	s.now = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	s.clk = clock.NewMockClock(s.now)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.uc = commands.NewDropCommands(s.mockDrops, s.mockSettings, s.mockCatalog, s.mockNotifier, s.clk, logger)
}

func (s *DropCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDropCommandsSuite(t *testing.T) {
	suite.Run(t, new(DropCommandsTestSuite))
}

func (s *DropCommandsTestSuite) defaultSettings() settings.Settings {
	return settings.Defaults(testSession.Shop)
}

// ================================================================================
// Create
// ================================================================================

func (s *DropCommandsTestSuite) TestCreateAppendsAfterQueueTail() {
	tail := s.now.Add(2 * time.Hour)

	s.mockSettings.EXPECT().Get(gomock.Any(), testSession.Shop).Return(s.defaultSettings(), nil)
	s.mockDrops.EXPECT().QueueTailEnd(gomock.Any(), testSession.Shop).Return(tail, true, nil)
	s.mockDrops.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *drop.Drop) (*readmodel.DropRM, error) {
			s.Equal(tail, d.StartTime())
			s.Equal(60, d.DurationMinutes())
			s.Equal("123", d.ProductID())
			return &readmodel.DropRM{ID: d.ID(), Shop: d.Shop(), ProductID: d.ProductID(), Status: drop.StatusQueued}, nil
		})
	s.mockNotifier.EXPECT().DropsChanged(gomock.Any(), testSession).Return(nil)

	rm, err := s.uc.Create(context.Background(), testSession, commands.CreateDropInput{ProductID: "123", Title: "Hoodie"})

	s.NoError(err)
	s.NotNil(rm)
}

func (s *DropCommandsTestSuite) TestCreateWithEmptyQueueStartsNow() {
	s.mockSettings.EXPECT().Get(gomock.Any(), testSession.Shop).Return(s.defaultSettings(), nil)
	s.mockDrops.EXPECT().QueueTailEnd(gomock.Any(), testSession.Shop).Return(time.Time{}, false, nil)
	s.mockDrops.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *drop.Drop) (*readmodel.DropRM, error) {
			s.Equal(s.now, d.StartTime())
			return &readmodel.DropRM{ID: d.ID()}, nil
		})
	s.mockNotifier.EXPECT().DropsChanged(gomock.Any(), testSession).Return(nil)

	_, err := s.uc.Create(context.Background(), testSession, commands.CreateDropInput{ProductID: "123"})
	s.NoError(err)
}

func (s *DropCommandsTestSuite) TestCreateDuplicateProduct() {
	s.mockSettings.EXPECT().Get(gomock.Any(), testSession.Shop).Return(s.defaultSettings(), nil)
	s.mockDrops.EXPECT().QueueTailEnd(gomock.Any(), testSession.Shop).Return(time.Time{}, false, nil)
	s.mockDrops.EXPECT().Insert(gomock.Any(), gomock.Any()).
		Return(nil, infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey))

	_, err := s.uc.Create(context.Background(), testSession, commands.CreateDropInput{ProductID: "123"})
	// The sentinel is attached with errs.Mark, which the standard library
	// errors.Is cannot see.
	s.True(errs.Is(err, commands.ErrProductAlreadyQueued), "want product-already-queued, got %v", err)
}

func (s *DropCommandsTestSuite) TestCreateRejectsInvalidInput() {
	s.mockSettings.EXPECT().Get(gomock.Any(), testSession.Shop).Return(s.defaultSettings(), nil)
	s.mockDrops.EXPECT().QueueTailEnd(gomock.Any(), testSession.Shop).Return(time.Time{}, false, nil)

	_, err := s.uc.Create(context.Background(), testSession, commands.CreateDropInput{ProductID: ""})
	s.True(errs.Is(err, commands.ErrInvalidSchedule), "want invalid-schedule, got %v", err)
}

func (s *DropCommandsTestSuite) TestCreateWithStaleQueueTailStartsNow() {
	stale := s.now.Add(-time.Hour)

	s.mockSettings.EXPECT().Get(gomock.Any(), testSession.Shop).Return(s.defaultSettings(), nil)
	s.mockDrops.EXPECT().QueueTailEnd(gomock.Any(), testSession.Shop).Return(stale, true, nil)
	s.mockDrops.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *drop.Drop) (*readmodel.DropRM, error) {
			s.Equal(s.now, d.StartTime())
			return &readmodel.DropRM{ID: d.ID()}, nil
		})
	s.mockNotifier.EXPECT().DropsChanged(gomock.Any(), testSession).Return(nil)

	_, err := s.uc.Create(context.Background(), testSession, commands.CreateDropInput{ProductID: "123"})
	s.NoError(err)
}

// ================================================================================
// ScheduleCollection
// ================================================================================

func (s *DropCommandsTestSuite) TestScheduleCollectionPlansContiguousBatch() {
	collectionID := "gid://shopify/Collection/42"
	cfg := s.defaultSettings()
	cfg.QueuedCollectionID = &collectionID

	products := []catalog.Product{
		{ID: "1", Title: "Alpha"},
		{ID: "2", Title: "Bravo"},
	}

	s.mockSettings.EXPECT().Get(gomock.Any(), testSession.Shop).Return(cfg, nil)
	s.mockCatalog.EXPECT().ListActiveProducts(gomock.Any(), testSession, collectionID, 0).Return(products, nil)
	s.mockDrops.EXPECT().ListQueuedProductRefs(gomock.Any(), testSession.Shop).Return(map[string]struct{}{}, nil)
	s.mockDrops.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ds []*drop.Drop) ([]*readmodel.DropRM, error) {
			s.Require().Len(ds, 2)
			s.Equal(s.now, ds[0].StartTime())
			s.Equal(ds[0].EndTime(), ds[1].StartTime())
			out := make([]*readmodel.DropRM, len(ds))
			for i, d := range ds {
				out[i] = &readmodel.DropRM{ID: d.ID(), ProductID: d.ProductID(), Status: drop.StatusQueued}
			}
			return out, nil
		})
	s.mockNotifier.EXPECT().DropsChanged(gomock.Any(), testSession).Return(nil)

	inserted, err := s.uc.ScheduleCollection(context.Background(), testSession, commands.ScheduleInput{})

	s.NoError(err)
	s.Len(inserted, 2)
}

func (s *DropCommandsTestSuite) TestScheduleCollectionWithoutSource() {
	s.mockSettings.EXPECT().Get(gomock.Any(), testSession.Shop).Return(s.defaultSettings(), nil)

	_, err := s.uc.ScheduleCollection(context.Background(), testSession, commands.ScheduleInput{})
	s.ErrorIs(err, commands.ErrNoSourceCollection)
}

func (s *DropCommandsTestSuite) TestScheduleCollectionSkipsPendingProducts() {
	collectionID := "gid://shopify/Collection/42"
	cfg := s.defaultSettings()
	cfg.QueuedCollectionID = &collectionID

	products := []catalog.Product{{ID: "1"}, {ID: "2"}}

	s.mockSettings.EXPECT().Get(gomock.Any(), testSession.Shop).Return(cfg, nil)
	s.mockCatalog.EXPECT().ListActiveProducts(gomock.Any(), testSession, collectionID, 0).Return(products, nil)
	s.mockDrops.EXPECT().ListQueuedProductRefs(gomock.Any(), testSession.Shop).
		Return(map[string]struct{}{"1": {}, "2": {}}, nil)

	inserted, err := s.uc.ScheduleCollection(context.Background(), testSession, commands.ScheduleInput{})

	s.NoError(err)
	s.Empty(inserted)
}

// ================================================================================
// StopAndClear
// ================================================================================

func (s *DropCommandsTestSuite) TestStopAndClear() {
	activeID := uuid.New()
	active := &readmodel.DropRM{ID: activeID, Shop: testSession.Shop, ProductID: "777", Status: drop.StatusActive}

	s.mockDrops.EXPECT().DeleteAllQueued(gomock.Any(), testSession.Shop).Return(int64(3), nil)
	s.mockDrops.EXPECT().GetActive(gomock.Any(), testSession.Shop).Return(active, nil)
	s.mockDrops.EXPECT().
		UpdateStatusCAS(gomock.Any(), activeID, testSession.Shop, drop.StatusActive, drop.StatusCompleted, nil, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, _, _ drop.Status, _, endTime *time.Time) (*readmodel.DropRM, error) {
			s.Require().NotNil(endTime)
			s.Equal(s.now, *endTime)
			done := *active
			done.Status = drop.StatusCompleted
			return &done, nil
		})
	s.mockSettings.EXPECT().ClearQueuedCollection(gomock.Any(), testSession.Shop).Return(nil)
	s.mockNotifier.EXPECT().DropsCleared(gomock.Any(), testSession).Return(nil)

	result, err := s.uc.StopAndClear(context.Background(), testSession)

	s.NoError(err)
	s.Equal(int64(3), result.QueuedRemoved)
	s.True(result.ActiveCompleted)
	s.True(result.SettingsReset)
}

func (s *DropCommandsTestSuite) TestStopAndClearWithoutActiveDrop() {
	s.mockDrops.EXPECT().DeleteAllQueued(gomock.Any(), testSession.Shop).Return(int64(0), nil)
	s.mockDrops.EXPECT().GetActive(gomock.Any(), testSession.Shop).Return(nil, nil)
	s.mockSettings.EXPECT().ClearQueuedCollection(gomock.Any(), testSession.Shop).Return(nil)
	s.mockNotifier.EXPECT().DropsCleared(gomock.Any(), testSession).Return(nil)

	result, err := s.uc.StopAndClear(context.Background(), testSession)

	s.NoError(err)
	s.False(result.ActiveCompleted)
	s.True(result.SettingsReset)
}

// ================================================================================
// Deletions
// ================================================================================

func (s *DropCommandsTestSuite) TestDeleteQueuedNotifiesOnlyWhenRowsRemoved() {
	ids := []uuid.UUID{uuid.New()}

	s.mockDrops.EXPECT().DeleteQueued(gomock.Any(), testSession.Shop, ids).Return(int64(1), nil)
	s.mockNotifier.EXPECT().DropsChanged(gomock.Any(), testSession).Return(nil)

	removed, err := s.uc.DeleteQueued(context.Background(), testSession, ids)
	s.NoError(err)
	s.Equal(int64(1), removed)

	s.mockDrops.EXPECT().DeleteQueued(gomock.Any(), testSession.Shop, ids).Return(int64(0), nil)

	removed, err = s.uc.DeleteQueued(context.Background(), testSession, ids)
	s.NoError(err)
	s.Zero(removed)
}

func (s *DropCommandsTestSuite) TestClearCompletedNotifiesOnlyWhenRowsRemoved() {
	s.mockDrops.EXPECT().DeleteCompleted(gomock.Any(), testSession.Shop).Return(int64(2), nil)
	s.mockNotifier.EXPECT().DropsChanged(gomock.Any(), testSession).Return(nil)

	removed, err := s.uc.ClearCompleted(context.Background(), testSession)
	s.NoError(err)
	s.Equal(int64(2), removed)

	s.mockDrops.EXPECT().DeleteCompleted(gomock.Any(), testSession.Shop).Return(int64(0), nil)

	removed, err = s.uc.ClearCompleted(context.Background(), testSession)
	s.NoError(err)
	s.Zero(removed)
}
