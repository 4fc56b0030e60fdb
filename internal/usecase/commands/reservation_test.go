//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/clock"
	"tablebook/internal/usecase/commands"
	"tablebook/tests/common/builder"
	commandsmock "tablebook/tests/mock/commands"
	queriesmock "tablebook/tests/mock/queries"
	sharedmock "tablebook/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationCommandsTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockRepo        *commandsmock.MockReservationRepository
	mockReadStore   *queriesmock.MockReservationReadStore
	mockTableClient *sharedmock.MockTableInfoClient
	clock           *clock.FixedClock
	commands        commands.ReservationCommands
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = commandsmock.NewMockReservationRepository(s.mockCtrl)
	s.mockReadStore = queriesmock.NewMockReservationReadStore(s.mockCtrl)
	s.mockTableClient = sharedmock.NewMockTableInfoClient(s.mockCtrl)
	s.clock = clock.NewFixedClock(time.Date(2026, time.February, 1, 12, 0, 0, 0, time.Local))
	s.commands = commands.NewReservationCommands(s.mockRepo, s.mockReadStore, s.mockTableClient, s.clock)
}

func (s *ReservationCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) TestCreateReservation() {
	b := builder.NewReservationBuilder().WithDate("2026-03-01")
	req := b.BuildCreateRequestDTO()
	tbl := b.BuildTable()
	returnView := b.BuildView()
	ctx := context.Background()

	s.Run("success: persists and returns the stored view", func() {
		s.mockTableClient.EXPECT().FetchTable(gomock.Any(), req.TableID).Return(tbl, nil)
		s.mockReadStore.EXPECT().ConfirmedStartTimes(gomock.Any(), req.TableID, gomock.Any()).
			Return(nil, nil)
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(1), nil)
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), int64(1)).Return(returnView, nil)

		view, err := s.commands.CreateReservation(ctx, req)
		s.Require().NoError(err)
		s.Equal(returnView, view)
	})

	s.Run("error: unreachable table service maps to table not found", func() {
		s.mockTableClient.EXPECT().FetchTable(gomock.Any(), req.TableID).
			Return(nil, errors.New("connection refused"))

		view, err := s.commands.CreateReservation(ctx, req)
		s.Require().ErrorIs(err, commands.ErrTableNotFound)
		s.Nil(view)
	})

	s.Run("error: inactive table", func() {
		inactive := builder.NewReservationBuilder().WithTableActive(false).BuildTable()
		s.mockTableClient.EXPECT().FetchTable(gomock.Any(), req.TableID).Return(inactive, nil)

		_, err := s.commands.CreateReservation(ctx, req)
		s.Require().ErrorIs(err, commands.ErrTableInactive)
	})

	s.Run("error: capacity exceeded", func() {
		small := builder.NewReservationBuilder().WithTableCapacity(2).BuildTable()
		s.mockTableClient.EXPECT().FetchTable(gomock.Any(), req.TableID).Return(small, nil)

		_, err := s.commands.CreateReservation(ctx, req)
		s.Require().ErrorIs(err, commands.ErrCapacityExceeded)
	})

	s.Run("error: start time outside operating hours", func() {
		offReq := builder.NewReservationBuilder().
			WithDate("2026-03-01").
			WithSlotStart("11:00").
			BuildCreateRequestDTO()
		s.mockTableClient.EXPECT().FetchTable(gomock.Any(), offReq.TableID).Return(tbl, nil)

		_, err := s.commands.CreateReservation(ctx, offReq)
		s.Require().ErrorIs(err, commands.ErrSlotNotBookable)
	})

	s.Run("error: slot already booked for the same table and date", func() {
		booked, parseErr := reservation.ParseSlotTime(req.SlotStartTime)
		s.Require().NoError(parseErr)

		s.mockTableClient.EXPECT().FetchTable(gomock.Any(), req.TableID).Return(tbl, nil)
		s.mockReadStore.EXPECT().ConfirmedStartTimes(gomock.Any(), req.TableID, gomock.Any()).
			Return([]reservation.SlotTime{booked}, nil)

		_, err := s.commands.CreateReservation(ctx, req)
		s.Require().ErrorIs(err, commands.ErrSlotTaken)
	})

	s.Run("error: unique violation on insert maps to slot taken", func() {
		s.mockTableClient.EXPECT().FetchTable(gomock.Any(), req.TableID).Return(tbl, nil)
		s.mockReadStore.EXPECT().ConfirmedStartTimes(gomock.Any(), req.TableID, gomock.Any()).
			Return(nil, nil)
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("duplicate slot", errors.New("unique violation"), infra.KindConflict))

		_, err := s.commands.CreateReservation(ctx, req)
		s.Require().ErrorIs(err, commands.ErrSlotTaken)
	})

	s.Run("error: insert failure surfaces as database failure", func() {
		s.mockTableClient.EXPECT().FetchTable(gomock.Any(), req.TableID).Return(tbl, nil)
		s.mockReadStore.EXPECT().ConfirmedStartTimes(gomock.Any(), req.TableID, gomock.Any()).
			Return(nil, nil)
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("insert failed", errors.New("io error")))

		_, err := s.commands.CreateReservation(ctx, req)
		s.Require().ErrorIs(err, commands.ErrDatabaseOperationFailed)
	})
}

func (s *ReservationCommandsTestSuite) TestCancelReservation() {
	ctx := context.Background()
	date, parseErr := reservation.ParseDate("2026-03-01")
	s.Require().NoError(parseErr)
	slotStart, parseErr := reservation.ParseSlotTime("18:00")
	s.Require().NoError(parseErr)

	newEntity := func(status reservation.Status) *reservation.Reservation {
		return reservation.ReconstructReservation(
			1, 1,
			"Hanako Yamada", "hanako@example.com", "090-1234-5678",
			3,
			date, slotStart, slotStart.EndTime(),
			status,
			"",
			time.Now(), time.Now(),
		)
	}
	cancelledView := builder.NewReservationBuilder().WithStatus("cancelled").BuildView()

	s.Run("success: flips status and returns the stored view", func() {
		s.mockRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(newEntity(reservation.StatusConfirmed), nil)
		s.mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), int64(1)).Return(cancelledView, nil)

		view, err := s.commands.CancelReservation(ctx, 1)
		s.Require().NoError(err)
		s.Equal("cancelled", view.Status)
	})

	s.Run("error: unknown id", func() {
		s.mockRepo.EXPECT().FindByID(gomock.Any(), int64(9999)).
			Return(nil, infra.WrapRepoErr("no rows", errors.New("no rows"), infra.KindNotFound))

		_, err := s.commands.CancelReservation(ctx, 9999)
		s.Require().ErrorIs(err, commands.ErrReservationNotFound)
	})

	s.Run("error: already cancelled", func() {
		s.mockRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(newEntity(reservation.StatusCancelled), nil)

		_, err := s.commands.CancelReservation(ctx, 1)
		s.Require().ErrorIs(err, commands.ErrAlreadyCancelled)
	})

	s.Run("error: inside the cancellation window", func() {
		s.clock.Set(slotStart.At(date).Add(-30 * time.Minute))
		s.mockRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(newEntity(reservation.StatusConfirmed), nil)

		_, err := s.commands.CancelReservation(ctx, 1)
		s.Require().ErrorIs(err, commands.ErrCancellationWindow)
	})
}
