//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/infra"
	"tablebook/internal/usecase/queries"
	"tablebook/tests/common/builder"
	queriesmock "tablebook/tests/mock/queries"
	sharedmock "tablebook/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationQueriesTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockStore       *queriesmock.MockReservationReadStore
	mockTableClient *sharedmock.MockTableInfoClient
	queries         queries.ReservationQueries
}

func (s *ReservationQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = queriesmock.NewMockReservationReadStore(s.mockCtrl)
	s.mockTableClient = sharedmock.NewMockTableInfoClient(s.mockCtrl)
	s.queries = queries.NewReservationQueries(s.mockStore, s.mockTableClient)
}

func (s *ReservationQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationQueriesSuite(t *testing.T) {
	suite.Run(t, new(ReservationQueriesTestSuite))
}

func (s *ReservationQueriesTestSuite) TestGetByID() {
	ctx := context.Background()
	b := builder.NewReservationBuilder()
	view := b.BuildView()
	tbl := b.BuildTable()

	s.Run("success: enriches with the table snapshot", func() {
		s.mockStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		s.mockTableClient.EXPECT().FetchTable(gomock.Any(), view.TableID).Return(tbl, nil)

		detail, err := s.queries.GetByID(ctx, view.ID)
		s.Require().NoError(err)
		s.Equal(*view, detail.ReservationView)
		s.True(detail.Table.DetailsAvailable)
		s.Require().NotNil(detail.Table.SeatingCapacity)
		s.Equal(tbl.SeatingCapacity(), *detail.Table.SeatingCapacity)
	})

	s.Run("degraded: lookup failure yields a placeholder, not an error", func() {
		s.mockStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		s.mockTableClient.EXPECT().FetchTable(gomock.Any(), view.TableID).
			Return(nil, errors.New("connection refused"))

		detail, err := s.queries.GetByID(ctx, view.ID)
		s.Require().NoError(err)
		s.False(detail.Table.DetailsAvailable)
		s.Equal(view.TableID, detail.Table.ID)
		s.Nil(detail.Table.SeatingCapacity)
		s.Nil(detail.Table.IsActive)
	})

	s.Run("error: unknown id", func() {
		s.mockStore.EXPECT().FindByID(gomock.Any(), int64(9999)).
			Return(nil, infra.WrapRepoErr("no rows", errors.New("no rows"), infra.KindNotFound))

		_, err := s.queries.GetByID(ctx, 9999)
		s.Require().ErrorIs(err, queries.ErrReservationNotFound)
	})
}

func (s *ReservationQueriesTestSuite) TestList() {
	ctx := context.Background()

	s.Run("success: pages and computes total pages", func() {
		views := []*queries.ReservationView{
			builder.NewReservationBuilder().WithID(1).BuildView(),
			builder.NewReservationBuilder().WithID(2).BuildView(),
		}
		s.mockStore.EXPECT().List(gomock.Any(), gomock.Any()).Return(views, int64(45), nil)

		page, err := s.queries.List(ctx, queries.ListFilter{Page: 1, Limit: 20})
		s.Require().NoError(err)
		s.Equal(int64(45), page.Total)
		s.Equal(1, page.Page)
		s.Equal(3, page.TotalPages)
		s.Len(page.Reservations, 2)
	})

	s.Run("success: empty result has zero total pages", func() {
		s.mockStore.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, int64(0), nil)

		page, err := s.queries.List(ctx, queries.ListFilter{Page: 1, Limit: 20})
		s.Require().NoError(err)
		s.Equal(0, page.TotalPages)
	})

	s.Run("out-of-range paging falls back to defaults", func() {
		s.mockStore.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter queries.ListFilter) ([]*queries.ReservationView, int64, error) {
				s.Equal(queries.DefaultPage, filter.Page)
				s.Equal(queries.DefaultLimit, filter.Limit)
				return nil, 0, nil
			})

		_, err := s.queries.List(ctx, queries.ListFilter{Page: 0, Limit: 500})
		s.Require().NoError(err)
	})

	s.Run("error: store failure propagates", func() {
		s.mockStore.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(nil, int64(0), errors.New("io error"))

		_, err := s.queries.List(ctx, queries.ListFilter{})
		s.Require().Error(err)
	})
}

func (s *ReservationQueriesTestSuite) TestAvailability() {
	ctx := context.Background()
	date, parseErr := reservation.ParseDate("2026-03-01")
	s.Require().NoError(parseErr)

	s.Run("success: six slots with booked ones unavailable", func() {
		booked, parseErr := reservation.ParseSlotTime("18:00")
		s.Require().NoError(parseErr)

		s.mockStore.EXPECT().ConfirmedStartTimes(gomock.Any(), int64(1), date).
			Return([]reservation.SlotTime{booked}, nil)

		view, err := s.queries.Availability(ctx, 1, date)
		s.Require().NoError(err)
		s.Equal(int64(1), view.TableID)
		s.Equal("2026-03-01", view.Date)
		s.Require().Len(view.Slots, 6)

		for _, slot := range view.Slots {
			if slot.StartTime == "18:00" {
				s.False(slot.Available)
				s.Equal("20:00", slot.EndTime)
			} else {
				s.True(slot.Available, "slot %s", slot.StartTime)
			}
		}
	})

	s.Run("error: store failure propagates", func() {
		s.mockStore.EXPECT().ConfirmedStartTimes(gomock.Any(), int64(1), date).
			Return(nil, errors.New("io error"))

		_, err := s.queries.Availability(ctx, 1, date)
		s.Require().Error(err)
	})
}
