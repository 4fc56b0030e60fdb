//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"tablebook/internal/domain/reservation"
	"tablebook/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func TestNewReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().
			WithSpecialRequests("  window seat please  ").
			BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, int64(1), actual.TableID())
		assert.Equal(t, "Hanako Yamada", actual.CustomerName())
		assert.Equal(t, 3, actual.GuestCount())
		assert.Equal(t, "18:00", actual.SlotStart().String())
		assert.Equal(t, "20:00", actual.SlotEnd().String())
		assert.Equal(t, reservation.StatusConfirmed, actual.Status())
		assert.Equal(t, "window seat please", actual.SpecialRequests())
		assert.True(t, actual.IsActive())
		assert.False(t, actual.IsCancelled())
	})

	t.Run("booking rules", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "unresolvable table",
				mutate: func(b *builder.ReservationBuilder) { b.WithTableID(0) },
				errIs:  reservation.ErrTableNotFound,
			},
			{
				name:   "inactive table",
				mutate: func(b *builder.ReservationBuilder) { b.WithTableActive(false) },
				errIs:  reservation.ErrTableInactive,
			},
			{
				name:   "zero guests",
				mutate: func(b *builder.ReservationBuilder) { b.WithGuestCount(0) },
				errIs:  reservation.ErrInvalidGuestCount,
			},
			{
				name:   "negative guests",
				mutate: func(b *builder.ReservationBuilder) { b.WithGuestCount(-2) },
				errIs:  reservation.ErrInvalidGuestCount,
			},
			{
				name:   "guest count below capacity",
				mutate: func(b *builder.ReservationBuilder) { b.WithGuestCount(3).WithTableCapacity(4) },
			},
			{
				name:   "guest count equal to capacity",
				mutate: func(b *builder.ReservationBuilder) { b.WithGuestCount(4).WithTableCapacity(4) },
			},
			{
				name:   "guest count one over capacity",
				mutate: func(b *builder.ReservationBuilder) { b.WithGuestCount(5).WithTableCapacity(4) },
				errIs:  reservation.ErrCapacityExceeded,
			},
			{
				name:   "start time outside operating hours",
				mutate: func(b *builder.ReservationBuilder) { b.WithSlotStart("11:00") },
				errIs:  reservation.ErrSlotNotBookable,
			},
			{
				name:   "last slot of the day",
				mutate: func(b *builder.ReservationBuilder) { b.WithSlotStart("20:00") },
			},
		})
	})

	t.Run("inactive table wins over capacity", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().
			WithTableActive(false).
			WithGuestCount(10).
			WithTableCapacity(4).
			BuildDomain()

		require.Nil(t, actual)
		require.ErrorIs(t, err, reservation.ErrTableInactive)
	})
}

func TestCancel(t *testing.T) {
	date := reservation.NewDate(2026, time.March, 1)
	slotStart, err := reservation.ParseSlotTime("18:00")
	require.NoError(t, err)

	newConfirmed := func() *reservation.Reservation {
		return reservation.ReconstructReservation(
			1, 1,
			"Hanako Yamada", "hanako@example.com", "090-1234-5678",
			3,
			date, slotStart, slotStart.EndTime(),
			reservation.StatusConfirmed,
			"",
			time.Now(), time.Now(),
		)
	}
	startsAt := slotStart.At(date)

	t.Run("cancel well before the slot succeeds", func(t *testing.T) {
		res := newConfirmed()
		now := startsAt.Add(-24 * time.Hour)

		require.NoError(t, res.Cancel(now))
		assert.Equal(t, reservation.StatusCancelled, res.Status())
		assert.Equal(t, now, res.UpdatedAt())
	})

	t.Run("cancel exactly at the lead time boundary succeeds", func(t *testing.T) {
		res := newConfirmed()
		now := startsAt.Add(-reservation.CancellationLeadTime)

		require.NoError(t, res.Cancel(now))
		assert.True(t, res.IsCancelled())
	})

	t.Run("cancel inside the window is rejected", func(t *testing.T) {
		res := newConfirmed()
		now := startsAt.Add(-59 * time.Minute)

		err := res.Cancel(now)
		require.ErrorIs(t, err, reservation.ErrCancellationWindow)
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
	})

	t.Run("cancel after the slot started is rejected", func(t *testing.T) {
		res := newConfirmed()
		now := startsAt.Add(30 * time.Minute)

		require.ErrorIs(t, res.Cancel(now), reservation.ErrCancellationWindow)
	})

	t.Run("cancelling twice is rejected and the status never reverts", func(t *testing.T) {
		res := newConfirmed()
		now := startsAt.Add(-24 * time.Hour)

		require.NoError(t, res.Cancel(now))
		require.ErrorIs(t, res.Cancel(now), reservation.ErrAlreadyCancelled)
		assert.Equal(t, reservation.StatusCancelled, res.Status())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReservationBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
