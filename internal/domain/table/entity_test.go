//go:build unit

package table_test

import (
	"testing"

	"tablebook/internal/domain/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	t.Run("valid table", func(t *testing.T) {
		tbl, err := table.NewTable(1, 4, true)
		require.NoError(t, err)

		assert.Equal(t, int64(1), tbl.ID())
		assert.Equal(t, 4, tbl.SeatingCapacity())
		assert.True(t, tbl.IsActive())
	})

	t.Run("non-positive id", func(t *testing.T) {
		_, err := table.NewTable(0, 4, true)
		require.ErrorIs(t, err, table.ErrInvalidTableID)
	})

	t.Run("non-positive capacity", func(t *testing.T) {
		_, err := table.NewTable(1, 0, true)
		require.ErrorIs(t, err, table.ErrInvalidCapacity)
	})
}

func TestCanSeat(t *testing.T) {
	tbl, err := table.NewTable(1, 4, true)
	require.NoError(t, err)

	assert.True(t, tbl.CanSeat(1))
	assert.True(t, tbl.CanSeat(4))
	assert.False(t, tbl.CanSeat(5))
}
