//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// ResetDB truncates mutable state between subtests. Identity sequences are
// restarted so reservation IDs stay predictable.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE reservations RESTART IDENTITY CASCADE")
	return err
}

// InsertReservation writes a row directly, bypassing the booking rules. Used
// to stage states the public API refuses to create (e.g. a slot starting in
// 30 minutes).
func InsertReservation(t *testing.T, pool *pgxpool.Pool, tableID int64, date, slotStart, slotEnd, status string) int64 {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var id int64
	err := pool.QueryRow(ctx, `
		INSERT INTO reservations (
			table_id, customer_name, customer_email, customer_phone,
			guest_count, reservation_date, slot_start_time, slot_end_time,
			status, created_at, updated_at
		) VALUES ($1, 'Fixture Customer', 'fixture@example.com', '090-0000-0000',
			2, $2, $3, $4, $5, now(), now())
		RETURNING id`,
		tableID, date, slotStart, slotEnd, status,
	).Scan(&id)
	require.NoError(t, err, "failed to insert reservation fixture")

	return id
}

// CountReservations returns the number of rows matching a status.
func CountReservations(t *testing.T, pool *pgxpool.Pool, status string) int64 {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var count int64
	err := pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM reservations WHERE status = $1", status,
	).Scan(&count)
	require.NoError(t, err)

	return count
}
