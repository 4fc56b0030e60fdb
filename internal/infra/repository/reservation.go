package repository

import (
	"context"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/infra"
	"tablebook/internal/infra/repository/converter"
	"tablebook/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReservationRepository is the write side of the reservation store.
type ReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (int64, error) {
	const q = `
		INSERT INTO reservations (
			table_id, customer_name, customer_email, customer_phone,
			guest_count, reservation_date, slot_start_time, slot_end_time,
			status, special_requests
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var specialRequests *string
	if s := res.SpecialRequests(); s != "" {
		specialRequests = &s
	}

	var id int64
	err := r.db.QueryRow(ctx, q,
		res.TableID(),
		res.CustomerName(),
		res.CustomerEmail(),
		res.CustomerPhone(),
		res.GuestCount(),
		converter.DateToTime(res.Date()),
		pgconv.MicrosToPgtypeTime(converter.SlotTimeToMicros(res.SlotStart())),
		pgconv.MicrosToPgtypeTime(converter.SlotTimeToMicros(res.SlotEnd())),
		res.Status().String(),
		pgconv.StringPtrToPgtype(specialRequests),
	).Scan(&id)
	if err != nil {
		// The partial unique index on confirmed (table, date, start) is the
		// authoritative double-booking guard.
		if pgconv.IsUniqueViolation(err) {
			return 0, infra.WrapRepoErr("slot already booked", err, infra.KindConflict)
		}
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}

	return id, nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	const q = `
		SELECT id, table_id, customer_name, customer_email, customer_phone,
		       guest_count, reservation_date, slot_start_time, slot_end_time,
		       status, special_requests, created_at, updated_at
		FROM reservations
		WHERE id = $1`

	row := r.db.QueryRow(ctx, q, id)
	entity, err := scanReservation(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	return entity, nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	const q = `UPDATE reservations SET status = $2, updated_at = $3 WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, res.ID(), res.Status().String(), res.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*reservation.Reservation, error) {
	var (
		id, tableID          int64
		name, email, phone   string
		guestCount           int
		date                 pgtype.Date
		slotStart, slotEnd   pgtype.Time
		status               string
		specialRequests      pgtype.Text
		createdAt, updatedAt pgtype.Timestamptz
	)

	if err := row.Scan(
		&id, &tableID, &name, &email, &phone,
		&guestCount, &date, &slotStart, &slotEnd,
		&status, &specialRequests, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	start, err := converter.SlotTimeFromMicros(pgconv.MicrosFromPgtypeTime(slotStart))
	if err != nil {
		return nil, err
	}
	end, err := converter.SlotTimeFromMicros(pgconv.MicrosFromPgtypeTime(slotEnd))
	if err != nil {
		return nil, err
	}

	var requests string
	if p := pgconv.StringPtrFromPgtype(specialRequests); p != nil {
		requests = *p
	}

	return reservation.ReconstructReservation(
		id, tableID,
		name, email, phone,
		guestCount,
		converter.DateFromTime(pgconv.DateFromPgtype(date)),
		start, end,
		reservation.Status(status),
		requests,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
