package readstore

import (
	"context"
	"fmt"
	"strings"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/infra"
	"tablebook/internal/infra/repository/converter"
	"tablebook/internal/pkg/pgconv"
	"tablebook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const reservationColumns = `
	id, table_id, customer_name, customer_email, customer_phone,
	guest_count, reservation_date, slot_start_time, slot_end_time,
	status, special_requests, created_at, updated_at`

// ReservationReadStore serves the query side against the same reservations
// table as the write repository.
type ReservationReadStore struct {
	db *pgxpool.Pool
}

func NewReservationReadStore(db *pgxpool.Pool) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

var _ queries.ReservationReadStore = (*ReservationReadStore)(nil)

func (r *ReservationReadStore) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	q := `SELECT` + reservationColumns + ` FROM reservations WHERE id = $1`

	view, err := scanReservationView(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return view, nil
}

func (r *ReservationReadStore) List(ctx context.Context, filter queries.ListFilter) ([]*queries.ReservationView, int64, error) {
	where, args := buildListPredicate(filter)

	var total int64
	countQuery := `SELECT COUNT(*) FROM reservations` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count reservations", err)
	}

	pageQuery := fmt.Sprintf(
		`SELECT%s FROM reservations%s ORDER BY reservation_date ASC, slot_start_time ASC, id ASC LIMIT $%d OFFSET $%d`,
		reservationColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.db.Query(ctx, pageQuery, args...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	views := make([]*queries.ReservationView, 0, filter.Limit)
	for rows.Next() {
		view, scanErr := scanReservationView(rows)
		if scanErr != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan reservation row", scanErr)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}

	return views, total, nil
}

func (r *ReservationReadStore) ConfirmedStartTimes(ctx context.Context, tableID int64, date reservation.Date) ([]reservation.SlotTime, error) {
	const q = `
		SELECT slot_start_time
		FROM reservations
		WHERE table_id = $1 AND reservation_date = $2 AND status = 'confirmed'`

	rows, err := r.db.Query(ctx, q, tableID, converter.DateToTime(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query booked slots", err)
	}
	defer rows.Close()

	var starts []reservation.SlotTime
	for rows.Next() {
		var t pgtype.Time
		if err := rows.Scan(&t); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked slot", err)
		}
		start, convErr := converter.SlotTimeFromMicros(pgconv.MicrosFromPgtypeTime(t))
		if convErr != nil {
			return nil, infra.WrapRepoErr("invalid slot time in store", convErr)
		}
		starts = append(starts, start)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booked slots", err)
	}

	return starts, nil
}

func buildListPredicate(filter queries.ListFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)

	if filter.Date != nil {
		args = append(args, converter.DateToTime(*filter.Date))
		conds = append(conds, fmt.Sprintf("reservation_date = $%d", len(args)))
	}
	if filter.TableID != nil {
		args = append(args, *filter.TableID)
		conds = append(conds, fmt.Sprintf("table_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, filter.Status.String())
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservationView(row rowScanner) (*queries.ReservationView, error) {
	var (
		view                 queries.ReservationView
		date                 pgtype.Date
		slotStart, slotEnd   pgtype.Time
		specialRequests      pgtype.Text
		createdAt, updatedAt pgtype.Timestamptz
	)

	if err := row.Scan(
		&view.ID, &view.TableID, &view.CustomerName, &view.CustomerEmail, &view.CustomerPhone,
		&view.GuestCount, &date, &slotStart, &slotEnd,
		&view.Status, &specialRequests, &createdAt, &updatedAt,
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

	view.ReservationDate = converter.DateFromTime(pgconv.DateFromPgtype(date)).String()
	view.SlotStartTime = start.String()
	view.SlotEndTime = end.String()
	view.SpecialRequests = pgconv.StringPtrFromPgtype(specialRequests)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	return &view, nil
}
