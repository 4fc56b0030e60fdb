package queries

import (
	"context"
	"log/slog"
	"time"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase/shared"
)

var ErrReservationNotFound = errs.New("reservation not found")

// Read models (DTO for read side)
type ReservationView struct {
	ID              int64     `json:"id"`
	TableID         int64     `json:"table_id"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	CustomerPhone   string    `json:"customer_phone"`
	GuestCount      int       `json:"guest_count"`
	ReservationDate string    `json:"reservation_date"`
	SlotStartTime   string    `json:"slot_start_time"`
	SlotEndTime     string    `json:"slot_end_time"`
	Status          string    `json:"status"`
	SpecialRequests *string   `json:"special_requests,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableInfoView carries the best-effort table snapshot on the detail read
// path. When the companion service cannot be reached the snapshot degrades to
// a placeholder with DetailsAvailable=false instead of failing the request.
type TableInfoView struct {
	ID               int64 `json:"id"`
	SeatingCapacity  *int  `json:"seating_capacity,omitempty"`
	IsActive         *bool `json:"is_active,omitempty"`
	DetailsAvailable bool  `json:"details_available"`
}

type ReservationDetailView struct {
	ReservationView
	Table TableInfoView `json:"table"`
}

type ReservationPage struct {
	Reservations []*ReservationView
	Total        int64
	Page         int
	TotalPages   int
}

type AvailabilitySlotView struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
}

type AvailabilityView struct {
	TableID int64                  `json:"table_id"`
	Date    string                 `json:"date"`
	Slots   []AvailabilitySlotView `json:"slots"`
}

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 50
)

// ListFilter narrows and pages the reservation list. Nil members are
// unfiltered.
type ListFilter struct {
	Date    *reservation.Date
	TableID *int64
	Status  *reservation.Status
	Page    int
	Limit   int
}

func (f *ListFilter) normalize() {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 || f.Limit > MaxLimit {
		f.Limit = DefaultLimit
	}
}

func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id int64) (*ReservationView, error)
	List(ctx context.Context, filter ListFilter) ([]*ReservationView, int64, error)
	ConfirmedStartTimes(ctx context.Context, tableID int64, date reservation.Date) ([]reservation.SlotTime, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id int64) (*ReservationDetailView, error)
	List(ctx context.Context, filter ListFilter) (*ReservationPage, error)
	Availability(ctx context.Context, tableID int64, date reservation.Date) (*AvailabilityView, error)
}

type reservationQueriesImpl struct {
	store       ReservationReadStore
	tableClient shared.TableInfoClient
}

func NewReservationQueries(store ReservationReadStore, tableClient shared.TableInfoClient) ReservationQueries {
	return &reservationQueriesImpl{
		store:       store,
		tableClient: tableClient,
	}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id int64) (*ReservationDetailView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Wrap(err, "failed to find reservation")
	}

	return &ReservationDetailView{
		ReservationView: *view,
		Table:           q.lookupTable(ctx, view.TableID),
	}, nil
}

// lookupTable enriches the detail view. Lookup failures degrade to a
// placeholder, never to an error.
func (q *reservationQueriesImpl) lookupTable(ctx context.Context, tableID int64) TableInfoView {
	tbl, err := q.tableClient.FetchTable(ctx, tableID)
	if err != nil {
		slog.Warn("table lookup failed, returning placeholder", "table_id", tableID, "error", err)
		return TableInfoView{ID: tableID, DetailsAvailable: false}
	}

	capacity := tbl.SeatingCapacity()
	active := tbl.IsActive()
	return TableInfoView{
		ID:               tbl.ID(),
		SeatingCapacity:  &capacity,
		IsActive:         &active,
		DetailsAvailable: true,
	}
}

func (q *reservationQueriesImpl) List(ctx context.Context, filter ListFilter) (*ReservationPage, error) {
	filter.normalize()

	views, total, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list reservations")
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return &ReservationPage{
		Reservations: views,
		Total:        total,
		Page:         filter.Page,
		TotalPages:   totalPages,
	}, nil
}

func (q *reservationQueriesImpl) Availability(ctx context.Context, tableID int64, date reservation.Date) (*AvailabilityView, error) {
	bookedStarts, err := q.store.ConfirmedStartTimes(ctx, tableID, date)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load booked slots")
	}

	slots := reservation.ResolveAvailability(bookedStarts)

	view := &AvailabilityView{
		TableID: tableID,
		Date:    date.String(),
		Slots:   make([]AvailabilitySlotView, len(slots)),
	}
	for i, s := range slots {
		view.Slots[i] = AvailabilitySlotView{
			StartTime: s.Start.String(),
			EndTime:   s.End.String(),
			Available: s.Available,
		}
	}
	return view, nil
}
