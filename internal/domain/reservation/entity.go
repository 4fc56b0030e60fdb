package reservation

import (
	"errors"
	"strings"
	"time"

	"tablebook/internal/domain/table"
)

var (
	ErrTableNotFound      = errors.New("table not found")
	ErrTableInactive      = errors.New("table is not active")
	ErrCapacityExceeded   = errors.New("guest count exceeds table seating capacity")
	ErrInvalidGuestCount  = errors.New("guest count must be a positive integer")
	ErrSlotNotBookable    = errors.New("slot start time is outside restaurant operating hours")
	ErrAlreadyCancelled   = errors.New("reservation is already cancelled")
	ErrCancellationWindow = errors.New("reservations can only be cancelled at least 1 hour before the slot start")
)

// CancellationLeadTime is the minimum lead before the slot start at which a
// reservation may still be cancelled.
const CancellationLeadTime = time.Hour

type Reservation struct {
	id              int64
	tableID         int64
	customerName    string
	customerEmail   string
	customerPhone   string
	guestCount      int
	date            Date
	slotStart       SlotTime
	slotEnd         SlotTime
	status          Status
	specialRequests string
	createdAt       time.Time
	updatedAt       time.Time
}

// NewReservation runs the booking rules, in order: the table must be
// resolvable, active, and able to seat the party; the slot must be one of the
// fixed opening slots. The double-booking check is read-before-write and is
// ultimately enforced by the store's unique constraint.
func NewReservation(
	tbl *table.Table,
	customerName, customerEmail, customerPhone string,
	guestCount int,
	date Date,
	slotStart SlotTime,
	specialRequests string,
) (*Reservation, error) {
	if tbl == nil {
		return nil, ErrTableNotFound
	}
	if !tbl.IsActive() {
		return nil, ErrTableInactive
	}
	if guestCount <= 0 {
		return nil, ErrInvalidGuestCount
	}
	if !tbl.CanSeat(guestCount) {
		return nil, ErrCapacityExceeded
	}
	if !IsOpeningSlot(slotStart) {
		return nil, ErrSlotNotBookable
	}

	return &Reservation{
		tableID:         tbl.ID(),
		customerName:    strings.TrimSpace(customerName),
		customerEmail:   strings.TrimSpace(customerEmail),
		customerPhone:   strings.TrimSpace(customerPhone),
		guestCount:      guestCount,
		date:            date,
		slotStart:       slotStart,
		slotEnd:         slotStart.EndTime(),
		status:          StatusConfirmed,
		specialRequests: strings.TrimSpace(specialRequests),
	}, nil
}

func ReconstructReservation(
	id, tableID int64,
	customerName, customerEmail, customerPhone string,
	guestCount int,
	date Date,
	slotStart, slotEnd SlotTime,
	status Status,
	specialRequests string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		tableID:         tableID,
		customerName:    customerName,
		customerEmail:   customerEmail,
		customerPhone:   customerPhone,
		guestCount:      guestCount,
		date:            date,
		slotStart:       slotStart,
		slotEnd:         slotEnd,
		status:          status,
		specialRequests: specialRequests,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// StartsAt is the absolute start of the reserved slot.
func (r *Reservation) StartsAt() time.Time {
	return r.slotStart.At(r.date)
}

// Cancel flips a confirmed reservation to cancelled. The transition is
// terminal; a cancelled reservation is never re-confirmed.
func (r *Reservation) Cancel(now time.Time) error {
	if r.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if r.StartsAt().Sub(now) < CancellationLeadTime {
		return ErrCancellationWindow
	}
	r.status = StatusCancelled
	r.updatedAt = now
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusConfirmed
}

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

func (r *Reservation) ID() int64               { return r.id }
func (r *Reservation) TableID() int64          { return r.tableID }
func (r *Reservation) CustomerName() string    { return r.customerName }
func (r *Reservation) CustomerEmail() string   { return r.customerEmail }
func (r *Reservation) CustomerPhone() string   { return r.customerPhone }
func (r *Reservation) GuestCount() int         { return r.guestCount }
func (r *Reservation) Date() Date              { return r.date }
func (r *Reservation) SlotStart() SlotTime     { return r.slotStart }
func (r *Reservation) SlotEnd() SlotTime       { return r.slotEnd }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) SpecialRequests() string { return r.specialRequests }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time    { return r.updatedAt }
