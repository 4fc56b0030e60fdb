package commands

import (
	"context"
	"errors"
	"log/slog"

	"tablebook/internal/domain/reservation"
	reqdto "tablebook/internal/handler/dto/request"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/clock"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase/queries"
	"tablebook/internal/usecase/shared"
)

var (
	ErrTableNotFound           = errs.New("table not found")
	ErrTableInactive           = errs.New("table is not active")
	ErrCapacityExceeded        = errs.New("guest count exceeds table capacity")
	ErrSlotNotBookable         = errs.New("slot is outside operating hours")
	ErrSlotTaken               = errs.New("slot is already booked")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrAlreadyCancelled        = errs.New("reservation is already cancelled")
	ErrCancellationWindow      = errs.New("cancellation window has passed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (int64, error)
	FindByID(ctx context.Context, id int64) (*reservation.Reservation, error)
	Update(ctx context.Context, res *reservation.Reservation) error
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, req reqdto.CreateReservationRequest) (*queries.ReservationView, error)
	CancelReservation(ctx context.Context, id int64) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	repo        ReservationRepository
	readStore   queries.ReservationReadStore
	tableClient shared.TableInfoClient
	clock       clock.Clock
}

func NewReservationCommands(
	repo ReservationRepository,
	readStore queries.ReservationReadStore,
	tableClient shared.TableInfoClient,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		repo:        repo,
		readStore:   readStore,
		tableClient: tableClient,
		clock:       clock,
	}
}

func (c *reservationCommandsImpl) CreateReservation(
	ctx context.Context,
	req reqdto.CreateReservationRequest,
) (*queries.ReservationView, error) {
	data, err := req.ToDomain()
	if err != nil {
		return nil, err
	}

	// Single best-effort lookup; an unreachable table service means the
	// table cannot be validated and the booking is refused.
	tbl, err := c.tableClient.FetchTable(ctx, req.TableID)
	if err != nil {
		slog.Warn("table lookup failed on create", "table_id", req.TableID, "error", err)
		return nil, ErrTableNotFound
	}

	entity, err := reservation.NewReservation(
		tbl,
		req.CustomerName,
		req.CustomerEmail,
		req.CustomerPhone,
		req.GuestCount,
		data.Date,
		data.SlotStart,
		req.SpecialRequestsValue(),
	)
	if err != nil {
		return nil, mapBookingErr(err)
	}

	// Read-before-write conflict check. Racing creates slip past it; the
	// partial unique index makes the second insert fail instead.
	bookedStarts, err := c.readStore.ConfirmedStartTimes(ctx, entity.TableID(), entity.Date())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	for _, s := range bookedStarts {
		if s.Equal(entity.SlotStart()) {
			return nil, ErrSlotTaken
		}
	}

	id, err := c.repo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrSlotTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Read-after-write: return the persisted record from the read store.
	view, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *reservationCommandsImpl) CancelReservation(ctx context.Context, id int64) (*queries.ReservationView, error) {
	entity, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := entity.Cancel(c.clock.Now()); err != nil {
		switch {
		case errors.Is(err, reservation.ErrAlreadyCancelled):
			return nil, ErrAlreadyCancelled
		case errors.Is(err, reservation.ErrCancellationWindow):
			return nil, ErrCancellationWindow
		default:
			return nil, err
		}
	}

	if err := c.repo.Update(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func mapBookingErr(err error) error {
	switch {
	case errors.Is(err, reservation.ErrTableNotFound):
		return ErrTableNotFound
	case errors.Is(err, reservation.ErrTableInactive):
		return ErrTableInactive
	case errors.Is(err, reservation.ErrCapacityExceeded):
		return ErrCapacityExceeded
	case errors.Is(err, reservation.ErrSlotNotBookable):
		return ErrSlotNotBookable
	default:
		return err
	}
}
