//go:build unit || e2e

package builder

import (
	"time"

	domres "tablebook/internal/domain/reservation"
	"tablebook/internal/domain/table"
	reqdto "tablebook/internal/handler/dto/request"
	"tablebook/internal/usecase/queries"
)

type ReservationBuilder struct {
	ID              int64
	TableID         int64
	TableCapacity   int
	TableActive     bool
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	GuestCount      int
	Date            string
	SlotStart       string
	Status          string
	SpecialRequests *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	return &ReservationBuilder{
		ID:            1,
		TableID:       1,
		TableCapacity: 4,
		TableActive:   true,
		CustomerName:  "Hanako Yamada",
		CustomerEmail: "hanako@example.com",
		CustomerPhone: "090-1234-5678",
		GuestCount:    3,
		Date:          now.AddDate(0, 0, 7).Format("2006-01-02"),
		SlotStart:     "18:00",
		Status:        "confirmed",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildTable() *table.Table {
	tbl, err := table.NewTable(b.TableID, b.TableCapacity, b.TableActive)
	if err != nil {
		panic(err)
	}
	return tbl
}

func (b *ReservationBuilder) BuildDomain() (*domres.Reservation, error) {
	date, err := domres.ParseDate(b.Date)
	if err != nil {
		return nil, err
	}
	slotStart, err := domres.ParseSlotTime(b.SlotStart)
	if err != nil {
		return nil, err
	}

	var tbl *table.Table
	if b.TableID != 0 {
		tbl = b.BuildTable()
	}

	special := ""
	if b.SpecialRequests != nil {
		special = *b.SpecialRequests
	}

	return domres.NewReservation(
		tbl,
		b.CustomerName, b.CustomerEmail, b.CustomerPhone,
		b.GuestCount,
		date, slotStart,
		special,
	)
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		TableID:         b.TableID,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		GuestCount:      b.GuestCount,
		ReservationDate: b.Date,
		SlotStartTime:   b.SlotStart,
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	slotStart, _ := domres.ParseSlotTime(b.SlotStart)
	return &queries.ReservationView{
		ID:              b.ID,
		TableID:         b.TableID,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		GuestCount:      b.GuestCount,
		ReservationDate: b.Date,
		SlotStartTime:   b.SlotStart,
		SlotEndTime:     slotStart.EndTime().String(),
		Status:          b.Status,
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildDetailView() *queries.ReservationDetailView {
	capacity := b.TableCapacity
	active := b.TableActive
	return &queries.ReservationDetailView{
		ReservationView: *b.BuildView(),
		Table: queries.TableInfoView{
			ID:               b.TableID,
			SeatingCapacity:  &capacity,
			IsActive:         &active,
			DetailsAvailable: true,
		},
	}
}

// Fluent builder methods
func (b *ReservationBuilder) WithID(id int64) *ReservationBuilder {
	b.ID = id
	return b
}

func (b *ReservationBuilder) WithTableID(tableID int64) *ReservationBuilder {
	b.TableID = tableID
	return b
}

func (b *ReservationBuilder) WithTableCapacity(capacity int) *ReservationBuilder {
	b.TableCapacity = capacity
	return b
}

func (b *ReservationBuilder) WithTableActive(active bool) *ReservationBuilder {
	b.TableActive = active
	return b
}

func (b *ReservationBuilder) WithGuestCount(count int) *ReservationBuilder {
	b.GuestCount = count
	return b
}

func (b *ReservationBuilder) WithDate(date string) *ReservationBuilder {
	b.Date = date
	return b
}

func (b *ReservationBuilder) WithSlotStart(slotStart string) *ReservationBuilder {
	b.SlotStart = slotStart
	return b
}

func (b *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithSpecialRequests(text string) *ReservationBuilder {
	b.SpecialRequests = &text
	return b
}
