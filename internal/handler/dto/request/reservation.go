package request

import (
	"strings"

	"tablebook/internal/domain/reservation"
)

type CreateReservationRequest struct {
	TableID         int64   `json:"table_id" binding:"required,gt=0"`
	CustomerName    string  `json:"customer_name" binding:"required,min=1,max=100"`
	CustomerEmail   string  `json:"customer_email" binding:"required,email"`
	CustomerPhone   string  `json:"customer_phone" binding:"required,min=7,max=20"`
	GuestCount      int     `json:"guest_count" binding:"required,gte=1,lte=20"`
	ReservationDate string  `json:"reservation_date" binding:"required"`
	SlotStartTime   string  `json:"slot_start_time" binding:"required"`
	SpecialRequests *string `json:"special_requests,omitempty" binding:"omitempty,max=500"`
}

func (r CreateReservationRequest) SpecialRequestsValue() string {
	if r.SpecialRequests == nil {
		return ""
	}
	return strings.TrimSpace(*r.SpecialRequests)
}

// Validate runs the structural rules the binding tags cannot express and
// returns human-readable messages, one per violation.
func (r CreateReservationRequest) Validate(today reservation.Date) []string {
	var msgs []string

	date, err := reservation.ParseDate(r.ReservationDate)
	if err != nil {
		msgs = append(msgs, "reservation_date must be a valid ISO date (YYYY-MM-DD)")
	} else if date.Before(today) {
		msgs = append(msgs, "reservation_date must be today or a future date")
	}

	if _, err := reservation.ParseSlotTime(r.SlotStartTime); err != nil {
		msgs = append(msgs, "slot_start_time must match HH:MM with hour 00-23 and minute 00-59")
	}

	return msgs
}

type CreateReservationData struct {
	Date      reservation.Date
	SlotStart reservation.SlotTime
}

// ToDomain parses the pre-validated date and slot strings.
func (r CreateReservationRequest) ToDomain() (CreateReservationData, error) {
	date, err := reservation.ParseDate(r.ReservationDate)
	if err != nil {
		return CreateReservationData{}, err
	}

	slotStart, err := reservation.ParseSlotTime(r.SlotStartTime)
	if err != nil {
		return CreateReservationData{}, err
	}

	return CreateReservationData{Date: date, SlotStart: slotStart}, nil
}

type ListReservationsQuery struct {
	Date    *string `form:"date"`
	TableID *int64  `form:"table_id" binding:"omitempty,gt=0"`
	Status  *string `form:"status" binding:"omitempty,oneof=confirmed cancelled"`
	Page    int     `form:"page,default=1" binding:"gte=1"`
	Limit   int     `form:"limit,default=20" binding:"gte=1,lte=50"`
}

type AvailabilityQuery struct {
	Date string `form:"date" binding:"required"`
}
