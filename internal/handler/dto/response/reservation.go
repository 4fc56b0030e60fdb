package response

import (
	"time"

	"tablebook/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
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

type TableInfoResponse struct {
	ID               int64 `json:"id"`
	SeatingCapacity  *int  `json:"seating_capacity,omitempty"`
	IsActive         *bool `json:"is_active,omitempty"`
	DetailsAvailable bool  `json:"details_available"`
}

type ReservationDetailResponse struct {
	ReservationResponse
	Table TableInfoResponse `json:"table"`
}

type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	Total        int64                  `json:"total"`
	Page         int                    `json:"page"`
	TotalPages   int                    `json:"totalPages"`
}

type AvailabilitySlotResponse struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
}

type AvailabilityResponse struct {
	TableID int64                      `json:"table_id"`
	Date    string                     `json:"date"`
	Slots   []AvailabilitySlotResponse `json:"slots"`
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromReservationDetailView(view *queries.ReservationDetailView) *ReservationDetailResponse {
	var resp ReservationDetailResponse
	_ = copier.Copy(&resp.ReservationResponse, &view.ReservationView)
	_ = copier.Copy(&resp.Table, &view.Table)
	return &resp
}

func FromReservationPage(page *queries.ReservationPage) *ReservationListResponse {
	reservations := make([]*ReservationResponse, len(page.Reservations))
	for i, view := range page.Reservations {
		reservations[i] = FromReservationView(view)
	}
	return &ReservationListResponse{
		Reservations: reservations,
		Total:        page.Total,
		Page:         page.Page,
		TotalPages:   page.TotalPages,
	}
}

func FromAvailabilityView(view *queries.AvailabilityView) *AvailabilityResponse {
	var resp AvailabilityResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
