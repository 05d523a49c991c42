package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	Actor domain.Actor
}

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	Actor  domain.Actor
	Status string
}

// Response модели

// CourtInfo снимок данных корта для отображения бронирования
type CourtInfo struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Location     string  `json:"location"`
	PricePerHour float64 `json:"pricePerHour"`
	ImageURL     string  `json:"imageUrl,omitempty"`
}

// TimeSlotInfo снимок данных слота для отображения бронирования
type TimeSlotInfo struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	CourtID     string `json:"courtId"`
	TimeSlotID  string `json:"timeSlotId"`
	BookingDate string `json:"bookingDate"` // "2025-10-15"
	Status      string `json:"status"`

	PaymentID *string `json:"paymentId,omitempty"`

	// Денормализованные данные для отображения
	Court    *CourtInfo    `json:"court,omitempty"`
	TimeSlot *TimeSlotInfo `json:"timeSlot,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
// Карты courts/slots могут быть nil - тогда снимки не заполняются
func FromDomainBooking(b *domain.Booking, courts map[string]*domain.Court, slots map[string]*domain.TimeSlot) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		CourtID:     b.CourtID,
		TimeSlotID:  b.TimeSlotID,
		BookingDate: b.BookingDate.Format(domain.DateFormat),
		Status:      string(b.Status),
		PaymentID:   b.PaymentID,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}

	if court, ok := courts[b.CourtID]; ok {
		resp.Court = &CourtInfo{
			ID:           court.ID,
			Name:         court.Name,
			Location:     court.Location,
			PricePerHour: court.PricePerHour,
			ImageURL:     court.ImageURL,
		}
	}

	if slot, ok := slots[b.TimeSlotID]; ok {
		resp.TimeSlot = &TimeSlotInfo{
			ID:        slot.ID,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		}
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking, courts map[string]*domain.Court, slots map[string]*domain.TimeSlot) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking, courts, slots); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
