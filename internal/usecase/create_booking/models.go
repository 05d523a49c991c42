package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID     string    // ID пользователя (из контекста аутентификации)
	CourtID    string    // ID корта
	TimeSlotID string    // ID временного слота
	Date       time.Time // Дата бронирования (без времени)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          string
	UserID      string
	CourtID     string
	TimeSlotID  string
	BookingDate time.Time
	Status      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FromDomainBooking конвертирует доменную модель в ответ use case
func FromDomainBooking(b *domain.Booking) *Response {
	return &Response{
		ID:          b.ID,
		UserID:      b.UserID,
		CourtID:     b.CourtID,
		TimeSlotID:  b.TimeSlotID,
		BookingDate: b.BookingDate,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
