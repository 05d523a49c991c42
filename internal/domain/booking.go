package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCanceled  BookingStatus = "canceled"
)

// Booking represents a court booking in the system
type Booking struct {
	ID          string
	UserID      string
	CourtID     string
	TimeSlotID  string
	BookingDate time.Time // Календарная дата, которую покрывает слот
	Status      BookingStatus
	PaymentID   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still claims its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCanceled
}

// CanBeCancelled returns true if the booking can be cancelled
// Отмена подтверждённого (оплаченного) бронирования разрешена, возврат
// средств не выполняется - см. DESIGN.md
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCanceled
}

// CanTransitionTo проверяет допустимость перехода статуса
// Машина состояний:
//
//	pending   -> confirmed, canceled
//	confirmed -> canceled
//	canceled  -> (терминальный статус, переходы запрещены)
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	switch s {
	case StatusPending:
		return target == StatusConfirmed || target == StatusCanceled
	case StatusConfirmed:
		return target == StatusCanceled
	case StatusCanceled:
		return false
	default:
		return false
	}
}

// IsValid returns true if the status is one of the known booking statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCanceled:
		return true
	default:
		return false
	}
}
