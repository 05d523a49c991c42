package domain

import "time"

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Payment represents a payment attempt for a booking
// Инвариант: на одно бронирование существует не более одного платежа
// со статусом completed (частичный уникальный индекс в БД)
type Payment struct {
	ID            string
	BookingID     string
	UserID        string
	Amount        float64
	Currency      string
	Status        PaymentStatus
	PaymentMethod string

	CreatedAt time.Time
}
