package confirm_payment

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Request модель сигнала об успешной оплате
// Источник - вебхук платёжного провайдера или возврат клиента после checkout
type Request struct {
	BookingID     string
	Amount        float64
	Currency      string
	PaymentMethod string
}

// Response результат реконсиляции платежа
type Response struct {
	BookingID     string
	BookingStatus string
	PaymentID     string

	// AlreadyConfirmed true, если бронирование уже было подтверждено
	// и повторный сигнал обработан как no-op
	AlreadyConfirmed bool

	ConfirmedAt time.Time
}

func fromResult(booking *domain.Booking, payment *domain.Payment, alreadyConfirmed bool) *Response {
	resp := &Response{
		BookingID:        booking.ID,
		BookingStatus:    string(booking.Status),
		AlreadyConfirmed: alreadyConfirmed,
	}
	if payment != nil {
		resp.PaymentID = payment.ID
		resp.ConfirmedAt = payment.CreatedAt
	}
	return resp
}
