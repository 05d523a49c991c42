package models

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// PaymentResponse ответ с данными платежа
type PaymentResponse struct {
	ID            string    `json:"id"`
	BookingID     string    `json:"bookingId"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"paymentMethod"`
	CreatedAt     time.Time `json:"createdAt"`
}

// PaymentListResponse ответ с историей платежей
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// FromDomainPaymentList конвертирует список domain моделей в DTO
func FromDomainPaymentList(payments []*domain.Payment) *PaymentListResponse {
	resp := &PaymentListResponse{
		Payments: make([]PaymentResponse, 0, len(payments)),
	}

	for _, p := range payments {
		resp.Payments = append(resp.Payments, PaymentResponse{
			ID:            p.ID,
			BookingID:     p.BookingID,
			Amount:        p.Amount,
			Currency:      p.Currency,
			Status:        string(p.Status),
			PaymentMethod: p.PaymentMethod,
			CreatedAt:     p.CreatedAt,
		})
	}

	return resp
}
