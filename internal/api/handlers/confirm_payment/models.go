package confirm_payment

import (
	"github.com/go-playground/validator/v10"

	confirmPayment "github.com/m04kA/SMC-CourtBookingService/internal/usecase/confirm_payment"
)

var validate = validator.New()

// ConfirmPaymentRequest HTTP request model
// Используется при возврате клиента со страницы оплаты; вебхук
// провайдера обрабатывается отдельным обработчиком
type ConfirmPaymentRequest struct {
	BookingID     string  `json:"bookingId" validate:"required,uuid"`
	Amount        float64 `json:"amount" validate:"gte=0"`
	Currency      string  `json:"currency" validate:"required"`
	PaymentMethod string  `json:"paymentMethod,omitempty"`
}

// Validate проверяет структуру запроса
func (r *ConfirmPaymentRequest) Validate() error {
	return validate.Struct(r)
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ConfirmPaymentRequest) ToUseCaseRequest() *confirmPayment.Request {
	method := r.PaymentMethod
	if method == "" {
		method = "card"
	}

	return &confirmPayment.Request{
		BookingID:     r.BookingID,
		Amount:        r.Amount,
		Currency:      r.Currency,
		PaymentMethod: method,
	}
}

// ConfirmPaymentResponse HTTP response model
type ConfirmPaymentResponse struct {
	BookingID        string `json:"bookingId"`
	BookingStatus    string `json:"bookingStatus"`
	PaymentID        string `json:"paymentId,omitempty"`
	AlreadyConfirmed bool   `json:"alreadyConfirmed"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmPayment.Response) *ConfirmPaymentResponse {
	return &ConfirmPaymentResponse{
		BookingID:        resp.BookingID,
		BookingStatus:    resp.BookingStatus,
		PaymentID:        resp.PaymentID,
		AlreadyConfirmed: resp.AlreadyConfirmed,
	}
}
