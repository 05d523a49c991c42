package create_checkout

import createCheckout "github.com/m04kA/SMC-CourtBookingService/internal/usecase/create_checkout"

// CheckoutResponse HTTP response model
type CheckoutResponse struct {
	BookingID   string  `json:"bookingId"`
	PaymentID   string  `json:"paymentId"`
	SessionID   string  `json:"sessionId"`
	CheckoutURL string  `json:"checkoutUrl"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createCheckout.Response) *CheckoutResponse {
	return &CheckoutResponse{
		BookingID:   resp.BookingID,
		PaymentID:   resp.PaymentID,
		SessionID:   resp.SessionID,
		CheckoutURL: resp.CheckoutURL,
		Amount:      resp.Amount,
		Currency:    resp.Currency,
	}
}
