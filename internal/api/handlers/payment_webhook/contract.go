package payment_webhook

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/stripeclient"
	confirmPayment "github.com/m04kA/SMC-CourtBookingService/internal/usecase/confirm_payment"
)

type ConfirmPaymentUseCase interface {
	Execute(ctx context.Context, req *confirmPayment.Request) (*confirmPayment.Response, error)
	ExecuteCanceled(ctx context.Context, bookingID string) error
}

type WebhookParser interface {
	ParseWebhookEvent(payload []byte, signature string) (*stripeclient.PaymentEvent, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
