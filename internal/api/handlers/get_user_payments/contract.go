package get_user_payments

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	paymentModels "github.com/m04kA/SMC-CourtBookingService/internal/service/payments/models"
)

type PaymentsService interface {
	GetUserPayments(ctx context.Context, userID string, actor domain.Actor) (*paymentModels.PaymentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
