package get_booking

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingModels "github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
)

type BookingsService interface {
	GetByID(ctx context.Context, id string, actor domain.Actor) (*bookingModels.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
