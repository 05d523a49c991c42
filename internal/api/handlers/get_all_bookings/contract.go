package get_all_bookings

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingModels "github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
)

type BookingsService interface {
	GetAllBookings(ctx context.Context, actor domain.Actor) (*bookingModels.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
