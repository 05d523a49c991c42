package get_user_bookings

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingModels "github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
)

type BookingsService interface {
	GetUserBookings(ctx context.Context, userID string, actor domain.Actor) (*bookingModels.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
