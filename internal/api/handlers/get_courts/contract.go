package get_courts

import (
	"context"

	courtModels "github.com/m04kA/SMC-CourtBookingService/internal/service/courts/models"
)

type CourtsService interface {
	GetAll(ctx context.Context) (*courtModels.CourtListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
