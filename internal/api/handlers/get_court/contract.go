package get_court

import (
	"context"

	courtModels "github.com/m04kA/SMC-CourtBookingService/internal/service/courts/models"
)

type CourtsService interface {
	GetByID(ctx context.Context, id string) (*courtModels.CourtResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
