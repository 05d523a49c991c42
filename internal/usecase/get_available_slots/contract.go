package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// CourtRepository интерфейс репозитория кортов и слотов
type CourtRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Court, error)
	GetSlotsByCourtAndDate(ctx context.Context, courtID string, date time.Time) ([]*domain.TimeSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
