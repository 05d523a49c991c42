package bookings

import (
	"context"
	"errors"
	"time"

	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	paymentRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/payment"
)

const retryDelay = 50 * time.Millisecond

// isTransient определяет, является ли ошибка хранилища временной
func isTransient(err error) bool {
	return errors.Is(err, bookingRepo.ErrTransient) ||
		errors.Is(err, courtRepo.ErrTransient) ||
		errors.Is(err, paymentRepo.ErrTransient)
}

// withRetry повторяет операцию один раз при временной ошибке хранилища
// Сбои сериализации обрабатываются на уровне транзакционного менеджера,
// здесь перехватываются только сбои соединения и нехватка ресурсов
func withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	if err == nil || !isTransient(err) {
		return err
	}

	select {
	case <-time.After(retryDelay):
	case <-ctx.Done():
		return ctx.Err()
	}

	return fn(ctx)
}
