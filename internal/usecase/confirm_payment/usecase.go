package confirm_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	paymentRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-CourtBookingService/pkg/ptr"
)

// UseCase use case подтверждения оплаты бронирования
type UseCase struct {
	bookingRepo BookingRepository
	paymentRepo PaymentRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет подтверждение оплаты
// Операция идемпотентна: повторный сигнал по уже подтверждённому бронированию
// возвращает успешный результат с AlreadyConfirmed=true и не создаёт второй
// completed-платёж (гарантируется частичным уникальным индексом)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmPayment: booking=%s, amount=%.2f %s", req.BookingID, req.Amount, req.Currency)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmPayment: validation failed: %v", err)
		return nil, err
	}

	var (
		result           *domain.Booking
		payment          *domain.Payment
		alreadyConfirmed bool
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование с блокировкой (FOR UPDATE)
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2. Отменённое бронирование подтвердить нельзя
		if booking.IsCancelled() {
			return ErrBookingCanceled
		}

		// 3. Уже подтверждено - идемпотентный no-op
		if booking.Status == domain.StatusConfirmed {
			existing, err := uc.paymentRepo.GetCompletedByBookingID(txCtx, booking.ID)
			if err != nil && !errors.Is(err, paymentRepo.ErrPaymentNotFound) {
				return fmt.Errorf("%w: failed to get existing payment: %v", ErrInternal, err)
			}
			result = booking
			payment = existing
			alreadyConfirmed = true
			return nil
		}

		// 4. Фиксируем платёж; индекс на completed-платежах отсекает
		// гонку двух одновременных сигналов по одному бронированию
		created, err := uc.paymentRepo.Create(txCtx, &domain.Payment{
			ID:            uuid.NewString(),
			BookingID:     booking.ID,
			UserID:        booking.UserID,
			Amount:        req.Amount,
			Currency:      req.Currency,
			Status:        domain.PaymentCompleted,
			PaymentMethod: req.PaymentMethod,
		})
		if err != nil {
			if errors.Is(err, paymentRepo.ErrDuplicateCompleted) {
				uc.logger.Warn("ConfirmPayment: booking id=%s already has a completed payment", booking.ID)
				existing, getErr := uc.paymentRepo.GetCompletedByBookingID(txCtx, booking.ID)
				if getErr != nil && !errors.Is(getErr, paymentRepo.ErrPaymentNotFound) {
					return fmt.Errorf("%w: failed to get existing payment: %v", ErrInternal, getErr)
				}
				// Параллельная транзакция уже подтвердила бронирование
				booking.Status = domain.StatusConfirmed
				result = booking
				payment = existing
				alreadyConfirmed = true
				return nil
			}
			return fmt.Errorf("%w: failed to create payment: %v", ErrInternal, err)
		}

		// 5. Переводим бронирование в confirmed и привязываем платёж
		if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, domain.StatusConfirmed); err != nil {
			return fmt.Errorf("%w: failed to confirm booking: %v", ErrInternal, err)
		}
		if err := uc.bookingRepo.SetPaymentID(txCtx, booking.ID, created.ID); err != nil {
			return fmt.Errorf("%w: failed to link payment: %v", ErrInternal, err)
		}

		booking.Status = domain.StatusConfirmed
		booking.PaymentID = ptr.Ptr(created.ID)

		result = booking
		payment = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	if alreadyConfirmed {
		uc.logger.Info("ConfirmPayment: booking id=%s already confirmed, no-op", result.ID)
	} else {
		uc.logger.Info("ConfirmPayment: booking id=%s confirmed, payment id=%s", result.ID, payment.ID)
	}

	return fromResult(result, payment, alreadyConfirmed), nil
}

// ExecuteCanceled обрабатывает сигнал об отмене/истечении оплаты
// Бронирование остаётся pending (пользователь может оплатить повторно),
// незавершённые платежи помечаются как failed
func (uc *UseCase) ExecuteCanceled(ctx context.Context, bookingID string) error {
	uc.logger.Info("ConfirmPayment: payment canceled for booking=%s", bookingID)

	if bookingID == "" {
		return fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}
	if _, err := uuid.Parse(bookingID); err != nil {
		return fmt.Errorf("%w: bookingID must be a valid UUID", ErrInvalidInput)
	}

	failed, err := uc.paymentRepo.FailPendingByBookingID(ctx, bookingID)
	if err != nil {
		uc.logger.Error("ConfirmPayment: failed to mark payments failed for booking=%s: %v", bookingID, err)
		return fmt.Errorf("%w: failed to mark payments failed: %v", ErrInternal, err)
	}

	uc.logger.Info("ConfirmPayment: booking=%s stays pending, %d payment(s) marked failed", bookingID, failed)
	return nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID == "" {
		return fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}
	if _, err := uuid.Parse(req.BookingID); err != nil {
		return fmt.Errorf("%w: bookingID must be a valid UUID", ErrInvalidInput)
	}
	if req.Amount < 0 {
		return fmt.Errorf("%w: amount must be non-negative", ErrInvalidInput)
	}
	return nil
}
