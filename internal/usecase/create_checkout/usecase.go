package create_checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/stripeclient"
)

// UseCase use case создания платёжной сессии для бронирования
type UseCase struct {
	bookingRepo BookingRepository
	courtRepo   CourtRepository
	paymentRepo PaymentRepository
	checkout    CheckoutProvider
	currency    string
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	paymentRepo PaymentRepository,
	checkout CheckoutProvider,
	currency string,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		courtRepo:   courtRepo,
		paymentRepo: paymentRepo,
		checkout:    checkout,
		currency:    currency,
		logger:      logger,
	}
}

// Execute создаёт pending-платёж и checkout-сессию провайдера
// Оплатить можно только собственное бронирование в статусе pending
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateCheckout: booking=%s, user=%s", req.BookingID, req.UserID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateCheckout: validation failed: %v", err)
		return nil, err
	}

	// 1. Получаем бронирование и проверяем владельца
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CreateCheckout: failed to get booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if booking.UserID != req.UserID {
		uc.logger.Warn("CreateCheckout: user=%s is not the owner of booking id=%s", req.UserID, booking.ID)
		return nil, ErrAccessDenied
	}

	// 2. Оплачивается только pending-бронирование
	if booking.Status != domain.StatusPending {
		uc.logger.Warn("CreateCheckout: booking id=%s has status %s, not payable", booking.ID, booking.Status)
		return nil, fmt.Errorf("%w: booking status is %s", ErrNotPayable, booking.Status)
	}

	// 3. Стоимость берём из справочника кортов
	court, err := uc.courtRepo.GetByID(ctx, booking.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Error("CreateCheckout: court id=%s for booking id=%s not found", booking.CourtID, booking.ID)
			return nil, fmt.Errorf("%w: court not found", ErrInternal)
		}
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 4. Фиксируем pending-платёж до ухода к провайдеру
	payment, err := uc.paymentRepo.Create(ctx, &domain.Payment{
		ID:            uuid.NewString(),
		BookingID:     booking.ID,
		UserID:        booking.UserID,
		Amount:        court.PricePerHour,
		Currency:      uc.currency,
		Status:        domain.PaymentPending,
		PaymentMethod: "card",
	})
	if err != nil {
		uc.logger.Error("CreateCheckout: failed to create payment for booking id=%s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to create payment: %v", ErrInternal, err)
	}

	// 5. Создаём checkout-сессию; booking_id в метаданных свяжет вебхук
	// с бронированием
	session, err := uc.checkout.CreateCheckoutSession(ctx, &stripeclient.CheckoutInput{
		BookingID:   booking.ID,
		CourtName:   court.Name,
		Amount:      court.PricePerHour,
		Currency:    uc.currency,
		BookingDate: booking.BookingDate.Format(domain.DateFormat),
	})
	if err != nil {
		uc.logger.Error("CreateCheckout: provider error for booking id=%s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}

	uc.logger.Info("CreateCheckout: session id=%s created for booking id=%s", session.ID, booking.ID)

	return &Response{
		BookingID:   booking.ID,
		PaymentID:   payment.ID,
		SessionID:   session.ID,
		CheckoutURL: session.URL,
		Amount:      court.PricePerHour,
		Currency:    uc.currency,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID == "" {
		return fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}
	if _, err := uuid.Parse(req.BookingID); err != nil {
		return fmt.Errorf("%w: bookingID must be a valid UUID", ErrInvalidInput)
	}
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}
	if _, err := uuid.Parse(req.UserID); err != nil {
		return fmt.Errorf("%w: userID must be a valid UUID", ErrInvalidInput)
	}
	return nil
}
