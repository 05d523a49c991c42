package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
)

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	courtRepo   CourtRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		courtRepo:   courtRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка слота и вставка выполняются в одной сериализуемой транзакции,
// а сама вставка дополнительно защищена частичным уникальным индексом:
// из двух одновременных запросов на один слот ровно один получает бронирование,
// второй - ErrSlotTaken
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, court=%s, slot=%s, date=%s",
		req.UserID, req.CourtID, req.TimeSlotID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование корта (справочные данные, вне транзакции)
	if _, err := uc.courtRepo.GetByID(ctx, req.CourtID); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("CreateBooking: court id=%s not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CreateBooking: failed to get court id=%s: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем слот с блокировкой (FOR UPDATE)
		slot, err := uc.courtRepo.GetSlotByID(txCtx, req.TimeSlotID)
		if err != nil {
			if errors.Is(err, courtRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		// 3.2. Слот должен принадлежать указанному корту
		if slot.CourtID != req.CourtID {
			uc.logger.Warn("CreateBooking: slot id=%s does not belong to court id=%s", req.TimeSlotID, req.CourtID)
			return ErrSlotNotFound
		}

		// 3.3. Дата бронирования должна совпадать с датой начала слота
		if !slot.CoversDate(req.Date) {
			uc.logger.Warn("CreateBooking: date %s does not match slot id=%s start %s",
				req.Date.Format(domain.DateFormat), slot.ID, slot.StartTime.Format(domain.DateFormat))
			return ErrDateMismatch
		}

		// 3.4. Быстрая проверка занятости по флагу
		if slot.IsBooked {
			uc.logger.Warn("CreateBooking: slot id=%s is already booked", slot.ID)
			return ErrSlotTaken
		}

		// 3.5. Вставляем бронирование; уникальный индекс - последний рубеж
		// против гонки, проверка check-then-act сама по себе недостаточна
		booking := &domain.Booking{
			UserID:      req.UserID,
			CourtID:     req.CourtID,
			TimeSlotID:  req.TimeSlotID,
			BookingDate: req.Date,
			Status:      domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: lost race for slot id=%s", req.TimeSlotID)
				return ErrSlotTaken
			}
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 3.6. Помечаем слот занятым в той же транзакции
		if err := uc.courtRepo.SetSlotBooked(txCtx, slot.ID, true); err != nil {
			return fmt.Errorf("%w: failed to mark slot booked: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s (user=%s, slot=%s)",
		result.ID, req.UserID, req.TimeSlotID)

	return FromDomainBooking(result), nil
}
