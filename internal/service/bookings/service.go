package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	courtRepo   CourtRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		courtRepo:   courtRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только своё бронирование, администратор - любое
func (s *Service) GetByID(ctx context.Context, id string, actor domain.Actor) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, actor.UserID)

	var booking *domain.Booking
	err := withRetry(ctx, func(ctx context.Context) error {
		var err error
		booking, err = s.bookingRepo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != actor.UserID && !actor.IsAdmin() {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", actor.UserID, id)
		return nil, ErrAccessDenied
	}

	courts, slots, err := s.loadSnapshots(ctx, []*domain.Booking{booking})
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking, courts, slots), nil
}

// GetUserBookings получает историю бронирований пользователя
// Пользователь видит только собственную историю, администратор - любую
func (s *Service) GetUserBookings(ctx context.Context, userID string, actor domain.Actor) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s", userID)

	if userID != actor.UserID && !actor.IsAdmin() {
		s.logger.Warn("GetUserBookings: access denied for user=%s to bookings of user=%s", actor.UserID, userID)
		return nil, ErrAccessDenied
	}

	var bookings []*domain.Booking
	err := withRetry(ctx, func(ctx context.Context) error {
		var err error
		bookings, err = s.bookingRepo.GetByUserID(ctx, userID)
		return err
	})
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	courts, slots, err := s.loadSnapshots(ctx, bookings)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%s", len(bookings), userID)
	return models.FromDomainBookingList(bookings, courts, slots), nil
}

// GetAllBookings получает все бронирования
// Доступно только администраторам
func (s *Service) GetAllBookings(ctx context.Context, actor domain.Actor) (*models.BookingListResponse, error) {
	s.logger.Info("GetAllBookings: fetching all bookings for user=%s", actor.UserID)

	if !actor.IsAdmin() {
		s.logger.Warn("GetAllBookings: access denied for user=%s", actor.UserID)
		return nil, ErrAccessDenied
	}

	var bookings []*domain.Booking
	err := withRetry(ctx, func(ctx context.Context) error {
		var err error
		bookings, err = s.bookingRepo.GetAll(ctx)
		return err
	})
	if err != nil {
		s.logger.Error("GetAllBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAllBookings - repository error: %v", ErrInternal, err)
	}

	courts, slots, err := s.loadSnapshots(ctx, bookings)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetAllBookings: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings, courts, slots), nil
}

// Cancel отменяет бронирование и освобождает слот
// Пользователь может отменить только своё бронирование, администратор - любое
// Статус и флаг слота меняются атомарно, в одной транзакции
func (s *Service) Cancel(ctx context.Context, bookingID string, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%s by user=%s", bookingID, req.Actor.UserID)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Получаем бронирование с блокировкой (FOR UPDATE)
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		// Проверяем права доступа
		if booking.UserID != req.Actor.UserID && !req.Actor.IsAdmin() {
			return ErrAccessDenied
		}

		// Отменённое бронирование отменить повторно нельзя
		if !booking.CanBeCancelled() {
			return ErrCannotCancel
		}

		// Отмена оплаченного бронирования разрешена, но возврат средств
		// не автоматизирован - оставляем след в логах
		if booking.Status == domain.StatusConfirmed {
			s.logger.Warn("Cancel: cancelling confirmed booking id=%s, refund must be handled manually", bookingID)
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, domain.StatusCanceled); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		// Освобождаем слот в той же транзакции
		if err := s.courtRepo.SetSlotBooked(txCtx, booking.TimeSlotID, false); err != nil {
			return fmt.Errorf("%w: Cancel - failed to release slot: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) || errors.Is(err, ErrAccessDenied) || errors.Is(err, ErrCannotCancel) {
			s.logger.Warn("Cancel: booking id=%s: %v", bookingID, err)
		} else {
			s.logger.Error("Cancel: booking id=%s: %v", bookingID, err)
		}
		return err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", bookingID)
	return nil
}

// UpdateStatus обновляет статус бронирования
// Доступно только администраторам; переход валидируется по машине состояний
func (s *Service) UpdateStatus(ctx context.Context, bookingID string, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%s to status=%s by user=%s",
		bookingID, req.Status, req.Actor.UserID)

	if !req.Actor.IsAdmin() {
		s.logger.Warn("UpdateStatus: access denied for user=%s", req.Actor.UserID)
		return ErrAccessDenied
	}

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		if !booking.Status.CanTransitionTo(newStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, newStatus); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		// Перевод в canceled освобождает слот
		if newStatus == domain.StatusCanceled {
			if err := s.courtRepo.SetSlotBooked(txCtx, booking.TimeSlotID, false); err != nil {
				return fmt.Errorf("%w: UpdateStatus - failed to release slot: %v", ErrInternal, err)
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) || errors.Is(err, ErrInvalidTransition) {
			s.logger.Warn("UpdateStatus: booking id=%s: %v", bookingID, err)
		} else {
			s.logger.Error("UpdateStatus: booking id=%s: %v", bookingID, err)
		}
		return err
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%s to status=%s", bookingID, newStatus)
	return nil
}

// Вспомогательные методы

// loadSnapshots подгружает корты и слоты для денормализации ответов
// Батчевые выборки вместо запроса на каждое бронирование
func (s *Service) loadSnapshots(ctx context.Context, bookings []*domain.Booking) (map[string]*domain.Court, map[string]*domain.TimeSlot, error) {
	if len(bookings) == 0 {
		return nil, nil, nil
	}

	courtIDs := make([]string, 0, len(bookings))
	slotIDs := make([]string, 0, len(bookings))
	seenCourts := make(map[string]struct{}, len(bookings))
	seenSlots := make(map[string]struct{}, len(bookings))

	for _, b := range bookings {
		if _, ok := seenCourts[b.CourtID]; !ok {
			seenCourts[b.CourtID] = struct{}{}
			courtIDs = append(courtIDs, b.CourtID)
		}
		if _, ok := seenSlots[b.TimeSlotID]; !ok {
			seenSlots[b.TimeSlotID] = struct{}{}
			slotIDs = append(slotIDs, b.TimeSlotID)
		}
	}

	courts, err := s.courtRepo.GetByIDs(ctx, courtIDs)
	if err != nil {
		s.logger.Error("loadSnapshots: failed to load courts: %v", err)
		return nil, nil, fmt.Errorf("%w: loadSnapshots - failed to load courts: %v", ErrInternal, err)
	}

	slots, err := s.courtRepo.GetSlotsByIDs(ctx, slotIDs)
	if err != nil {
		s.logger.Error("loadSnapshots: failed to load slots: %v", err)
		return nil, nil, fmt.Errorf("%w: loadSnapshots - failed to load slots: %v", ErrInternal, err)
	}

	return courts, slots, nil
}
