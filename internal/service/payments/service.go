package payments

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/payments/models"
)

// Service сервис для чтения истории платежей
type Service struct {
	paymentRepo PaymentRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса платежей
func NewService(paymentRepo PaymentRepository, logger Logger) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// GetUserPayments получает историю платежей пользователя
// Пользователь видит только собственную историю, администратор - любую
func (s *Service) GetUserPayments(ctx context.Context, userID string, actor domain.Actor) (*models.PaymentListResponse, error) {
	s.logger.Info("GetUserPayments: fetching payments for user=%s", userID)

	if userID != actor.UserID && !actor.IsAdmin() {
		s.logger.Warn("GetUserPayments: access denied for user=%s to payments of user=%s", actor.UserID, userID)
		return nil, ErrAccessDenied
	}

	payments, err := s.paymentRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserPayments: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserPayments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserPayments: successfully fetched %d payments for user=%s", len(payments), userID)
	return models.FromDomainPaymentList(payments), nil
}
