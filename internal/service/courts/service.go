package courts

import (
	"context"
	"errors"
	"fmt"

	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/courts/models"
)

// Service сервис для работы со справочником кортов
type Service struct {
	courtRepo CourtRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса кортов
func NewService(courtRepo CourtRepository, logger Logger) *Service {
	return &Service{
		courtRepo: courtRepo,
		logger:    logger,
	}
}

// GetAll получает список всех кортов
func (s *Service) GetAll(ctx context.Context) (*models.CourtListResponse, error) {
	s.logger.Info("GetAll: fetching courts")

	courts, err := s.courtRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAll: successfully fetched %d courts", len(courts))
	return models.FromDomainCourtList(courts), nil
}

// GetByID получает корт по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.CourtResponse, error) {
	s.logger.Info("GetByID: fetching court id=%s", id)

	court, err := s.courtRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("GetByID: court id=%s not found", id)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("GetByID: repository error for court id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched court id=%s", id)
	return models.FromDomainCourt(court), nil
}
