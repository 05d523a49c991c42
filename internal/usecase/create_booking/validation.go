package create_booking

import (
	"fmt"

	"github.com/google/uuid"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}
	if _, err := uuid.Parse(req.UserID); err != nil {
		return fmt.Errorf("%w: userID must be a valid UUID", ErrInvalidInput)
	}

	if req.CourtID == "" {
		return fmt.Errorf("%w: courtID is required", ErrInvalidInput)
	}
	if _, err := uuid.Parse(req.CourtID); err != nil {
		return fmt.Errorf("%w: courtID must be a valid UUID", ErrInvalidInput)
	}

	if req.TimeSlotID == "" {
		return fmt.Errorf("%w: timeSlotID is required", ErrInvalidInput)
	}
	if _, err := uuid.Parse(req.TimeSlotID); err != nil {
		return fmt.Errorf("%w: timeSlotID must be a valid UUID", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
