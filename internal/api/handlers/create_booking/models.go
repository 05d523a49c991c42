package create_booking

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-CourtBookingService/internal/usecase/create_booking"
)

var validate = validator.New()

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CourtID     string `json:"courtId" validate:"required,uuid"`
	TimeSlotID  string `json:"timeSlotId" validate:"required,uuid"`
	BookingDate string `json:"bookingDate" validate:"required,datetime=2006-01-02"` // "2025-10-15"
}

// Validate проверяет структуру запроса
func (r *CreateBookingRequest) Validate() error {
	return validate.Struct(r)
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	CourtID     string `json:"courtId"`
	TimeSlotID  string `json:"timeSlotId"`
	BookingDate string `json:"bookingDate"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// userID приходит из контекста аутентификации, не из тела запроса
func (r *CreateBookingRequest) ToUseCaseRequest(userID string) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:     userID,
		CourtID:    r.CourtID,
		TimeSlotID: r.TimeSlotID,
		Date:       bookingDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		UserID:      resp.UserID,
		CourtID:     resp.CourtID,
		TimeSlotID:  resp.TimeSlotID,
		BookingDate: resp.BookingDate.Format(domain.DateFormat),
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
