package update_booking_status

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed canceled"`
}

// Validate проверяет структуру запроса
func (r *UpdateStatusRequest) Validate() error {
	return validate.Struct(r)
}
