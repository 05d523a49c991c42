package stripeclient

import "errors"

var (
	// ErrCreateSession возвращается при ошибке создания checkout-сессии
	ErrCreateSession = errors.New("stripeclient: failed to create checkout session")

	// ErrInvalidSignature возвращается при неверной подписи вебхука
	ErrInvalidSignature = errors.New("stripeclient: invalid webhook signature")

	// ErrInvalidPayload возвращается при нечитаемом теле вебхука
	ErrInvalidPayload = errors.New("stripeclient: invalid webhook payload")

	// ErrMissingBookingID возвращается, когда в метаданных события нет booking_id
	ErrMissingBookingID = errors.New("stripeclient: event has no booking_id metadata")
)
