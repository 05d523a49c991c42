package payments

import "errors"

var (
	// ErrAccessDenied возвращается при попытке смотреть чужие платежи
	ErrAccessDenied = errors.New("payments: access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("payments: internal error")
)
