package courts

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("courts: court not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("courts: internal error")
)
