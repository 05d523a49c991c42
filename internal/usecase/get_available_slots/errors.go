package get_available_slots

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	// Неизвестный корт - это ошибка, а не пустой список: вызывающий код
	// должен отличать "нет корта" от "на эту дату нет слотов"
	ErrCourtNotFound = errors.New("get_available_slots: court not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
