package create_booking

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("create_booking: court not found")

	// ErrSlotNotFound возвращается, когда слот не найден или не принадлежит корту
	ErrSlotNotFound = errors.New("create_booking: time slot not found")

	// ErrSlotTaken возвращается, когда слот уже занят активным бронированием
	// (в том числе когда проиграна гонка двух одновременных запросов)
	ErrSlotTaken = errors.New("create_booking: slot already booked")

	// ErrDateMismatch возвращается, когда дата бронирования не совпадает
	// с датой начала слота
	ErrDateMismatch = errors.New("create_booking: booking date does not match slot date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
