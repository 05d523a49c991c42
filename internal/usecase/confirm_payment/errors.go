package confirm_payment

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("confirm_payment: booking not found")

	// ErrBookingCanceled возвращается при попытке подтвердить отменённое
	// бронирование: canceled - терминальный статус, опоздавший платёжный
	// сигнал не должен "воскрешать" бронирование
	ErrBookingCanceled = errors.New("confirm_payment: booking is canceled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_payment: internal error")
)
