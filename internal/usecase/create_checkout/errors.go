package create_checkout

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("create_checkout: booking not found")

	// ErrAccessDenied возвращается при попытке оплатить чужое бронирование
	ErrAccessDenied = errors.New("create_checkout: access denied")

	// ErrNotPayable возвращается, когда бронирование не в статусе pending
	ErrNotPayable = errors.New("create_checkout: booking is not payable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_checkout: invalid input data")

	// ErrProvider возвращается при ошибке платёжного провайдера
	ErrProvider = errors.New("create_checkout: payment provider error")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_checkout: internal error")
)
