package payment

import "errors"

var (
	// ErrPaymentNotFound возвращается, когда платёж не найден
	ErrPaymentNotFound = errors.New("payment.repository: payment not found")

	// ErrDuplicateCompleted возвращается при попытке записать второй
	// завершённый платёж для одного бронирования (uq_payments_completed_booking)
	ErrDuplicateCompleted = errors.New("payment.repository: completed payment already exists for booking")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("payment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("payment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("payment.repository: failed to scan row")

	// ErrTransient возвращается при временных сбоях БД - операцию безопасно повторить
	ErrTransient = errors.New("payment.repository: transient store error")
)
