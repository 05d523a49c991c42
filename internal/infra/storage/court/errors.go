package court

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("court.repository: court not found")

	// ErrSlotNotFound возвращается, когда временной слот не найден
	ErrSlotNotFound = errors.New("court.repository: time slot not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("court.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("court.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("court.repository: failed to scan row")

	// ErrTransient возвращается при временных сбоях БД (обрыв соединения,
	// нехватка ресурсов) - такие операции безопасно повторить
	ErrTransient = errors.New("court.repository: transient store error")
)
