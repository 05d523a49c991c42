package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов активных бронирований
// Используется для фильтрации при проверке занятости слота
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
