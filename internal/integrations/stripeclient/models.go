package stripeclient

// CheckoutInput данные для создания checkout-сессии
type CheckoutInput struct {
	BookingID   string
	CourtName   string
	Amount      float64
	Currency    string
	BookingDate string
}

// CheckoutSession созданная сессия оплаты
type CheckoutSession struct {
	ID  string
	URL string
}

// EventType тип платёжного события
type EventType string

const (
	// EventCompleted оплата успешно завершена
	EventCompleted EventType = "completed"
	// EventCanceled сессия оплаты отменена или истекла
	EventCanceled EventType = "canceled"
	// EventIgnored событие, не требующее обработки
	EventIgnored EventType = "ignored"
)

// PaymentEvent нормализованное платёжное событие из вебхука
type PaymentEvent struct {
	Type        EventType
	BookingID   string
	AmountTotal float64
	Currency    string
}
