package create_checkout

// Request модель запроса на создание платёжной сессии
type Request struct {
	BookingID string
	UserID    string
}

// Response модель ответа с данными для редиректа на оплату
type Response struct {
	BookingID   string
	PaymentID   string
	SessionID   string
	CheckoutURL string
	Amount      float64
	Currency    string
}
