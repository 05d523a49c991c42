package stripeclient

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/m04kA/SMC-CourtBookingService/internal/config"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client обёртка над Stripe API для оплаты бронирований
type Client struct {
	webhookSecret string
	successURL    string
	cancelURL     string
	logger        Logger
}

// NewClient создает клиент Stripe
// Секретный ключ выставляется глобально, как того требует SDK
func NewClient(cfg config.StripeConfig, logger Logger) *Client {
	stripe.Key = cfg.SecretKey

	return &Client{
		webhookSecret: cfg.WebhookSecret,
		successURL:    cfg.SuccessURL,
		cancelURL:     cfg.CancelURL,
		logger:        logger,
	}
}

// CreateCheckoutSession создаёт сессию оплаты бронирования
// booking_id кладётся в метаданные сессии: по нему вебхук свяжет
// платёжное событие с бронированием
func (c *Client) CreateCheckoutSession(ctx context.Context, in *CheckoutInput) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(in.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(in.CourtName),
						Description: stripe.String(fmt.Sprintf("Бронирование корта на %s", in.BookingDate)),
					},
					// Stripe принимает суммы в минимальных единицах валюты
					UnitAmount: stripe.Int64(int64(math.Round(in.Amount * 100))),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(c.successURL),
		CancelURL:  stripe.String(c.cancelURL),
		Metadata: map[string]string{
			"booking_id": in.BookingID,
		},
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateSession, err)
	}

	return &CheckoutSession{
		ID:  sess.ID,
		URL: sess.URL,
	}, nil
}

// ParseWebhookEvent проверяет подпись и нормализует событие вебхука
// При пустом webhook_secret подпись не проверяется (режим разработки)
func (c *Client) ParseWebhookEvent(payload []byte, signature string) (*PaymentEvent, error) {
	var event stripe.Event

	if c.webhookSecret != "" {
		verified, err := webhook.ConstructEvent(payload, signature, c.webhookSecret)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
		}
		event = verified
	} else {
		c.logger.Warn("ParseWebhookEvent: webhook secret is empty, skipping signature verification")
		if err := json.Unmarshal(payload, &event); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
	}

	switch event.Type {
	case "checkout.session.completed":
		return c.parseSessionEvent(&event, EventCompleted)
	case "checkout.session.expired":
		return c.parseSessionEvent(&event, EventCanceled)
	default:
		c.logger.Info("ParseWebhookEvent: ignoring event type=%s", event.Type)
		return &PaymentEvent{Type: EventIgnored}, nil
	}
}

func (c *Client) parseSessionEvent(event *stripe.Event, eventType EventType) (*PaymentEvent, error) {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	bookingID, ok := sess.Metadata["booking_id"]
	if !ok || bookingID == "" {
		return nil, ErrMissingBookingID
	}

	return &PaymentEvent{
		Type:        eventType,
		BookingID:   bookingID,
		AmountTotal: float64(sess.AmountTotal) / 100,
		Currency:    string(sess.Currency),
	}, nil
}
