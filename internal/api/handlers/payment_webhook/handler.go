package payment_webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/stripeclient"
	confirmPayment "github.com/m04kA/SMC-CourtBookingService/internal/usecase/confirm_payment"
)

const (
	// SignatureHeader заголовок с подписью вебхука Stripe
	SignatureHeader = "Stripe-Signature"

	// Вебхуки больше мегабайта не принимаем
	maxPayloadBytes = 1 << 20
)

const (
	msgInvalidPayload   = "некорректное тело вебхука"
	msgInvalidSignature = "некорректная подпись вебхука"
)

// receivedResponse подтверждение приёма события
type receivedResponse struct {
	Received bool `json:"received"`
}

type Handler struct {
	useCase ConfirmPaymentUseCase
	parser  WebhookParser
	logger  Logger
}

func NewHandler(useCase ConfirmPaymentUseCase, parser WebhookParser, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		parser:  parser,
		logger:  logger,
	}
}

// Handle POST /api/v1/webhooks/stripe
// Провайдер ретраит вебхук до получения 2xx, поэтому обработанные
// и заведомо неисправимые события подтверждаются, а временные сбои
// возвращают 500, чтобы провайдер повторил доставку
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		h.logger.Warn("POST /webhooks/stripe - Failed to read payload: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPayload)
		return
	}

	event, err := h.parser.ParseWebhookEvent(payload, r.Header.Get(SignatureHeader))
	if err != nil {
		switch {
		case errors.Is(err, stripeclient.ErrInvalidSignature):
			h.logger.Warn("POST /webhooks/stripe - Invalid signature: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSignature)

		case errors.Is(err, stripeclient.ErrMissingBookingID):
			// Событие без booking_id переиграть невозможно - подтверждаем
			h.logger.Warn("POST /webhooks/stripe - Event without booking_id, acknowledging")
			handlers.RespondJSON(w, http.StatusOK, receivedResponse{Received: true})

		default:
			h.logger.Warn("POST /webhooks/stripe - Invalid payload: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPayload)
		}
		return
	}

	switch event.Type {
	case stripeclient.EventCompleted:
		h.handleCompleted(w, r, event)

	case stripeclient.EventCanceled:
		h.handleCanceled(w, r, event)

	default:
		h.logger.Info("POST /webhooks/stripe - Ignored event")
		handlers.RespondJSON(w, http.StatusOK, receivedResponse{Received: true})
	}
}

func (h *Handler) handleCompleted(w http.ResponseWriter, r *http.Request, event *stripeclient.PaymentEvent) {
	_, err := h.useCase.Execute(r.Context(), &confirmPayment.Request{
		BookingID:     event.BookingID,
		Amount:        event.AmountTotal,
		Currency:      event.Currency,
		PaymentMethod: "stripe",
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmPayment.ErrBookingCanceled):
			// Опоздавший платёж по отменённому бронированию: подтверждение
			// не воскрешает бронирование, ретраи провайдера бессмысленны
			h.logger.Warn("POST /webhooks/stripe - Late payment for canceled booking: booking_id=%s", event.BookingID)
			handlers.RespondJSON(w, http.StatusOK, receivedResponse{Received: true})

		case errors.Is(err, confirmPayment.ErrBookingNotFound), errors.Is(err, confirmPayment.ErrInvalidInput):
			h.logger.Warn("POST /webhooks/stripe - Unprocessable event: booking_id=%s, error=%v", event.BookingID, err)
			handlers.RespondJSON(w, http.StatusOK, receivedResponse{Received: true})

		default:
			h.logger.Error("POST /webhooks/stripe - Failed to confirm payment: booking_id=%s, error=%v",
				event.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /webhooks/stripe - Payment confirmed: booking_id=%s", event.BookingID)
	handlers.RespondJSON(w, http.StatusOK, receivedResponse{Received: true})
}

func (h *Handler) handleCanceled(w http.ResponseWriter, r *http.Request, event *stripeclient.PaymentEvent) {
	if err := h.useCase.ExecuteCanceled(r.Context(), event.BookingID); err != nil {
		if errors.Is(err, confirmPayment.ErrInvalidInput) {
			h.logger.Warn("POST /webhooks/stripe - Unprocessable cancel event: booking_id=%s, error=%v",
				event.BookingID, err)
			handlers.RespondJSON(w, http.StatusOK, receivedResponse{Received: true})
			return
		}

		h.logger.Error("POST /webhooks/stripe - Failed to handle canceled payment: booking_id=%s, error=%v",
			event.BookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /webhooks/stripe - Payment canceled, booking stays pending: booking_id=%s", event.BookingID)
	handlers.RespondJSON(w, http.StatusOK, receivedResponse{Received: true})
}
