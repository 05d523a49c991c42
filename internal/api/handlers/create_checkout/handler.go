package create_checkout

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	createCheckout "github.com/m04kA/SMC-CourtBookingService/internal/usecase/create_checkout"
)

const (
	msgUnauthorized    = "требуется аутентификация"
	msgBookingNotFound = "бронирование не найдено"
	msgAccessDenied    = "доступ запрещён"
	msgNotPayable      = "бронирование недоступно для оплаты"
	msgProviderError   = "платёжный сервис временно недоступен"
	msgInvalidRequest  = "некорректные параметры запроса"
)

type Handler struct {
	useCase CreateCheckoutUseCase
	logger  Logger
}

func NewHandler(useCase CreateCheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{bookingId}/checkout - Missing auth context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	bookingID := mux.Vars(r)["bookingId"]

	result, err := h.useCase.Execute(r.Context(), &createCheckout.Request{
		BookingID: bookingID,
		UserID:    actor.UserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, createCheckout.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{bookingId}/checkout - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, createCheckout.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{bookingId}/checkout - Access denied: booking_id=%s, user_id=%s",
				bookingID, actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, createCheckout.ErrNotPayable):
			h.logger.Warn("POST /bookings/{bookingId}/checkout - Not payable: booking_id=%s", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgNotPayable)

		case errors.Is(err, createCheckout.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{bookingId}/checkout - Invalid input: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, createCheckout.ErrProvider):
			h.logger.Error("POST /bookings/{bookingId}/checkout - Provider error: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgProviderError)

		default:
			h.logger.Error("POST /bookings/{bookingId}/checkout - Failed to create checkout: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{bookingId}/checkout - Checkout session created: booking_id=%s, session_id=%s",
		bookingID, result.SessionID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
