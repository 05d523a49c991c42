package get_user_payments

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	paymentsService "github.com/m04kA/SMC-CourtBookingService/internal/service/payments"
)

const (
	msgUnauthorized = "требуется аутентификация"
	msgAccessDenied = "доступ запрещён"
)

type Handler struct {
	service PaymentsService
	logger  Logger
}

func NewHandler(service PaymentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{userId}/payments - Missing auth context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	userID := mux.Vars(r)["userId"]

	result, err := h.service.GetUserPayments(r.Context(), userID, actor)
	if err != nil {
		switch {
		case errors.Is(err, paymentsService.ErrAccessDenied):
			h.logger.Warn("GET /users/{userId}/payments - Access denied: user_id=%s, actor=%s", userID, actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /users/{userId}/payments - Failed to fetch payments: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{userId}/payments - Fetched %d payments: user_id=%s", len(result.Payments), userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
