package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
)

func TestAuth(t *testing.T) {
	t.Parallel()

	validUserID := uuid.NewString()

	testCases := []struct {
		name           string
		userID         string
		role           string
		expectedStatus int
		expectedActor  *domain.Actor
	}{
		{
			name:           "player with explicit role",
			userID:         validUserID,
			role:           "player",
			expectedStatus: http.StatusOK,
			expectedActor:  &domain.Actor{UserID: validUserID, Role: domain.RolePlayer},
		},
		{
			name:           "admin role",
			userID:         validUserID,
			role:           "admin",
			expectedStatus: http.StatusOK,
			expectedActor:  &domain.Actor{UserID: validUserID, Role: domain.RoleAdmin},
		},
		{
			name:           "missing role defaults to player",
			userID:         validUserID,
			role:           "",
			expectedStatus: http.StatusOK,
			expectedActor:  &domain.Actor{UserID: validUserID, Role: domain.RolePlayer},
		},
		{
			name:           "missing user id",
			userID:         "",
			role:           "player",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid user id",
			userID:         "not-a-uuid",
			role:           "player",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown role",
			userID:         validUserID,
			role:           "superuser",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var gotActor *domain.Actor
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				actor, ok := ActorFromContext(r.Context())
				require.True(t, ok)
				gotActor = &actor
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
			if tc.userID != "" {
				req.Header.Set(HeaderUserID, tc.userID)
			}
			if tc.role != "" {
				req.Header.Set(HeaderUserRole, tc.role)
			}

			rr := httptest.NewRecorder()
			Auth(logger.NewDiscard())(next).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedActor != nil {
				require.NotNil(t, gotActor)
				assert.Equal(t, *tc.expectedActor, *gotActor)
			} else {
				assert.Nil(t, gotActor, "next handler must not run")
				assert.Contains(t, rr.Body.String(), "error")
			}
		})
	}
}

func TestActorFromContext_MissingAuth(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := ActorFromContext(req.Context())
	assert.False(t, ok)
}
