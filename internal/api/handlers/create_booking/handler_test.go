package create_booking

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-CourtBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error

	gotReq *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func newRouter(uc CreateBookingUseCase) *mux.Router {
	handler := NewHandler(uc, logger.NewDiscard())

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth(logger.NewDiscard()))
	protected.HandleFunc("/bookings", handler.Handle).Methods(http.MethodPost)

	return r
}

func TestHandle_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.NewString()
	courtID := uuid.NewString()
	slotID := uuid.NewString()

	uc := &fakeUseCase{
		resp: &createBooking.Response{
			ID:          uuid.NewString(),
			UserID:      userID,
			CourtID:     courtID,
			TimeSlotID:  slotID,
			BookingDate: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
			Status:      "pending",
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		},
	}

	body := fmt.Sprintf(`{"courtId":%q,"timeSlotId":%q,"bookingDate":"2025-10-15"}`, courtID, slotID)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(body))
	req.Header.Set(middleware.HeaderUserID, userID)

	rr := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"pending"`)

	// userID берётся из заголовка аутентификации, не из тела
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, userID, uc.gotReq.UserID)
}

func TestHandle_Errors(t *testing.T) {
	t.Parallel()

	courtID := uuid.NewString()
	slotID := uuid.NewString()
	validBody := fmt.Sprintf(`{"courtId":%q,"timeSlotId":%q,"bookingDate":"2025-10-15"}`, courtID, slotID)

	testCases := []struct {
		name           string
		body           string
		withAuth       bool
		useCaseErr     error
		expectedStatus int
	}{
		{
			name:           "no auth header",
			body:           validBody,
			withAuth:       false,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid json",
			body:           `not json`,
			withAuth:       true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing fields",
			body:           `{}`,
			withAuth:       true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid date format",
			body:           fmt.Sprintf(`{"courtId":%q,"timeSlotId":%q,"bookingDate":"15.10.2025"}`, courtID, slotID),
			withAuth:       true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "slot taken",
			body:           validBody,
			withAuth:       true,
			useCaseErr:     createBooking.ErrSlotTaken,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "court not found",
			body:           validBody,
			withAuth:       true,
			useCaseErr:     createBooking.ErrCourtNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "slot not found",
			body:           validBody,
			withAuth:       true,
			useCaseErr:     createBooking.ErrSlotNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "date mismatch",
			body:           validBody,
			withAuth:       true,
			useCaseErr:     createBooking.ErrDateMismatch,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "internal error",
			body:           validBody,
			withAuth:       true,
			useCaseErr:     createBooking.ErrInternal,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			uc := &fakeUseCase{err: tc.useCaseErr}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(tc.body))
			if tc.withAuth {
				req.Header.Set(middleware.HeaderUserID, uuid.NewString())
			}

			rr := httptest.NewRecorder()
			newRouter(uc).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), `"error"`)
		})
	}
}
