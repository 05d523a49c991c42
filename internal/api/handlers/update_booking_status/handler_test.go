package update_booking_status

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	bookingsService "github.com/m04kA/SMC-CourtBookingService/internal/service/bookings"
	bookingModels "github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
)

type fakeService struct {
	err error

	gotReq *bookingModels.UpdateStatusRequest
}

func (f *fakeService) UpdateStatus(_ context.Context, _ string, req *bookingModels.UpdateStatusRequest) error {
	f.gotReq = req
	return f.err
}

func serve(svc BookingsService, body string) *httptest.ResponseRecorder {
	handler := NewHandler(svc, logger.NewDiscard())

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth(logger.NewDiscard()))
	protected.HandleFunc("/bookings/{bookingId}/status", handler.Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+uuid.NewString()+"/status", bytes.NewBufferString(body))
	req.Header.Set(middleware.HeaderUserID, uuid.NewString())
	req.Header.Set(middleware.HeaderUserRole, "admin")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	return rr
}

func TestHandle_Success(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}

	rr := serve(svc, `{"status":"confirmed"}`)

	// 204 без тела и без Content-Type
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
	assert.Empty(t, rr.Header().Get("Content-Type"))

	require.NotNil(t, svc.gotReq)
	assert.Equal(t, "confirmed", svc.gotReq.Status)
}

func TestHandle_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		body           string
		serviceErr     error
		expectedStatus int
	}{
		{
			name:           "invalid json",
			body:           `not json`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown status",
			body:           `{"status":"paid"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "booking not found",
			body:           `{"status":"confirmed"}`,
			serviceErr:     bookingsService.ErrBookingNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "access denied",
			body:           `{"status":"confirmed"}`,
			serviceErr:     bookingsService.ErrAccessDenied,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "invalid transition",
			body:           `{"status":"pending"}`,
			serviceErr:     bookingsService.ErrInvalidTransition,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "internal error",
			body:           `{"status":"confirmed"}`,
			serviceErr:     bookingsService.ErrInternal,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rr := serve(&fakeService{err: tc.serviceErr}, tc.body)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), `"error"`)
		})
	}
}
