package bookings

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
)

type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*domain.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*domain.Booking)}
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (r *fakeBookingRepo) GetByUserID(_ context.Context, userID string) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*domain.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			copied := *b
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeBookingRepo) GetAll(_ context.Context) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		copied := *b
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	booking.Status = status
	return nil
}

type fakeCourtRepo struct {
	mu     sync.Mutex
	courts map[string]*domain.Court
	slots  map[string]*domain.TimeSlot
}

func newFakeCourtRepo() *fakeCourtRepo {
	return &fakeCourtRepo{
		courts: make(map[string]*domain.Court),
		slots:  make(map[string]*domain.TimeSlot),
	}
}

func (r *fakeCourtRepo) GetByIDs(_ context.Context, ids []string) (map[string]*domain.Court, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make(map[string]*domain.Court, len(ids))
	for _, id := range ids {
		if court, ok := r.courts[id]; ok {
			result[id] = court
		}
	}
	return result, nil
}

func (r *fakeCourtRepo) GetSlotsByIDs(_ context.Context, ids []string) (map[string]*domain.TimeSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make(map[string]*domain.TimeSlot, len(ids))
	for _, id := range ids {
		if slot, ok := r.slots[id]; ok {
			result[id] = slot
		}
	}
	return result, nil
}

func (r *fakeCourtRepo) SetSlotBooked(_ context.Context, id string, booked bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	slot, ok := r.slots[id]
	if !ok {
		return courtRepo.ErrSlotNotFound
	}
	slot.IsBooked = booked
	return nil
}

func fixtures(t *testing.T, status domain.BookingStatus) (*fakeBookingRepo, *fakeCourtRepo, *Service, *domain.Booking) {
	t.Helper()

	bookings := newFakeBookingRepo()
	courts := newFakeCourtRepo()

	court := &domain.Court{ID: uuid.NewString(), Name: "Центральный корт", PricePerHour: 800}
	courts.courts[court.ID] = court

	slot := &domain.TimeSlot{
		ID:        uuid.NewString(),
		CourtID:   court.ID,
		StartTime: time.Date(2025, 10, 15, 8, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC),
		IsBooked:  true,
	}
	courts.slots[slot.ID] = slot

	booking := &domain.Booking{
		ID:          uuid.NewString(),
		UserID:      uuid.NewString(),
		CourtID:     court.ID,
		TimeSlotID:  slot.ID,
		BookingDate: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		Status:      status,
	}
	bookings.bookings[booking.ID] = booking

	svc := NewService(bookings, courts, &fakeTxManager{}, logger.NewDiscard())

	return bookings, courts, svc, booking
}

func player(userID string) domain.Actor {
	return domain.Actor{UserID: userID, Role: domain.RolePlayer}
}

func admin() domain.Actor {
	return domain.Actor{UserID: uuid.NewString(), Role: domain.RoleAdmin}
}

func TestGetByID_OwnerAndAdmin(t *testing.T) {
	t.Parallel()

	_, _, svc, booking := fixtures(t, domain.StatusPending)

	// Владелец видит бронирование с данными корта и слота
	resp, err := svc.GetByID(context.Background(), booking.ID, player(booking.UserID))
	require.NoError(t, err)
	assert.Equal(t, booking.ID, resp.ID)
	require.NotNil(t, resp.Court)
	assert.Equal(t, "Центральный корт", resp.Court.Name)
	require.NotNil(t, resp.TimeSlot)

	// Администратор видит чужое бронирование
	_, err = svc.GetByID(context.Background(), booking.ID, admin())
	assert.NoError(t, err)

	// Посторонний пользователь - нет
	_, err = svc.GetByID(context.Background(), booking.ID, player(uuid.NewString()))
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	t.Parallel()

	_, _, svc, _ := fixtures(t, domain.StatusPending)

	_, err := svc.GetByID(context.Background(), uuid.NewString(), admin())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings_AccessControl(t *testing.T) {
	t.Parallel()

	_, _, svc, booking := fixtures(t, domain.StatusPending)

	resp, err := svc.GetUserBookings(context.Background(), booking.UserID, player(booking.UserID))
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, booking.ID, resp.Bookings[0].ID)

	_, err = svc.GetUserBookings(context.Background(), booking.UserID, player(uuid.NewString()))
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetAllBookings_AdminOnly(t *testing.T) {
	t.Parallel()

	_, _, svc, booking := fixtures(t, domain.StatusPending)

	resp, err := svc.GetAllBookings(context.Background(), admin())
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	_, err = svc.GetAllBookings(context.Background(), player(booking.UserID))
	assert.ErrorIs(t, err, ErrAccessDenied)
}

// Отмена переводит бронирование в canceled и освобождает слот
func TestCancel_ReleasesSlot(t *testing.T) {
	t.Parallel()

	bookings, courts, svc, booking := fixtures(t, domain.StatusPending)

	err := svc.Cancel(context.Background(), booking.ID, &models.CancelBookingRequest{
		Actor: player(booking.UserID),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCanceled, bookings.bookings[booking.ID].Status)
	assert.False(t, courts.slots[booking.TimeSlotID].IsBooked, "cancel must release the slot")
}

func TestCancel_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		status      domain.BookingStatus
		actor       func(booking *domain.Booking) domain.Actor
		bookingID   func(booking *domain.Booking) string
		expectedErr error
	}{
		{
			name:        "not found",
			status:      domain.StatusPending,
			actor:       func(b *domain.Booking) domain.Actor { return admin() },
			bookingID:   func(b *domain.Booking) string { return uuid.NewString() },
			expectedErr: ErrBookingNotFound,
		},
		{
			name:        "foreign booking",
			status:      domain.StatusPending,
			actor:       func(b *domain.Booking) domain.Actor { return player(uuid.NewString()) },
			bookingID:   func(b *domain.Booking) string { return b.ID },
			expectedErr: ErrAccessDenied,
		},
		{
			name:        "already canceled",
			status:      domain.StatusCanceled,
			actor:       func(b *domain.Booking) domain.Actor { return player(b.UserID) },
			bookingID:   func(b *domain.Booking) string { return b.ID },
			expectedErr: ErrCannotCancel,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, svc, booking := fixtures(t, tc.status)

			err := svc.Cancel(context.Background(), tc.bookingID(booking), &models.CancelBookingRequest{
				Actor: tc.actor(booking),
			})
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

// Администратор может отменить чужое оплаченное бронирование
func TestCancel_AdminCancelsConfirmed(t *testing.T) {
	t.Parallel()

	bookings, courts, svc, booking := fixtures(t, domain.StatusConfirmed)

	err := svc.Cancel(context.Background(), booking.ID, &models.CancelBookingRequest{Actor: admin()})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCanceled, bookings.bookings[booking.ID].Status)
	assert.False(t, courts.slots[booking.TimeSlotID].IsBooked)
}

func TestUpdateStatus_Transitions(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		from        domain.BookingStatus
		to          string
		expectedErr error
	}{
		{name: "pending to confirmed", from: domain.StatusPending, to: "confirmed"},
		{name: "pending to canceled", from: domain.StatusPending, to: "canceled"},
		{name: "confirmed to canceled", from: domain.StatusConfirmed, to: "canceled"},
		{name: "canceled is terminal", from: domain.StatusCanceled, to: "confirmed", expectedErr: ErrInvalidTransition},
		{name: "canceled to pending rejected", from: domain.StatusCanceled, to: "pending", expectedErr: ErrInvalidTransition},
		{name: "confirmed to pending rejected", from: domain.StatusConfirmed, to: "pending", expectedErr: ErrInvalidTransition},
		{name: "unknown status", from: domain.StatusPending, to: "done", expectedErr: ErrInvalidInput},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			bookings, _, svc, booking := fixtures(t, tc.from)

			err := svc.UpdateStatus(context.Background(), booking.ID, &models.UpdateStatusRequest{
				Actor:  admin(),
				Status: tc.to,
			})

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Equal(t, tc.from, bookings.bookings[booking.ID].Status, "status must not change")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, domain.BookingStatus(tc.to), bookings.bookings[booking.ID].Status)
		})
	}
}

func TestUpdateStatus_AdminOnly(t *testing.T) {
	t.Parallel()

	_, _, svc, booking := fixtures(t, domain.StatusPending)

	err := svc.UpdateStatus(context.Background(), booking.ID, &models.UpdateStatusRequest{
		Actor:  player(booking.UserID),
		Status: "confirmed",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

// Перевод в canceled через setStatus тоже освобождает слот
func TestUpdateStatus_CancelReleasesSlot(t *testing.T) {
	t.Parallel()

	_, courts, svc, booking := fixtures(t, domain.StatusPending)

	err := svc.UpdateStatus(context.Background(), booking.ID, &models.UpdateStatusRequest{
		Actor:  admin(),
		Status: "canceled",
	})
	require.NoError(t, err)

	assert.False(t, courts.slots[booking.TimeSlotID].IsBooked)
}
