package confirm_payment

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
	paymentRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
	"github.com/m04kA/SMC-CourtBookingService/pkg/ptr"
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

func (r *fakeBookingRepo) SetPaymentID(_ context.Context, id string, paymentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	booking.PaymentID = ptr.Ptr(paymentID)
	return nil
}

// fakePaymentRepo охраняет уникальность completed-платежа на бронирование,
// как частичный уникальный индекс в PostgreSQL
type fakePaymentRepo struct {
	mu        sync.Mutex
	payments  map[string]*domain.Payment
	completed map[string]string // booking id -> payment id
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{
		payments:  make(map[string]*domain.Payment),
		completed: make(map[string]string),
	}
}

func (r *fakePaymentRepo) Create(_ context.Context, payment *domain.Payment) (*domain.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if payment.Status == domain.PaymentCompleted {
		if _, exists := r.completed[payment.BookingID]; exists {
			return nil, paymentRepo.ErrDuplicateCompleted
		}
		r.completed[payment.BookingID] = payment.ID
	}

	created := *payment
	created.CreatedAt = time.Now()
	r.payments[created.ID] = &created

	return &created, nil
}

func (r *fakePaymentRepo) GetCompletedByBookingID(_ context.Context, bookingID string) (*domain.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	paymentID, ok := r.completed[bookingID]
	if !ok {
		return nil, paymentRepo.ErrPaymentNotFound
	}
	copied := *r.payments[paymentID]
	return &copied, nil
}

func (r *fakePaymentRepo) FailPendingByBookingID(_ context.Context, bookingID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var failed int64
	for _, p := range r.payments {
		if p.BookingID == bookingID && p.Status == domain.PaymentPending {
			p.Status = domain.PaymentFailed
			failed++
		}
	}
	return failed, nil
}

func fixtures(t *testing.T, status domain.BookingStatus) (*fakeBookingRepo, *fakePaymentRepo, *UseCase, *domain.Booking) {
	t.Helper()

	bookings := newFakeBookingRepo()
	payments := newFakePaymentRepo()

	booking := &domain.Booking{
		ID:          uuid.NewString(),
		UserID:      uuid.NewString(),
		CourtID:     uuid.NewString(),
		TimeSlotID:  uuid.NewString(),
		BookingDate: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		Status:      status,
	}
	bookings.bookings[booking.ID] = booking

	uc := NewUseCase(bookings, payments, &fakeTxManager{}, logger.NewDiscard())

	return bookings, payments, uc, booking
}

func confirmRequest(bookingID string) *Request {
	return &Request{
		BookingID:     bookingID,
		Amount:        800,
		Currency:      "npr",
		PaymentMethod: "stripe",
	}
}

func TestExecute_ConfirmsPendingBooking(t *testing.T) {
	t.Parallel()

	bookings, payments, uc, booking := fixtures(t, domain.StatusPending)

	resp, err := uc.Execute(context.Background(), confirmRequest(booking.ID))
	require.NoError(t, err)

	assert.False(t, resp.AlreadyConfirmed)
	assert.NotEmpty(t, resp.PaymentID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.BookingStatus)

	stored := bookings.bookings[booking.ID]
	assert.Equal(t, domain.StatusConfirmed, stored.Status)
	require.NotNil(t, stored.PaymentID)
	assert.Equal(t, resp.PaymentID, *stored.PaymentID)

	assert.Len(t, payments.payments, 1)
}

// Повторный сигнал об оплате - no-op: платёж один, бронирование confirmed
func TestExecute_Idempotent(t *testing.T) {
	t.Parallel()

	bookings, payments, uc, booking := fixtures(t, domain.StatusPending)

	first, err := uc.Execute(context.Background(), confirmRequest(booking.ID))
	require.NoError(t, err)
	require.False(t, first.AlreadyConfirmed)

	second, err := uc.Execute(context.Background(), confirmRequest(booking.ID))
	require.NoError(t, err)

	assert.True(t, second.AlreadyConfirmed)
	assert.Equal(t, first.PaymentID, second.PaymentID)
	assert.Equal(t, domain.StatusConfirmed, bookings.bookings[booking.ID].Status)
	assert.Len(t, payments.payments, 1, "second signal must not create another payment")
}

// Опоздавший платёж не воскрешает отменённое бронирование
func TestExecute_CanceledBookingRejected(t *testing.T) {
	t.Parallel()

	bookings, payments, uc, booking := fixtures(t, domain.StatusCanceled)

	_, err := uc.Execute(context.Background(), confirmRequest(booking.ID))
	assert.ErrorIs(t, err, ErrBookingCanceled)

	assert.Equal(t, domain.StatusCanceled, bookings.bookings[booking.ID].Status)
	assert.Empty(t, payments.payments)
}

func TestExecute_BookingNotFound(t *testing.T) {
	t.Parallel()

	_, _, uc, _ := fixtures(t, domain.StatusPending)

	_, err := uc.Execute(context.Background(), confirmRequest(uuid.NewString()))
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

// N одновременных сигналов об оплате дают ровно один платёж
func TestExecute_ConcurrentSignals_SinglePayment(t *testing.T) {
	t.Parallel()

	const workers = 16

	bookings, payments, uc, booking := fixtures(t, domain.StatusPending)

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), confirmRequest(booking.ID))
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}

	assert.Equal(t, domain.StatusConfirmed, bookings.bookings[booking.ID].Status)
	assert.Len(t, payments.payments, 1, "concurrent signals must produce a single payment")
}

func TestExecuteCanceled_BookingStaysPending(t *testing.T) {
	t.Parallel()

	bookings, payments, uc, booking := fixtures(t, domain.StatusPending)

	// Незавершённый платёж от ушедшего на оплату пользователя
	_, err := payments.Create(context.Background(), &domain.Payment{
		ID:        uuid.NewString(),
		BookingID: booking.ID,
		UserID:    booking.UserID,
		Amount:    800,
		Currency:  "npr",
		Status:    domain.PaymentPending,
	})
	require.NoError(t, err)

	err = uc.ExecuteCanceled(context.Background(), booking.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, bookings.bookings[booking.ID].Status)
	for _, p := range payments.payments {
		assert.Equal(t, domain.PaymentFailed, p.Status)
	}
}
