package create_booking

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
)

// fakeTxManager сериализует транзакции мьютексом, имитируя
// SERIALIZABLE-изоляцию настоящего транзакционного менеджера
type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

// fakeCourtRepo in-memory реализация репозитория кортов
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

func (r *fakeCourtRepo) GetByID(_ context.Context, id string) (*domain.Court, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	court, ok := r.courts[id]
	if !ok {
		return nil, courtRepo.ErrCourtNotFound
	}
	return court, nil
}

func (r *fakeCourtRepo) GetSlotByID(_ context.Context, id string) (*domain.TimeSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	slot, ok := r.slots[id]
	if !ok {
		return nil, courtRepo.ErrSlotNotFound
	}
	copied := *slot
	return &copied, nil
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

// fakeBookingRepo in-memory реализация репозитория бронирований
// Уникальность активного бронирования на слот охраняется так же,
// как частичным уникальным индексом в PostgreSQL
type fakeBookingRepo struct {
	mu       sync.Mutex
	active   map[string]string // ключ (court, slot, date) -> booking id
	bookings map[string]*domain.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		active:   make(map[string]string),
		bookings: make(map[string]*domain.Booking),
	}
}

func activeKey(b *domain.Booking) string {
	return fmt.Sprintf("%s/%s/%s", b.CourtID, b.TimeSlotID, b.BookingDate.Format(domain.DateFormat))
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := activeKey(booking)
	if _, exists := r.active[key]; exists {
		return nil, bookingRepo.ErrSlotTaken
	}

	created := *booking
	created.ID = uuid.NewString()
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt

	r.active[key] = created.ID
	r.bookings[created.ID] = &created

	return &created, nil
}

func fixtures(t *testing.T) (*fakeCourtRepo, *fakeBookingRepo, *UseCase, *domain.Court, *domain.TimeSlot) {
	t.Helper()

	courts := newFakeCourtRepo()
	bookings := newFakeBookingRepo()

	court := &domain.Court{
		ID:           uuid.NewString(),
		Name:         "Центральный корт",
		PricePerHour: 800,
	}
	courts.courts[court.ID] = court

	slot := &domain.TimeSlot{
		ID:        uuid.NewString(),
		CourtID:   court.ID,
		StartTime: time.Date(2025, 10, 15, 8, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC),
	}
	courts.slots[slot.ID] = slot

	uc := NewUseCase(bookings, courts, &fakeTxManager{}, logger.NewDiscard())

	return courts, bookings, uc, court, slot
}

func TestExecute_Success(t *testing.T) {
	t.Parallel()

	courts, _, uc, court, slot := fixtures(t)
	userID := uuid.NewString()

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:     userID,
		CourtID:    court.ID,
		TimeSlotID: slot.ID,
		Date:       time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, userID, resp.UserID)
	assert.Equal(t, court.ID, resp.CourtID)
	assert.Equal(t, slot.ID, resp.TimeSlotID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)

	// Слот помечен занятым
	assert.True(t, courts.slots[slot.ID].IsBooked)
}

func TestExecute_Errors(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		setup       func(courts *fakeCourtRepo, court *domain.Court, slot *domain.TimeSlot) *Request
		expectedErr error
	}{
		{
			name: "court not found",
			setup: func(courts *fakeCourtRepo, court *domain.Court, slot *domain.TimeSlot) *Request {
				return &Request{
					UserID:     uuid.NewString(),
					CourtID:    uuid.NewString(),
					TimeSlotID: slot.ID,
					Date:       date,
				}
			},
			expectedErr: ErrCourtNotFound,
		},
		{
			name: "slot not found",
			setup: func(courts *fakeCourtRepo, court *domain.Court, slot *domain.TimeSlot) *Request {
				return &Request{
					UserID:     uuid.NewString(),
					CourtID:    court.ID,
					TimeSlotID: uuid.NewString(),
					Date:       date,
				}
			},
			expectedErr: ErrSlotNotFound,
		},
		{
			name: "slot belongs to another court",
			setup: func(courts *fakeCourtRepo, court *domain.Court, slot *domain.TimeSlot) *Request {
				other := &domain.Court{ID: uuid.NewString(), Name: "Другой корт"}
				courts.courts[other.ID] = other
				return &Request{
					UserID:     uuid.NewString(),
					CourtID:    other.ID,
					TimeSlotID: slot.ID,
					Date:       date,
				}
			},
			expectedErr: ErrSlotNotFound,
		},
		{
			name: "date mismatch",
			setup: func(courts *fakeCourtRepo, court *domain.Court, slot *domain.TimeSlot) *Request {
				return &Request{
					UserID:     uuid.NewString(),
					CourtID:    court.ID,
					TimeSlotID: slot.ID,
					Date:       date.AddDate(0, 0, 1),
				}
			},
			expectedErr: ErrDateMismatch,
		},
		{
			name: "slot already booked",
			setup: func(courts *fakeCourtRepo, court *domain.Court, slot *domain.TimeSlot) *Request {
				courts.slots[slot.ID].IsBooked = true
				return &Request{
					UserID:     uuid.NewString(),
					CourtID:    court.ID,
					TimeSlotID: slot.ID,
					Date:       date,
				}
			},
			expectedErr: ErrSlotTaken,
		},
		{
			name: "invalid user id",
			setup: func(courts *fakeCourtRepo, court *domain.Court, slot *domain.TimeSlot) *Request {
				return &Request{
					UserID:     "not-a-uuid",
					CourtID:    court.ID,
					TimeSlotID: slot.ID,
					Date:       date,
				}
			},
			expectedErr: ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			courts, _, uc, court, slot := fixtures(t)
			req := tc.setup(courts, court, slot)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

// Ровно один из N одновременных запросов на один слот получает
// бронирование, остальные - ErrSlotTaken
func TestExecute_ConcurrentRequests_ExactlyOneWins(t *testing.T) {
	t.Parallel()

	const workers = 32

	_, bookings, uc, court, slot := fixtures(t)
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), &Request{
				UserID:     uuid.NewString(),
				CourtID:    court.ID,
				TimeSlotID: slot.ID,
				Date:       date,
			})
		}(i)
	}
	wg.Wait()

	var success, taken int
	for _, err := range errs {
		switch {
		case err == nil:
			success++
		case assert.ErrorIs(t, err, ErrSlotTaken):
			taken++
		}
	}

	assert.Equal(t, 1, success, "exactly one request must win the slot")
	assert.Equal(t, workers-1, taken)
	assert.Len(t, bookings.bookings, 1)
}
