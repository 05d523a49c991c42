package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{name: "pending to confirmed", from: StatusPending, to: StatusConfirmed, allowed: true},
		{name: "pending to canceled", from: StatusPending, to: StatusCanceled, allowed: true},
		{name: "confirmed to canceled", from: StatusConfirmed, to: StatusCanceled, allowed: true},
		{name: "confirmed to pending", from: StatusConfirmed, to: StatusPending, allowed: false},
		{name: "confirmed to confirmed", from: StatusConfirmed, to: StatusConfirmed, allowed: false},
		{name: "canceled to confirmed", from: StatusCanceled, to: StatusConfirmed, allowed: false},
		{name: "canceled to pending", from: StatusCanceled, to: StatusPending, allowed: false},
		{name: "canceled to canceled", from: StatusCanceled, to: StatusCanceled, allowed: false},
		{name: "unknown status", from: BookingStatus("paid"), to: StatusConfirmed, allowed: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

// Из canceled не существует ни одного разрешённого перехода
func TestBookingStatus_CanceledIsTerminal(t *testing.T) {
	t.Parallel()

	for _, target := range []BookingStatus{StatusPending, StatusConfirmed, StatusCanceled} {
		assert.False(t, StatusCanceled.CanTransitionTo(target), "canceled -> %s must be rejected", target)
	}
}

func TestBooking_IsActive(t *testing.T) {
	t.Parallel()

	assert.True(t, (&Booking{Status: StatusPending}).IsActive())
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.False(t, (&Booking{Status: StatusCanceled}).IsActive())
}

func TestBooking_CanBeCancelled(t *testing.T) {
	t.Parallel()

	assert.True(t, (&Booking{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCanceled}).CanBeCancelled())
}

func TestBookingStatus_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusConfirmed.IsValid())
	assert.True(t, StatusCanceled.IsValid())
	assert.False(t, BookingStatus("completed").IsValid())
	assert.False(t, BookingStatus("").IsValid())
}
