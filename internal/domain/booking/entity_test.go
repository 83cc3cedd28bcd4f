//go:build unit

package booking_test

import (
	"testing"

	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingBooking(t *testing.T) *booking.BookingRequest {
	t.Helper()
	b, err := newTestFactory().CreateBookingRequest(newTestProperty(t), uuid.New(), validCandidate())
	require.NoError(t, err)
	return b
}

func TestBookingRequest_Transitions(t *testing.T) {
	t.Run("pending confirms once and stays confirmed", func(t *testing.T) {
		b := newPendingBooking(t)

		require.NoError(t, b.Confirm())
		assert.Equal(t, booking.StatusConfirmed, b.Status())

		// Repeat confirmation is a no-op
		require.NoError(t, b.Confirm())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("pending cancels once and stays cancelled", func(t *testing.T) {
		b := newPendingBooking(t)

		require.NoError(t, b.Cancel())
		assert.Equal(t, booking.StatusCancelled, b.Status())

		require.NoError(t, b.Cancel())
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("confirmed cannot cancel", func(t *testing.T) {
		b := newPendingBooking(t)
		require.NoError(t, b.Confirm())

		assert.ErrorIs(t, b.Cancel(), booking.ErrInvalidTransition)
	})

	t.Run("cancelled cannot confirm", func(t *testing.T) {
		b := newPendingBooking(t)
		require.NoError(t, b.Cancel())

		assert.ErrorIs(t, b.Confirm(), booking.ErrInvalidTransition)
	})

	t.Run("complete requires confirmed", func(t *testing.T) {
		b := newPendingBooking(t)

		assert.ErrorIs(t, b.Complete("rental_1"), booking.ErrInvalidTransition)

		require.NoError(t, b.Confirm())
		require.NoError(t, b.Complete("rental_1"))
		assert.Equal(t, booking.StatusCompleted, b.Status())
		require.NotNil(t, b.RentalID())
		assert.Equal(t, "rental_1", *b.RentalID())
	})

	t.Run("complete refuses a second rental link", func(t *testing.T) {
		b := newPendingBooking(t)
		require.NoError(t, b.Confirm())
		require.NoError(t, b.Complete("rental_1"))

		assert.ErrorIs(t, b.Complete("rental_2"), booking.ErrRentalAlreadyLinked)
		assert.Equal(t, "rental_1", *b.RentalID())
	})

	t.Run("completed and cancelled are terminal", func(t *testing.T) {
		assert.True(t, booking.StatusCompleted.IsTerminal())
		assert.True(t, booking.StatusCancelled.IsTerminal())
		assert.False(t, booking.StatusPending.IsTerminal())
		assert.False(t, booking.StatusConfirmed.IsTerminal())
	})
}

func TestBookingRequest_Clone(t *testing.T) {
	b := newPendingBooking(t)
	dup := b.Clone()

	require.NoError(t, dup.Confirm())

	// The original is untouched by mutations on the clone
	assert.Equal(t, booking.StatusPending, b.Status())
	assert.Equal(t, booking.StatusConfirmed, dup.Status())

	require.NotNil(t, b.Card())
	require.NotNil(t, dup.Card())
	assert.NotSame(t, b.Card(), dup.Card())
	assert.Equal(t, b.Card().Number, dup.Card().Number)
}

func TestAppointmentType_Pricing(t *testing.T) {
	assert.Equal(t, int64(5000), booking.AppointmentPhysicalViewing.Price())
	assert.Equal(t, int64(2500), booking.AppointmentVirtualTour.Price())
	assert.Zero(t, booking.AppointmentPhoneConsultation.Price())
	assert.Zero(t, booking.AppointmentType("unknown").Price())

	details, ok := booking.AppointmentPhysicalViewing.Details()
	require.True(t, ok)
	assert.Equal(t, "Physical Viewing", details.Label)
	assert.NotEmpty(t, details.Benefits)
}
