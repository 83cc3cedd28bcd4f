//go:build unit

package memstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/booking"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/infra"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/infra/memstore"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/pkg/clock"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

func seededProperties(t *testing.T) *memstore.PropertyStore {
	t.Helper()
	store := memstore.NewPropertyStore()
	require.NoError(t, memstore.SeedCatalog(store))
	return store
}

func makeBooking(t *testing.T, store *memstore.PropertyStore, userID uuid.UUID) *booking.BookingRequest {
	t.Helper()
	prop, err := store.FindByID(context.Background(), "1")
	require.NoError(t, err)

	clk := clock.NewMockClock(testNow)
	factory := booking.NewFactory(clk, booking.NewValidator(clk, nil))
	b, err := factory.CreateBookingRequest(prop, userID, booking.Candidate{
		PropertyID:      "1",
		AppointmentType: "phone-consultation",
		MeetingDate:     "2026-03-05",
		MeetingTime:     "10:00",
		UserName:        "Jane Doe",
		UserPhone:       "+237670000000",
		UserEmail:       "jane@example.com",
	})
	require.NoError(t, err)
	return b
}

func TestBookingStore(t *testing.T) {
	ctx := context.Background()

	t.Run("create then find returns an equal record", func(t *testing.T) {
		store := memstore.NewBookingStore()
		b := makeBooking(t, seededProperties(t), uuid.New())

		require.NoError(t, store.Create(ctx, b))

		got, err := store.FindByID(ctx, b.ID())
		require.NoError(t, err)
		assert.Equal(t, b.ID(), got.ID())
		assert.Equal(t, b.Status(), got.Status())
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		store := memstore.NewBookingStore()
		b := makeBooking(t, seededProperties(t), uuid.New())

		require.NoError(t, store.Create(ctx, b))
		err := store.Create(ctx, b)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		store := memstore.NewBookingStore()
		_, err := store.FindByID(ctx, "booking_missing")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("find hands out snapshots", func(t *testing.T) {
		store := memstore.NewBookingStore()
		b := makeBooking(t, seededProperties(t), uuid.New())
		require.NoError(t, store.Create(ctx, b))

		first, err := store.FindByID(ctx, b.ID())
		require.NoError(t, err)
		require.NoError(t, first.Confirm())

		// Mutating the snapshot must not leak into the store
		second, err := store.FindByID(ctx, b.ID())
		require.NoError(t, err)
		assert.Equal(t, booking.StatusPending, second.Status())
	})

	t.Run("update applies the mutation atomically", func(t *testing.T) {
		store := memstore.NewBookingStore()
		b := makeBooking(t, seededProperties(t), uuid.New())
		require.NoError(t, store.Create(ctx, b))

		updated, err := store.Update(ctx, b.ID(), func(rec *booking.BookingRequest) error {
			return rec.Confirm()
		})
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, updated.Status())

		got, err := store.FindByID(ctx, b.ID())
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, got.Status())
	})

	t.Run("failed update leaves the record untouched", func(t *testing.T) {
		store := memstore.NewBookingStore()
		b := makeBooking(t, seededProperties(t), uuid.New())
		require.NoError(t, store.Create(ctx, b))

		_, err := store.Update(ctx, b.ID(), func(rec *booking.BookingRequest) error {
			require.NoError(t, rec.Confirm())
			return errs.New("boom")
		})
		require.Error(t, err)

		got, findErr := store.FindByID(ctx, b.ID())
		require.NoError(t, findErr)
		assert.Equal(t, booking.StatusPending, got.Status())
	})

	t.Run("list by user preserves creation order", func(t *testing.T) {
		store := memstore.NewBookingStore()
		props := seededProperties(t)
		userID := uuid.New()

		first := makeBooking(t, props, userID)
		second := makeBooking(t, props, userID)
		other := makeBooking(t, props, uuid.New())

		require.NoError(t, store.Create(ctx, first))
		require.NoError(t, store.Create(ctx, other))
		require.NoError(t, store.Create(ctx, second))

		got, err := store.ListByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, first.ID(), got[0].ID())
		assert.Equal(t, second.ID(), got[1].ID())
	})
}
