//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/booking"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/user"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/infra/memstore"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/pkg/clock"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var queryNow = time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

func storedBooking(t *testing.T, store *memstore.BookingStore, userID uuid.UUID) *booking.BookingRequest {
	t.Helper()

	properties := memstore.NewPropertyStore()
	require.NoError(t, memstore.SeedCatalog(properties))
	prop, err := properties.FindByID(context.Background(), "1")
	require.NoError(t, err)

	clk := clock.NewMockClock(queryNow)
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
	require.NoError(t, store.Create(context.Background(), b))
	return b
}

func TestBookingQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewBookingStore()
	owner := uuid.New()
	record := storedBooking(t, store, owner)
	q := queries.NewBookingQueries(store)

	t.Run("owner reads their own booking", func(t *testing.T) {
		view, err := q.GetByID(ctx, owner, user.RoleViewer, record.ID())
		require.NoError(t, err)
		assert.Equal(t, record.ID(), view.ID)
		assert.Equal(t, "phone-consultation", view.AppointmentType)
		assert.Equal(t, "2026-03-05", view.MeetingDate)
		assert.Equal(t, "10:00", view.MeetingTime)
	})

	t.Run("another viewer is denied", func(t *testing.T) {
		_, err := q.GetByID(ctx, uuid.New(), user.RoleViewer, record.ID())
		assert.ErrorIs(t, err, queries.ErrBookingAccess)
	})

	t.Run("operator reads any booking", func(t *testing.T) {
		view, err := q.GetByID(ctx, uuid.New(), user.RoleOperator, record.ID())
		require.NoError(t, err)
		assert.Equal(t, record.ID(), view.ID)
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		_, err := q.GetByID(ctx, owner, user.RoleViewer, "booking_missing")
		assert.ErrorIs(t, err, queries.ErrBookingNotFound)
	})
}

func TestBookingQueries_ListByUser(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewBookingStore()
	owner := uuid.New()
	storedBooking(t, store, owner)
	storedBooking(t, store, uuid.New())
	q := queries.NewBookingQueries(store)

	views, err := q.ListByUser(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, views, 1)

	views, err = q.ListByUser(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, views)
}
