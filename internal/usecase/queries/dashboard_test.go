//go:build unit

package queries_test

import (
	"context"
	"testing"

	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/rental"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/infra/memstore"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardQueries_GetDashboard(t *testing.T) {
	ctx := context.Background()

	newStores := func(t *testing.T) (*memstore.BookingStore, *memstore.RentalStore, *memstore.PropertyStore, *memstore.StaticOwnershipSource) {
		t.Helper()
		properties := memstore.NewPropertyStore()
		require.NoError(t, memstore.SeedCatalog(properties))
		return memstore.NewBookingStore(), memstore.NewRentalStore(), properties, memstore.NewStaticOwnershipSource()
	}

	t.Run("rented property carries its rental details", func(t *testing.T) {
		bookings, rentals, properties, ownership := newStores(t)
		userID := uuid.New()

		first := storedBooking(t, bookings, userID)
		second := storedBooking(t, bookings, userID)

		prop, err := properties.FindByID(ctx, "5")
		require.NoError(t, err)
		r, err := rental.NewRental(prop, userID, first.ID(), 6, queryNow)
		require.NoError(t, err)
		require.NoError(t, rentals.Create(ctx, r))

		q := queries.NewDashboardQueries(bookings, rentals, properties, ownership)
		view, err := q.GetDashboard(ctx, userID)
		require.NoError(t, err)

		require.Len(t, view.Properties, 1)
		require.NotNil(t, view.Properties[0].PropertyView)
		assert.Equal(t, "5", view.Properties[0].ID)
		require.NotNil(t, view.Properties[0].RentalDetails)
		assert.Equal(t, r.ID(), view.Properties[0].RentalDetails.ID)
		assert.Equal(t, first.ID(), view.Properties[0].RentalDetails.BookingID)

		require.Len(t, view.Bookings, 2)
		assert.Equal(t, first.ID(), view.Bookings[0].ID)
		assert.Equal(t, second.ID(), view.Bookings[1].ID)
	})

	t.Run("listed properties appear without rental details", func(t *testing.T) {
		bookings, rentals, properties, ownership := newStores(t)
		userID := uuid.New()
		ownership.Grant(userID, "1", "2")

		q := queries.NewDashboardQueries(bookings, rentals, properties, ownership)
		view, err := q.GetDashboard(ctx, userID)
		require.NoError(t, err)

		require.Len(t, view.Properties, 2)
		assert.Equal(t, "1", view.Properties[0].ID)
		assert.Nil(t, view.Properties[0].RentalDetails)
		assert.Equal(t, "2", view.Properties[1].ID)
		assert.Nil(t, view.Properties[1].RentalDetails)
	})

	t.Run("a property both rented and listed shows once, decorated", func(t *testing.T) {
		bookings, rentals, properties, ownership := newStores(t)
		userID := uuid.New()

		b := storedBooking(t, bookings, userID)
		prop, err := properties.FindByID(ctx, "5")
		require.NoError(t, err)
		r, err := rental.NewRental(prop, userID, b.ID(), 3, queryNow)
		require.NoError(t, err)
		require.NoError(t, rentals.Create(ctx, r))
		ownership.Grant(userID, "5")

		q := queries.NewDashboardQueries(bookings, rentals, properties, ownership)
		view, err := q.GetDashboard(ctx, userID)
		require.NoError(t, err)

		require.Len(t, view.Properties, 1)
		assert.Equal(t, "5", view.Properties[0].ID)
		require.NotNil(t, view.Properties[0].RentalDetails)
		assert.Equal(t, r.ID(), view.Properties[0].RentalDetails.ID)
	})

	t.Run("no activity yields empty sections, not nulls", func(t *testing.T) {
		bookings, rentals, properties, ownership := newStores(t)
		q := queries.NewDashboardQueries(bookings, rentals, properties, ownership)

		view, err := q.GetDashboard(ctx, uuid.New())
		require.NoError(t, err)
		assert.NotNil(t, view.Properties)
		assert.NotNil(t, view.Bookings)
		assert.Empty(t, view.Properties)
		assert.Empty(t, view.Bookings)
	})
}
