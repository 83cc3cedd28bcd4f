//go:build unit

package queries_test

import (
	"context"
	"testing"

	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/property"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/infra/memstore"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededCatalog(t *testing.T) queries.CatalogQueries {
	t.Helper()
	store := memstore.NewPropertyStore()
	require.NoError(t, memstore.SeedCatalog(store))
	return queries.NewCatalogQueries(store)
}

func TestCatalogQueries(t *testing.T) {
	ctx := context.Background()
	catalog := seededCatalog(t)

	t.Run("list maps every seeded property", func(t *testing.T) {
		views, err := catalog.ListProperties(ctx, property.Filter{})
		require.NoError(t, err)
		require.Len(t, views, 6)

		first := views[0]
		assert.Equal(t, "1", first.ID)
		assert.Equal(t, "Spacious Villa in Buea", first.Name)
		assert.Equal(t, "house", first.Type)
		assert.Equal(t, "sale", first.ListingType)
		assert.Equal(t, "XAF", first.Currency)
		assert.True(t, first.IsFeatured)
		assert.NotEmpty(t, first.Images)
		assert.NotEmpty(t, first.Agent.Phone)
	})

	t.Run("filter narrows by listing type", func(t *testing.T) {
		rent := property.ListingRent
		views, err := catalog.ListProperties(ctx, property.Filter{ListingType: &rent})
		require.NoError(t, err)
		require.Len(t, views, 3)
		for _, v := range views {
			assert.Equal(t, "rent", v.ListingType)
		}
	})

	t.Run("featured list only carries flagged properties", func(t *testing.T) {
		views, err := catalog.ListFeatured(ctx)
		require.NoError(t, err)
		require.Len(t, views, 3)
		for _, v := range views {
			assert.True(t, v.IsFeatured)
		}
	})

	t.Run("get by id", func(t *testing.T) {
		view, err := catalog.GetProperty(ctx, "5")
		require.NoError(t, err)
		assert.Equal(t, "Affordable House in Limbe", view.Name)
		require.NotNil(t, view.Bedrooms)
		assert.Equal(t, 3, *view.Bedrooms)
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		_, err := catalog.GetProperty(ctx, "999")
		assert.ErrorIs(t, err, queries.ErrPropertyNotFound)
	})
}
