//go:build unit

package property_test

import (
	"testing"

	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/property"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSpec() property.Spec {
	return property.Spec{
		ID:          "p-1",
		Name:        "Test House",
		Type:        property.TypeHouse,
		ListingType: property.ListingRent,
		Location:    property.LocationLimbe,
		Price:       350_000,
		Currency:    property.CurrencyXAF,
		Address:     "22 Peace Valley, Limbe",
		Images:      []property.Image{{URL: "https://example.com/a.png", Alt: "front"}},
		Agent:       property.Agent{Name: "Peter K.", Phone: "+237670000005", Email: "peter@example.com"},
	}
}

func TestNewProperty(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *property.Spec)
		wantErr error
	}{
		{name: "valid", mutate: func(s *property.Spec) {}},
		{name: "empty id", mutate: func(s *property.Spec) { s.ID = "  " }, wantErr: property.ErrEmptyID},
		{name: "empty name", mutate: func(s *property.Spec) { s.Name = "" }, wantErr: property.ErrEmptyName},
		{name: "bad type", mutate: func(s *property.Spec) { s.Type = "castle" }, wantErr: property.ErrInvalidType},
		{name: "bad listing type", mutate: func(s *property.Spec) { s.ListingType = "lease" }, wantErr: property.ErrInvalidListingType},
		{name: "bad location", mutate: func(s *property.Spec) { s.Location = "Yaounde" }, wantErr: property.ErrInvalidLocation},
		{name: "bad currency", mutate: func(s *property.Spec) { s.Currency = "EUR" }, wantErr: property.ErrInvalidCurrency},
		{name: "zero price", mutate: func(s *property.Spec) { s.Price = 0 }, wantErr: property.ErrNonPositivePrice},
		{name: "negative price", mutate: func(s *property.Spec) { s.Price = -1 }, wantErr: property.ErrNonPositivePrice},
		{name: "no images", mutate: func(s *property.Spec) { s.Images = nil }, wantErr: property.ErrNoImages},
		{name: "agent missing phone", mutate: func(s *property.Spec) { s.Agent.Phone = "" }, wantErr: property.ErrIncompleteAgent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := validSpec()
			tt.mutate(&spec)

			p, err := property.NewProperty(spec)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, spec.ID, p.ID())
		})
	}
}

func TestProperty_PricingPeriod(t *testing.T) {
	tests := []struct {
		name        string
		propType    property.Type
		listingType property.ListingType
		want        property.PricingPeriod
	}{
		{name: "guesthouse is per night", propType: property.TypeGuesthouse, listingType: property.ListingRent, want: property.PricedPerNight},
		{name: "hotel is per night", propType: property.TypeHotel, listingType: property.ListingRent, want: property.PricedPerNight},
		{name: "rented house is per month", propType: property.TypeHouse, listingType: property.ListingRent, want: property.PricedPerMonth},
		{name: "rented land is per month", propType: property.TypeLand, listingType: property.ListingRent, want: property.PricedPerMonth},
		{name: "house for sale is a total", propType: property.TypeHouse, listingType: property.ListingSale, want: property.PricedTotal},
		{name: "land for sale is a total", propType: property.TypeLand, listingType: property.ListingSale, want: property.PricedTotal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := validSpec()
			spec.Type = tt.propType
			spec.ListingType = tt.listingType

			p, err := property.NewProperty(spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.PricingPeriod())
		})
	}
}

func TestProperty_IsRentableMonthly(t *testing.T) {
	cases := []struct {
		propType    property.Type
		listingType property.ListingType
		want        bool
	}{
		{property.TypeHouse, property.ListingRent, true},
		{property.TypeLand, property.ListingRent, true},
		{property.TypeGuesthouse, property.ListingRent, false},
		{property.TypeHotel, property.ListingRent, false},
		{property.TypeHouse, property.ListingSale, false},
		{property.TypeLand, property.ListingSale, false},
	}

	for _, tc := range cases {
		spec := validSpec()
		spec.Type = tc.propType
		spec.ListingType = tc.listingType

		p, err := property.NewProperty(spec)
		require.NoError(t, err)
		assert.Equal(t, tc.want, p.IsRentableMonthly(), "%s/%s", tc.propType, tc.listingType)
	}
}
