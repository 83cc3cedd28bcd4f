//go:build unit

package property_test

import (
	"testing"

	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/property"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrType(t property.Type) *property.Type                      { return &t }
func ptrListing(l property.ListingType) *property.ListingType     { return &l }
func ptrLocation(l property.Location) *property.Location          { return &l }
func ptrPrice(v int64) *int64                                     { return &v }

func TestFilter_Matches(t *testing.T) {
	spec := validSpec()
	spec.Name = "Affordable House in Limbe"
	spec.Description = "A well-maintained house near the coast."
	p, err := property.NewProperty(spec)
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter property.Filter
		want   bool
	}{
		{name: "zero filter matches everything", filter: property.Filter{}, want: true},
		{name: "matching type", filter: property.Filter{Type: ptrType(property.TypeHouse)}, want: true},
		{name: "mismatching type", filter: property.Filter{Type: ptrType(property.TypeLand)}, want: false},
		{name: "matching listing type", filter: property.Filter{ListingType: ptrListing(property.ListingRent)}, want: true},
		{name: "mismatching listing type", filter: property.Filter{ListingType: ptrListing(property.ListingSale)}, want: false},
		{name: "matching location", filter: property.Filter{Location: ptrLocation(property.LocationLimbe)}, want: true},
		{name: "mismatching location", filter: property.Filter{Location: ptrLocation(property.LocationDouala)}, want: false},
		{name: "search matches name case-insensitively", filter: property.Filter{SearchTerm: "affordable"}, want: true},
		{name: "search matches description", filter: property.Filter{SearchTerm: "COAST"}, want: true},
		{name: "search matches address", filter: property.Filter{SearchTerm: "peace valley"}, want: true},
		{name: "search with no hit", filter: property.Filter{SearchTerm: "penthouse"}, want: false},
		{name: "blank search is ignored", filter: property.Filter{SearchTerm: "   "}, want: true},
		{name: "min price at the boundary", filter: property.Filter{MinPrice: ptrPrice(350_000)}, want: true},
		{name: "min price above", filter: property.Filter{MinPrice: ptrPrice(350_001)}, want: false},
		{name: "max price at the boundary", filter: property.Filter{MaxPrice: ptrPrice(350_000)}, want: true},
		{name: "max price below", filter: property.Filter{MaxPrice: ptrPrice(349_999)}, want: false},
		{
			name: "predicates AND together",
			filter: property.Filter{
				Type:       ptrType(property.TypeHouse),
				Location:   ptrLocation(property.LocationLimbe),
				SearchTerm: "affordable",
				MinPrice:   ptrPrice(100_000),
				MaxPrice:   ptrPrice(400_000),
			},
			want: true,
		},
		{
			name: "one failing predicate rejects",
			filter: property.Filter{
				Type:     ptrType(property.TypeHouse),
				MaxPrice: ptrPrice(100),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(p))
		})
	}
}
