package memstore

import (
	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/property"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/pkg/errs"
)

func intPtr(v int) *int { return &v }

// SeedCatalog loads the launch inventory into the catalog. The catalog is
// reference data; every process start rebuilds it from this list.
func SeedCatalog(store *PropertyStore) error {
	specs := []property.Spec{
		{
			ID:           "1",
			Name:         "Spacious Villa in Buea",
			Type:         property.TypeHouse,
			ListingType:  property.ListingSale,
			Location:     property.LocationBuea,
			Price:        75_000_000,
			Currency:     property.CurrencyXAF,
			Description:  "A beautiful and spacious villa located in the serene residential area of Buea, offering breathtaking views of Mount Cameroon. Features modern amenities and a large garden.",
			Address:      "123 Mountain View Rd, Buea",
			Bedrooms:     intPtr(4),
			Bathrooms:    intPtr(3),
			AreaSqMeters: intPtr(300),
			Amenities:    []string{"WiFi", "Parking", "Garden", "Security", "Air Conditioning"},
			Images: []property.Image{
				{URL: "https://placehold.co/800x600.png", Alt: "Front view of the villa"},
				{URL: "https://placehold.co/800x600.png", Alt: "Living room"},
				{URL: "https://placehold.co/800x600.png", Alt: "Garden view"},
			},
			IsFeatured: true,
			Agent:      property.Agent{Name: "John Doe", Phone: "+237670000001", Email: "john.doe@cameroonestates.com"},
		},
		{
			ID:           "2",
			Name:         "Prime Land in Limbe",
			Type:         property.TypeLand,
			ListingType:  property.ListingSale,
			Location:     property.LocationLimbe,
			Price:        25_000_000,
			Currency:     property.CurrencyXAF,
			Description:  "A prime plot of land ideal for residential or commercial development, situated near the Atlantic coast in Limbe. Easy access to main roads and utilities.",
			Address:      "456 Beachfront Ave, Limbe",
			AreaSqMeters: intPtr(1000),
			Amenities:    []string{"Fenced", "Road Access"},
			Images: []property.Image{
				{URL: "https://placehold.co/800x600.png", Alt: "View of the land plot"},
				{URL: "https://placehold.co/800x600.png", Alt: "Nearby coastline"},
			},
			IsFeatured: true,
			Agent:      property.Agent{Name: "Jane Smith", Phone: "+237670000002", Email: "jane.smith@cameroonestates.com"},
		},
		{
			ID:          "3",
			Name:        "Cozy Guesthouse in Douala",
			Type:        property.TypeGuesthouse,
			ListingType: property.ListingRent,
			Location:    property.LocationDouala,
			Price:       15_000,
			Currency:    property.CurrencyXAF,
			Description: "A charming and cozy guesthouse in the heart of Douala, perfect for travelers. Offers comfortable rooms and a friendly atmosphere.",
			Address:     "789 City Center St, Douala",
			Bedrooms:    intPtr(10),
			Amenities:   []string{"WiFi", "Breakfast Included", "Daily Cleaning", "Shared Lounge"},
			Images: []property.Image{
				{URL: "https://placehold.co/800x600.png", Alt: "Guesthouse exterior"},
				{URL: "https://placehold.co/800x600.png", Alt: "Sample room"},
			},
			Agent: property.Agent{Name: "Michael B.", Phone: "+237670000003", Email: "michael.b@cameroonestates.com"},
		},
		{
			ID:          "4",
			Name:        "Luxury Hotel Suite, Douala",
			Type:        property.TypeHotel,
			ListingType: property.ListingRent,
			Location:    property.LocationDouala,
			Price:       120_000,
			Currency:    property.CurrencyXAF,
			Description: "Experience luxury in this exquisite hotel suite in Douala. Top-notch amenities, city views, and impeccable service.",
			Address:     "101 Business District, Douala",
			Bedrooms:    intPtr(1),
			Bathrooms:   intPtr(1),
			Amenities:   []string{"Pool", "Gym", "Restaurant", "Room Service", "Concierge"},
			Images: []property.Image{
				{URL: "https://placehold.co/800x600.png", Alt: "Hotel building"},
				{URL: "https://placehold.co/800x600.png", Alt: "Hotel suite interior"},
			},
			IsFeatured: true,
			Agent:      property.Agent{Name: "Global Hotels Inc.", Phone: "+237670000004", Email: "bookings@globalhotels.com"},
		},
		{
			ID:           "5",
			Name:         "Affordable House in Limbe",
			Type:         property.TypeHouse,
			ListingType:  property.ListingRent,
			Location:     property.LocationLimbe,
			Price:        350_000,
			Currency:     property.CurrencyXAF,
			Description:  "A well-maintained and affordable house in a quiet neighborhood of Limbe, available on a monthly lease. Ideal for families.",
			Address:      "22 Peace Valley, Limbe",
			Bedrooms:     intPtr(3),
			Bathrooms:    intPtr(2),
			AreaSqMeters: intPtr(150),
			Amenities:    []string{"Parking", "Garden"},
			Images: []property.Image{
				{URL: "https://placehold.co/800x600.png", Alt: "House exterior"},
				{URL: "https://placehold.co/800x600.png", Alt: "Living area"},
			},
			Agent: property.Agent{Name: "Peter K.", Phone: "+237670000005", Email: "peter.k@cameroonestates.com"},
		},
		{
			ID:           "6",
			Name:         "Commercial Land in Douala",
			Type:         property.TypeLand,
			ListingType:  property.ListingSale,
			Location:     property.LocationDouala,
			Price:        150_000_000,
			Currency:     property.CurrencyXAF,
			Description:  "Large plot of commercial land in a rapidly developing area of Douala. Excellent investment opportunity.",
			Address:      "Industrial Zone Plot 7, Douala",
			AreaSqMeters: intPtr(5000),
			Amenities:    []string{"Road Access", "Utilities Nearby"},
			Images: []property.Image{
				{URL: "https://placehold.co/800x600.png", Alt: "Commercial land plot"},
			},
			Agent: property.Agent{Name: "Alpha Investments", Phone: "+237670000006", Email: "invest@alpha.com"},
		},
	}

	for _, spec := range specs {
		p, err := property.NewProperty(spec)
		if err != nil {
			return errs.Wrap(err, "seed catalog: invalid property "+spec.ID)
		}
		if err := store.Add(p); err != nil {
			return errs.Wrap(err, "seed catalog: add property "+spec.ID)
		}
	}
	return nil
}
