package property

type Type string

const (
	TypeHouse      Type = "house"
	TypeLand       Type = "land"
	TypeGuesthouse Type = "guesthouse"
	TypeHotel      Type = "hotel"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeHouse, TypeLand, TypeGuesthouse, TypeHotel:
		return true
	default:
		return false
	}
}

type ListingType string

const (
	ListingSale ListingType = "sale"
	ListingRent ListingType = "rent"
)

func (l ListingType) String() string {
	return string(l)
}

func (l ListingType) IsValid() bool {
	switch l {
	case ListingSale, ListingRent:
		return true
	default:
		return false
	}
}

type Location string

const (
	LocationBuea   Location = "Buea"
	LocationLimbe  Location = "Limbe"
	LocationDouala Location = "Douala"
)

func (l Location) String() string {
	return string(l)
}

func (l Location) IsValid() bool {
	switch l {
	case LocationBuea, LocationLimbe, LocationDouala:
		return true
	default:
		return false
	}
}

type Currency string

const (
	CurrencyXAF Currency = "XAF"
	CurrencyUSD Currency = "USD"
)

func (c Currency) String() string {
	return string(c)
}

func (c Currency) IsValid() bool {
	switch c {
	case CurrencyXAF, CurrencyUSD:
		return true
	default:
		return false
	}
}

// PricingPeriod is derived, not stored: guesthouses and hotels are priced
// per night, rented houses and land per month, everything else is a one-off
// sale price.
type PricingPeriod string

const (
	PricedPerNight PricingPeriod = "per-night"
	PricedPerMonth PricingPeriod = "per-month"
	PricedTotal    PricingPeriod = "total"
)

func (p PricingPeriod) String() string {
	return string(p)
}
