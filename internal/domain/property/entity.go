package property

import (
	"errors"
	"strings"
)

var (
	ErrEmptyID             = errors.New("property id cannot be empty")
	ErrEmptyName           = errors.New("property name cannot be empty")
	ErrInvalidType         = errors.New("invalid property type")
	ErrInvalidListingType  = errors.New("invalid listing type")
	ErrInvalidLocation     = errors.New("invalid property location")
	ErrInvalidCurrency     = errors.New("invalid currency")
	ErrNonPositivePrice    = errors.New("price must be positive")
	ErrNoImages            = errors.New("property must have at least one image")
	ErrIncompleteAgent     = errors.New("agent contact must have name, phone and email")
)

type Image struct {
	URL string
	Alt string
}

type Agent struct {
	Name  string
	Phone string
	Email string
}

// Spec carries the raw attributes of a catalog record. Properties are
// immutable reference data; there is no create/update path beyond seeding.
type Spec struct {
	ID           string
	Name         string
	Type         Type
	ListingType  ListingType
	Location     Location
	Price        int64
	Currency     Currency
	Description  string
	Address      string
	Bedrooms     *int
	Bathrooms    *int
	AreaSqMeters *int
	Amenities    []string
	Images       []Image
	IsFeatured   bool
	Agent        Agent
}

type Property struct {
	id           string
	name         string
	propertyType Type
	listingType  ListingType
	location     Location
	price        int64
	currency     Currency
	description  string
	address      string
	bedrooms     *int
	bathrooms    *int
	areaSqMeters *int
	amenities    []string
	images       []Image
	isFeatured   bool
	agent        Agent
}

func NewProperty(spec Spec) (*Property, error) {
	if strings.TrimSpace(spec.ID) == "" {
		return nil, ErrEmptyID
	}
	if strings.TrimSpace(spec.Name) == "" {
		return nil, ErrEmptyName
	}
	if !spec.Type.IsValid() {
		return nil, ErrInvalidType
	}
	if !spec.ListingType.IsValid() {
		return nil, ErrInvalidListingType
	}
	if !spec.Location.IsValid() {
		return nil, ErrInvalidLocation
	}
	if !spec.Currency.IsValid() {
		return nil, ErrInvalidCurrency
	}
	if spec.Price <= 0 {
		return nil, ErrNonPositivePrice
	}
	if len(spec.Images) == 0 {
		return nil, ErrNoImages
	}
	if spec.Agent.Name == "" || spec.Agent.Phone == "" || spec.Agent.Email == "" {
		return nil, ErrIncompleteAgent
	}

	return &Property{
		id:           spec.ID,
		name:         strings.TrimSpace(spec.Name),
		propertyType: spec.Type,
		listingType:  spec.ListingType,
		location:     spec.Location,
		price:        spec.Price,
		currency:     spec.Currency,
		description:  spec.Description,
		address:      spec.Address,
		bedrooms:     spec.Bedrooms,
		bathrooms:    spec.Bathrooms,
		areaSqMeters: spec.AreaSqMeters,
		amenities:    spec.Amenities,
		images:       spec.Images,
		isFeatured:   spec.IsFeatured,
		agent:        spec.Agent,
	}, nil
}

func (p *Property) PricingPeriod() PricingPeriod {
	switch {
	case p.propertyType == TypeGuesthouse || p.propertyType == TypeHotel:
		return PricedPerNight
	case p.listingType == ListingRent:
		return PricedPerMonth
	default:
		return PricedTotal
	}
}

// IsRentableMonthly reports whether a confirmed booking for this property
// can be converted into a monthly rental. Guesthouses and hotels are priced
// per night and have no monthly conversion.
func (p *Property) IsRentableMonthly() bool {
	if p.listingType != ListingRent {
		return false
	}
	return p.propertyType == TypeHouse || p.propertyType == TypeLand
}

func (p *Property) ID() string                { return p.id }
func (p *Property) Name() string              { return p.name }
func (p *Property) Type() Type                { return p.propertyType }
func (p *Property) ListingType() ListingType  { return p.listingType }
func (p *Property) Location() Location        { return p.location }
func (p *Property) Price() int64              { return p.price }
func (p *Property) Currency() Currency        { return p.currency }
func (p *Property) Description() string       { return p.description }
func (p *Property) Address() string           { return p.address }
func (p *Property) Bedrooms() *int            { return p.bedrooms }
func (p *Property) Bathrooms() *int           { return p.bathrooms }
func (p *Property) AreaSqMeters() *int        { return p.areaSqMeters }
func (p *Property) Amenities() []string       { return p.amenities }
func (p *Property) Images() []Image           { return p.images }
func (p *Property) IsFeatured() bool          { return p.isFeatured }
func (p *Property) Agent() Agent              { return p.agent }

// MainImageURL returns the first image URL, the one dashboards and list
// views display.
func (p *Property) MainImageURL() string {
	if len(p.images) == 0 {
		return ""
	}
	return p.images[0].URL
}
