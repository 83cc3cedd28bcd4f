package queries

import (
	"time"

	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/booking"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/property"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/rental"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type ImageView struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type AgentView struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type PropertyView struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Type          string      `json:"type"`
	ListingType   string      `json:"listingType"`
	Location      string      `json:"location"`
	Price         int64       `json:"price"`
	Currency      string      `json:"currency"`
	PricingPeriod string      `json:"pricingPeriod"`
	Description   string      `json:"description"`
	Address       string      `json:"address"`
	Bedrooms      *int        `json:"bedrooms,omitempty"`
	Bathrooms     *int        `json:"bathrooms,omitempty"`
	AreaSqMeters  *int        `json:"areaSqMeters,omitempty"`
	Amenities     []string    `json:"amenities"`
	Images        []ImageView `json:"images"`
	IsFeatured    bool        `json:"isFeatured"`
	Agent         AgentView   `json:"agent"`
}

func NewPropertyView(p *property.Property) *PropertyView {
	images := make([]ImageView, 0, len(p.Images()))
	for _, img := range p.Images() {
		images = append(images, ImageView{URL: img.URL, Alt: img.Alt})
	}
	return &PropertyView{
		ID:            p.ID(),
		Name:          p.Name(),
		Type:          p.Type().String(),
		ListingType:   p.ListingType().String(),
		Location:      p.Location().String(),
		Price:         p.Price(),
		Currency:      p.Currency().String(),
		PricingPeriod: p.PricingPeriod().String(),
		Description:   p.Description(),
		Address:       p.Address(),
		Bedrooms:      p.Bedrooms(),
		Bathrooms:     p.Bathrooms(),
		AreaSqMeters:  p.AreaSqMeters(),
		Amenities:     p.Amenities(),
		Images:        images,
		IsFeatured:    p.IsFeatured(),
		Agent: AgentView{
			Name:  p.Agent().Name,
			Phone: p.Agent().Phone,
			Email: p.Agent().Email,
		},
	}
}

// BookingView deliberately omits card and mobile money details. Payment
// instruments never leave the write side.
type BookingView struct {
	ID                  string    `json:"id"`
	PropertyID          string    `json:"propertyId"`
	PropertyName        string    `json:"propertyName"`
	PropertyType        string    `json:"propertyType"`
	PropertyListingType string    `json:"propertyListingType"`
	UserID              uuid.UUID `json:"userId"`
	AppointmentType     string    `json:"appointmentType"`
	AppointmentPrice    int64     `json:"appointmentPrice"`
	MeetingDate         string    `json:"meetingDate"`
	MeetingTime         string    `json:"meetingTime"`
	MeetingLocation     string    `json:"meetingLocation"`
	UserName            string    `json:"userName"`
	UserPhone           string    `json:"userPhone"`
	UserEmail           string    `json:"userEmail"`
	PaymentMethod       *string   `json:"paymentMethod,omitempty"`
	PaymentStatus       string    `json:"paymentStatus,omitempty"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"createdAt"`
	RentalID            *string   `json:"rentalId,omitempty"`
}

func NewBookingView(b *booking.BookingRequest) *BookingView {
	view := &BookingView{
		ID:                  b.ID(),
		PropertyID:          b.PropertyID(),
		PropertyName:        b.PropertyName(),
		PropertyType:        b.PropertyType().String(),
		PropertyListingType: b.PropertyListingType().String(),
		UserID:              b.UserID(),
		AppointmentType:     b.AppointmentType().String(),
		AppointmentPrice:    b.AppointmentPrice(),
		MeetingDate:         b.MeetingTime().Format("2006-01-02"),
		MeetingTime:         b.MeetingTime().Format("15:04"),
		MeetingLocation:     b.MeetingLocation(),
		UserName:            b.UserName(),
		UserPhone:           b.UserPhone(),
		UserEmail:           b.UserEmail(),
		PaymentStatus:       string(b.PaymentStatus()),
		Status:              b.Status().String(),
		CreatedAt:           b.CreatedAt(),
		RentalID:            b.RentalID(),
	}
	if m := b.PaymentMethod(); m != nil {
		s := m.String()
		view.PaymentMethod = &s
	}
	return view
}

type RentalView struct {
	ID               string    `json:"id"`
	UserID           uuid.UUID `json:"userId"`
	PropertyID       string    `json:"propertyId"`
	PropertyName     string    `json:"propertyName"`
	PropertyAddress  string    `json:"propertyAddress"`
	PropertyImageURL string    `json:"propertyImageUrl"`
	RentStartDate    time.Time `json:"rentStartDate"`
	RentEndDate      time.Time `json:"rentEndDate"`
	MonthsPaid       int       `json:"monthsPaid"`
	MonthlyPrice     int64     `json:"monthlyPrice"`
	Currency         string    `json:"currency"`
	CreatedAt        time.Time `json:"createdAt"`
	BookingID        string    `json:"bookingId"`
}

func NewRentalView(r *rental.Rental) *RentalView {
	return &RentalView{
		ID:               r.ID(),
		UserID:           r.UserID(),
		PropertyID:       r.PropertyID(),
		PropertyName:     r.PropertyName(),
		PropertyAddress:  r.PropertyAddress(),
		PropertyImageURL: r.PropertyImageURL(),
		RentStartDate:    r.RentStartDate(),
		RentEndDate:      r.RentEndDate(),
		MonthsPaid:       r.MonthsPaid(),
		MonthlyPrice:     r.MonthlyPrice(),
		Currency:         r.Currency().String(),
		CreatedAt:        r.CreatedAt(),
		BookingID:        r.BookingID(),
	}
}

type AuthorizedUserView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"isActive"`
}

// DashboardPropertyView is a catalog property as it appears on the user
// dashboard, decorated with rental details when a rental backs it.
type DashboardPropertyView struct {
	*PropertyView
	RentalDetails *RentalView `json:"rentalDetails,omitempty"`
}

// DashboardView joins the user's properties (rented plus listed) with
// their booking requests.
type DashboardView struct {
	Properties []*DashboardPropertyView `json:"properties"`
	Bookings   []*BookingView           `json:"bookings"`
}
