package rental

import (
	"errors"
	"fmt"
	"time"

	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/property"

	"github.com/google/uuid"
)

var (
	ErrNonPositiveMonths = errors.New("months to rent must be a positive integer")
	ErrMissingUser       = errors.New("rental requires a user identity")
	ErrMissingBooking    = errors.New("rental requires a source booking")
)

// Rental is a monthly tenancy derived from a confirmed booking. It is
// written once and never mutated; the source booking is the only record
// that changes (status -> completed, rentalId set).
type Rental struct {
	id               string
	userID           uuid.UUID
	propertyID       string
	propertyName     string
	propertyAddress  string
	propertyImageURL string
	rentStartDate    time.Time
	rentEndDate      time.Time
	monthsPaid       int
	monthlyPrice     int64
	currency         property.Currency
	createdAt        time.Time
	bookingID        string
}

func NewRental(
	prop *property.Property,
	userID uuid.UUID,
	bookingID string,
	monthsPaid int,
	now time.Time,
) (*Rental, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	if bookingID == "" {
		return nil, ErrMissingBooking
	}
	if monthsPaid <= 0 {
		return nil, ErrNonPositiveMonths
	}

	return &Rental{
		id:               newRentalID(prop.ID(), userID, now),
		userID:           userID,
		propertyID:       prop.ID(),
		propertyName:     prop.Name(),
		propertyAddress:  prop.Address(),
		propertyImageURL: prop.MainImageURL(),
		rentStartDate:    now,
		rentEndDate:      now.AddDate(0, monthsPaid, 0),
		monthsPaid:       monthsPaid,
		monthlyPrice:     prop.Price(),
		currency:         prop.Currency(),
		createdAt:        now,
		bookingID:        bookingID,
	}, nil
}

func newRentalID(propertyID string, userID uuid.UUID, now time.Time) string {
	return fmt.Sprintf("rental_%s_%s_%d", propertyID, userID, now.UnixMilli())
}

func (r *Rental) ID() string                  { return r.id }
func (r *Rental) UserID() uuid.UUID           { return r.userID }
func (r *Rental) PropertyID() string          { return r.propertyID }
func (r *Rental) PropertyName() string        { return r.propertyName }
func (r *Rental) PropertyAddress() string     { return r.propertyAddress }
func (r *Rental) PropertyImageURL() string    { return r.propertyImageURL }
func (r *Rental) RentStartDate() time.Time    { return r.rentStartDate }
func (r *Rental) RentEndDate() time.Time      { return r.rentEndDate }
func (r *Rental) MonthsPaid() int             { return r.monthsPaid }
func (r *Rental) MonthlyPrice() int64         { return r.monthlyPrice }
func (r *Rental) Currency() property.Currency { return r.currency }
func (r *Rental) CreatedAt() time.Time        { return r.createdAt }
func (r *Rental) BookingID() string           { return r.bookingID }
