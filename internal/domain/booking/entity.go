package booking

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/property"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition   = errors.New("invalid booking status transition")
	ErrRentalAlreadyLinked = errors.New("booking is already linked to a rental")
	ErrMissingUser         = errors.New("a signed-in user is required to book")
)

type CardDetails struct {
	Number string
	Expiry string
	CVC    string
}

// BookingRequest is an appointment request for a property. It denormalizes
// the property's name, type and listing type at submission time so the
// dashboard never has to re-join the catalog for display.
type BookingRequest struct {
	id                  string
	propertyID          string
	propertyName        string
	propertyType        property.Type
	propertyListingType property.ListingType
	userID              uuid.UUID
	appointmentType     AppointmentType
	appointmentPrice    int64
	meetingTime         time.Time
	meetingLocation     string
	userName            string
	userPhone           string
	userEmail           string
	paymentMethod       *PaymentMethod
	card                *CardDetails
	mobileMoneyNumber   *string
	paymentStatus       PaymentStatus
	status              Status
	createdAt           time.Time
	rentalID            *string
}

// NewBookingID mints ids in the wire format the rest of the platform
// expects: booking_<unix ms>_<random suffix>.
func NewBookingID(now time.Time) string {
	return fmt.Sprintf("booking_%d_%s", now.UnixMilli(), randomSuffix())
}

func randomSuffix() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("%08d", time.Now().UnixNano()%100000000)
	}
	return hex.EncodeToString(buf)
}

// Confirm applies the operator-side pending -> confirmed transition.
// Confirming an already-confirmed booking is a no-op.
func (b *BookingRequest) Confirm() error {
	switch b.status {
	case StatusPending:
		b.status = StatusConfirmed
		return nil
	case StatusConfirmed:
		return nil
	default:
		return ErrInvalidTransition
	}
}

// Cancel applies the operator-side pending -> cancelled transition.
// Cancelling an already-cancelled booking is a no-op.
func (b *BookingRequest) Cancel() error {
	switch b.status {
	case StatusPending:
		b.status = StatusCancelled
		return nil
	case StatusCancelled:
		return nil
	default:
		return ErrInvalidTransition
	}
}

// Complete finalizes a confirmed booking after a successful rental
// conversion, recording the rental it produced.
func (b *BookingRequest) Complete(rentalID string) error {
	if b.rentalID != nil {
		return ErrRentalAlreadyLinked
	}
	if b.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	b.status = StatusCompleted
	b.rentalID = &rentalID
	return nil
}

func (b *BookingRequest) ID() string                                { return b.id }
func (b *BookingRequest) PropertyID() string                        { return b.propertyID }
func (b *BookingRequest) PropertyName() string                      { return b.propertyName }
func (b *BookingRequest) PropertyType() property.Type               { return b.propertyType }
func (b *BookingRequest) PropertyListingType() property.ListingType { return b.propertyListingType }
func (b *BookingRequest) UserID() uuid.UUID                         { return b.userID }
func (b *BookingRequest) AppointmentType() AppointmentType          { return b.appointmentType }
func (b *BookingRequest) AppointmentPrice() int64                   { return b.appointmentPrice }
func (b *BookingRequest) MeetingTime() time.Time                    { return b.meetingTime }
func (b *BookingRequest) MeetingLocation() string                   { return b.meetingLocation }
func (b *BookingRequest) UserName() string                          { return b.userName }
func (b *BookingRequest) UserPhone() string                         { return b.userPhone }
func (b *BookingRequest) UserEmail() string                         { return b.userEmail }
func (b *BookingRequest) PaymentMethod() *PaymentMethod             { return b.paymentMethod }
func (b *BookingRequest) Card() *CardDetails                        { return b.card }
func (b *BookingRequest) MobileMoneyNumber() *string                { return b.mobileMoneyNumber }
func (b *BookingRequest) PaymentStatus() PaymentStatus              { return b.paymentStatus }
func (b *BookingRequest) Status() Status                            { return b.status }
func (b *BookingRequest) CreatedAt() time.Time                      { return b.createdAt }
func (b *BookingRequest) RentalID() *string                         { return b.rentalID }

// Clone returns an independent copy so the in-memory store can hand out
// snapshots that later mutations cannot tear.
func (b *BookingRequest) Clone() *BookingRequest {
	dup := *b
	if b.paymentMethod != nil {
		m := *b.paymentMethod
		dup.paymentMethod = &m
	}
	if b.card != nil {
		card := *b.card
		dup.card = &card
	}
	if b.mobileMoneyNumber != nil {
		n := *b.mobileMoneyNumber
		dup.mobileMoneyNumber = &n
	}
	if b.rentalID != nil {
		id := *b.rentalID
		dup.rentalID = &id
	}
	return &dup
}
