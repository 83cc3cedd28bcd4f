package booking

import (
	"strings"

	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/property"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/pkg/clock"

	"github.com/google/uuid"
)

// Factory builds booking requests. Construction always runs the validator,
// so a request that skipped validation cannot exist.
type Factory struct {
	clock     clock.Clock
	validator *Validator
}

func NewFactory(clk clock.Clock, validator *Validator) *Factory {
	return &Factory{
		clock:     clk,
		validator: validator,
	}
}

func (f *Factory) CreateBookingRequest(
	prop *property.Property,
	userID uuid.UUID,
	cand Candidate,
) (*BookingRequest, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}

	if err := f.validator.Validate(cand).Err(); err != nil {
		return nil, err
	}

	now := f.clock.Now()

	meetingTime, err := cand.MeetingMoment(now.Location())
	if err != nil {
		// Unreachable after validation, kept as a guard against misuse.
		return nil, err
	}

	appointmentType := AppointmentType(cand.AppointmentType)
	price := appointmentType.Price()

	meetingLocation := strings.TrimSpace(cand.MeetingLocation)
	if appointmentType != AppointmentPhysicalViewing && meetingLocation == "" {
		meetingLocation = NotApplicableLocation
	}

	b := &BookingRequest{
		id:                  NewBookingID(now),
		propertyID:          prop.ID(),
		propertyName:        prop.Name(),
		propertyType:        prop.Type(),
		propertyListingType: prop.ListingType(),
		userID:              userID,
		appointmentType:     appointmentType,
		appointmentPrice:    price,
		meetingTime:         meetingTime,
		meetingLocation:     meetingLocation,
		userName:            strings.TrimSpace(cand.UserName),
		userPhone:           strings.TrimSpace(cand.UserPhone),
		userEmail:           strings.TrimSpace(cand.UserEmail),
		status:              StatusPending,
		createdAt:           now,
	}

	// Exactly one payment-detail group is populated, and only on paid
	// appointment types. The simulated processor marks them paid upfront.
	if price > 0 {
		method := PaymentMethod(cand.PaymentMethod)
		b.paymentMethod = &method
		b.paymentStatus = PaymentStatusPaid

		switch method {
		case PaymentCreditCard:
			b.card = &CardDetails{
				Number: whitespaceRegex.ReplaceAllString(cand.CardNumber, ""),
				Expiry: cand.CardExpiry,
				CVC:    cand.CardCVC,
			}
		case PaymentMobileMoney:
			n := cand.MobileMoneyNumber
			b.mobileMoneyNumber = &n
		}
	}

	return b, nil
}
