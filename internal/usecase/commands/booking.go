package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/booking"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/property"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/rental"
	reqdto "github.com/ferdinandetchu/real-estate-cameroon/internal/handler/dto/request"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/infra"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/pkg/clock"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/pkg/errs"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrPropertyNotFound      = errs.New("property not found")
	ErrBookingNotFound       = errs.New("booking not found")
	ErrValidationFailed      = errs.New("booking validation failed")
	ErrInvalidState          = errs.New("booking is not in a state that allows this operation")
	ErrUnsupportedConversion = errs.New("property does not support monthly rental conversion")
	ErrStoreOperationFailed  = errs.New("store operation failed")
)

type BookingCommands interface {
	SubmitBooking(ctx context.Context, userID uuid.UUID, req reqdto.SubmitBookingRequest) (*queries.BookingView, error)
	ConfirmBooking(ctx context.Context, id string) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, id string) (*queries.BookingView, error)
	ConvertToRental(ctx context.Context, userID uuid.UUID, bookingID string, req reqdto.ConvertToRentalRequest) (*queries.RentalView, error)
}

type bookingCommandsImpl struct {
	properties PropertyRepository
	bookings   BookingRepository
	rentals    RentalRepository
	factory    *booking.Factory
	clock      clock.Clock
}

func NewBookingCommands(
	properties PropertyRepository,
	bookings BookingRepository,
	rentals RentalRepository,
	factory *booking.Factory,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		properties: properties,
		bookings:   bookings,
		rentals:    rentals,
		factory:    factory,
		clock:      clk,
	}
}

func (c *bookingCommandsImpl) SubmitBooking(
	ctx context.Context,
	userID uuid.UUID,
	req reqdto.SubmitBookingRequest,
) (*queries.BookingView, error) {
	prop, err := c.findProperty(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}

	entity, err := c.factory.CreateBookingRequest(prop, userID, req.ToCandidate())
	if err != nil {
		return nil, errs.Mark(err, ErrValidationFailed)
	}

	if err := c.bookings.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	slog.Info("booking submitted",
		"booking_id", entity.ID(),
		"property_id", entity.PropertyID(),
		"appointment_type", entity.AppointmentType().String(),
	)

	return queries.NewBookingView(entity), nil
}

func (c *bookingCommandsImpl) ConfirmBooking(ctx context.Context, id string) (*queries.BookingView, error) {
	return c.transition(ctx, id, (*booking.BookingRequest).Confirm)
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, id string) (*queries.BookingView, error) {
	return c.transition(ctx, id, (*booking.BookingRequest).Cancel)
}

func (c *bookingCommandsImpl) transition(
	ctx context.Context,
	id string,
	apply func(*booking.BookingRequest) error,
) (*queries.BookingView, error) {
	updated, err := c.bookings.Update(ctx, id, apply)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, booking.ErrInvalidTransition):
			return nil, errs.Mark(err, ErrInvalidState)
		default:
			return nil, errs.Mark(err, ErrStoreOperationFailed)
		}
	}
	return queries.NewBookingView(updated), nil
}

// ConvertToRental turns a confirmed booking into a monthly rental. The
// status re-check inside the store update is what makes concurrent double
// conversion impossible: only one caller observes status=confirmed.
func (c *bookingCommandsImpl) ConvertToRental(
	ctx context.Context,
	userID uuid.UUID,
	bookingID string,
	req reqdto.ConvertToRentalRequest,
) (*queries.RentalView, error) {
	b, err := c.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	// Another user's booking reads as absent rather than forbidden so the
	// response does not confirm the ID exists.
	if b.UserID() != userID {
		return nil, ErrBookingNotFound
	}

	prop, err := c.findProperty(ctx, b.PropertyID())
	if err != nil {
		return nil, err
	}

	if !prop.IsRentableMonthly() {
		return nil, ErrUnsupportedConversion
	}

	rentalEntity, err := rental.NewRental(prop, b.UserID(), b.ID(), req.MonthsToRent, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrValidationFailed)
	}

	_, err = c.bookings.Update(ctx, bookingID, func(rec *booking.BookingRequest) error {
		return rec.Complete(rentalEntity.ID())
	})
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidTransition), errors.Is(err, booking.ErrRentalAlreadyLinked):
			return nil, errs.Mark(err, ErrInvalidState)
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrBookingNotFound
		default:
			return nil, errs.Mark(err, ErrStoreOperationFailed)
		}
	}

	if err := c.rentals.Create(ctx, rentalEntity); err != nil {
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}

	slog.Info("booking converted to rental",
		"booking_id", bookingID,
		"rental_id", rentalEntity.ID(),
		"months_paid", rentalEntity.MonthsPaid(),
	)

	return queries.NewRentalView(rentalEntity), nil
}

func (c *bookingCommandsImpl) findProperty(ctx context.Context, id string) (*property.Property, error) {
	prop, err := c.properties.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, errs.Mark(err, ErrStoreOperationFailed)
	}
	return prop, nil
}
