package commands

import (
	"context"

	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/booking"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/property"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/rental"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/user"

	"github.com/google/uuid"
)

// Write-side ports. The in-memory store satisfies all of them; a future
// database-backed implementation slots in behind the same interfaces.

type PropertyRepository interface {
	FindByID(ctx context.Context, id string) (*property.Property, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.BookingRequest) error
	FindByID(ctx context.Context, id string) (*booking.BookingRequest, error)
	Update(ctx context.Context, id string, fn func(*booking.BookingRequest) error) (*booking.BookingRequest, error)
}

type RentalRepository interface {
	Create(ctx context.Context, r *rental.Rental) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
}
