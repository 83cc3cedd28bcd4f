package queries

import (
	"context"

	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/rental"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/infra"

	"github.com/google/uuid"
)

type DashboardQueries interface {
	GetDashboard(ctx context.Context, userID uuid.UUID) (*DashboardView, error)
}

type RentalReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*rental.Rental, error)
}

// OwnershipSource supplies the catalog properties a user has listed. The
// ownership model itself lives outside this service.
type OwnershipSource interface {
	ListOwnedPropertyIDs(ctx context.Context, userID uuid.UUID) ([]string, error)
}

type dashboardQueriesImpl struct {
	bookings   BookingReadStore
	rentals    RentalReadStore
	properties PropertyReadStore
	ownership  OwnershipSource
}

func NewDashboardQueries(
	bookings BookingReadStore,
	rentals RentalReadStore,
	properties PropertyReadStore,
	ownership OwnershipSource,
) DashboardQueries {
	return &dashboardQueriesImpl{
		bookings:   bookings,
		rentals:    rentals,
		properties: properties,
		ownership:  ownership,
	}
}

// GetDashboard is a pure join, no status filtering: every property backing
// one of the user's rentals (decorated with that rental), every property
// the user has listed, and the user's bookings in creation order. A user
// with no activity gets empty slices, not nulls.
func (q *dashboardQueriesImpl) GetDashboard(ctx context.Context, userID uuid.UUID) (*DashboardView, error) {
	rentalRecords, err := q.rentals.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	properties := make([]*DashboardPropertyView, 0, len(rentalRecords))
	seen := make(map[string]struct{}, len(rentalRecords))

	for _, r := range rentalRecords {
		entry := &DashboardPropertyView{RentalDetails: NewRentalView(r)}
		seen[r.PropertyID()] = struct{}{}

		prop, err := q.properties.FindByID(ctx, r.PropertyID())
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
		if err == nil {
			entry.PropertyView = NewPropertyView(prop)
		}
		// With a missing catalog entry the rental snapshot still renders
		properties = append(properties, entry)
	}

	ownedIDs, err := q.ownership.ListOwnedPropertyIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, id := range ownedIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		prop, err := q.properties.FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				continue
			}
			return nil, err
		}
		properties = append(properties, &DashboardPropertyView{PropertyView: NewPropertyView(prop)})
	}

	bookingRecords, err := q.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	bookings := make([]*BookingView, 0, len(bookingRecords))
	for _, b := range bookingRecords {
		bookings = append(bookings, NewBookingView(b))
	}

	return &DashboardView{
		Properties: properties,
		Bookings:   bookings,
	}, nil
}
