package components

import (
	"github.com/ferdinandetchu/real-estate-cameroon/internal/infra/memstore"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/pkg/errs"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/usecase/commands"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/usecase/queries"

	"go.uber.org/fx"
)

// Each store backs both its write-side port and its read-side port, so the
// command and query layers observe the same records.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			NewSeededPropertyStore,
			fx.As(new(commands.PropertyRepository)),
			fx.As(new(queries.PropertyReadStore)),
		),
		fx.Annotate(
			memstore.NewBookingStore,
			fx.As(new(commands.BookingRepository)),
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			memstore.NewRentalStore,
			fx.As(new(commands.RentalRepository)),
			fx.As(new(queries.RentalReadStore)),
		),
		fx.Annotate(
			memstore.NewUserStore,
			fx.As(new(commands.UserRepository)),
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			memstore.NewStaticOwnershipSource,
			fx.As(new(queries.OwnershipSource)),
		),
	),
)

func NewSeededPropertyStore() (*memstore.PropertyStore, error) {
	store := memstore.NewPropertyStore()
	if err := memstore.SeedCatalog(store); err != nil {
		return nil, errs.Wrap(err, "failed to seed property catalog")
	}
	return store, nil
}
