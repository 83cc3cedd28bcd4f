package components

import (
	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/booking"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/pkg/clock"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/usecase"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/usecase/commands"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(clk clock.Clock) *booking.Validator {
		return booking.NewValidator(clk, booking.DefaultBlackoutPolicy)
	},
	booking.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCatalogQueries,
		queries.NewBookingQueries,
		queries.NewDashboardQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
