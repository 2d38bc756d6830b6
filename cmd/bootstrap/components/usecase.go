package components

import (
	"github.com/atomospherebrand-bot/relese/internal/domain/booking"
	"github.com/atomospherebrand-bot/relese/internal/domain/schedule"
	"github.com/atomospherebrand-bot/relese/internal/pkg/clock"
	"github.com/atomospherebrand-bot/relese/internal/pkg/config"
	"github.com/atomospherebrand-bot/relese/internal/usecase"
	"github.com/atomospherebrand-bot/relese/internal/usecase/commands"
	"github.com/atomospherebrand-bot/relese/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	func(cfg config.Config) (clock.Clock, error) {
		loc, err := clock.LoadLocation(cfg.Schedule.Location)
		if err != nil {
			return nil, err
		}
		return clock.NewStudioClock(loc), nil
	},
	func(cfg config.Config) (schedule.WorkingHours, error) {
		s := cfg.Schedule
		return schedule.NewWorkingHours(s.OpeningHour, s.ClosingHour, s.SlotStepMinutes)
	},
	func(cfg config.Config) booking.TransitionPolicy {
		return booking.NewTransitionPolicy(cfg.Booking.StrictStatus)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewCatalogCommands,
		commands.NewContentCommands,
		commands.NewImportCommands,
		commands.NewNotificationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewBookingQueries,
		queries.NewCatalogQueries,
		queries.NewNotificationQueries,
		queries.NewPortfolioQueries,
		queries.NewReportQueries,
		queries.NewStudioQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
