package components

import (
	"github.com/atomospherebrand-bot/relese/internal/infra/db"
	"github.com/atomospherebrand-bot/relese/internal/infra/readstore"
	"github.com/atomospherebrand-bot/relese/internal/infra/scheduler"
	"github.com/atomospherebrand-bot/relese/internal/infra/telegram"
	"github.com/atomospherebrand-bot/relese/internal/infra/uow"
	"github.com/atomospherebrand-bot/relese/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write-side repositories are built per transaction by the unit of work;
// only the read stores are wired here.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	fx.Provide(uow.NewPostgresUoW),
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(scheduler.UpcomingBookings)),
		),
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		fx.Annotate(
			readstore.NewPortfolioReadStore,
			fx.As(new(queries.PortfolioReadStore)),
		),
		fx.Annotate(
			readstore.NewReportReadStore,
			fx.As(new(queries.ReportReadStore)),
		),
		fx.Annotate(
			readstore.NewStudioReadStore,
			fx.As(new(queries.StudioReadStore)),
			fx.As(new(telegram.Content)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
