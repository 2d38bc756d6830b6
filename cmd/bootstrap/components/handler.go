package components

import (
	"github.com/atomospherebrand-bot/relese/internal/handler"
	"github.com/atomospherebrand-bot/relese/internal/handler/api"
	"github.com/atomospherebrand-bot/relese/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewBotHandler,
		api.NewCatalogHandler,
		api.NewContentHandler,
		api.NewReportHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
