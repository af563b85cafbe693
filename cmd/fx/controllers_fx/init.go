package controllers_fx

import (
	"go.uber.org/fx"

	"gezi/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewHealthController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewExportController),
	fx.Provide(controllers.NewEnrichmentController),
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewChatController))
