package itinerary_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"gezi/internal/backend"
	"gezi/internal/config"
	"gezi/internal/enrichment"
	"gezi/internal/repositories"
	"gezi/internal/services"
	mem "gezi/pkg/memcache"
)

const aliasLoadTimeout = 10 * time.Second

var Module = fx.Provide(
	provideCityImageDetector,
	provideEnrichmentService,
	provideScheduleService,
	provideExportService,
	provideChatService)

func provideCityImageDetector(repo repositories.CityAliasRepositoryInterface, logger *zap.Logger) *enrichment.CityImageDetector {
	ctx, cancel := context.WithTimeout(context.Background(), aliasLoadTimeout)
	defer cancel()
	return services.LoadCityImageDetector(ctx, repo, logger)
}

func provideEnrichmentService(detector *enrichment.CityImageDetector, cfg *config.Config) services.EnrichmentServiceInterface {
	return services.NewEnrichmentService(detector, cfg.CityImageBaseURL, cfg.AirlineLogoBaseURL)
}

func provideScheduleService(
	client backend.Client,
	enrichmentService services.EnrichmentServiceInterface,
	store mem.Store[services.CachedSchedule],
	cfg *config.Config,
	logger *zap.Logger,
) services.ScheduleServiceInterface {
	return services.NewScheduleService(client, enrichmentService, store, cfg.ScheduleTTL, cfg.Location, logger)
}

func provideExportService(schedules services.ScheduleServiceInterface, cfg *config.Config) services.ExportServiceInterface {
	return services.NewExportService(schedules, cfg.Location)
}

func provideChatService(client backend.Client, schedules services.ScheduleServiceInterface, logger *zap.Logger) services.ChatServiceInterface {
	return services.NewChatService(client, schedules, logger)
}
