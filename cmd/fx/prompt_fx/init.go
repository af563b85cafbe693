package prompt_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"gezi/internal/config"
	"gezi/internal/services"
	"gezi/pkg/utils"
)

var Module = fx.Provide(
	ProvideTextGenerator,
	ProvidePlanService)

// ProvideTextGenerator creates the plan generator for PLAN_PROVIDER.
func ProvideTextGenerator(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (utils.TextGeneratorInterface, error) {
	var apiKey, model string
	switch cfg.PlanProvider {
	case config.ProviderOpenAI:
		apiKey, model = cfg.OpenAIAPIKey, cfg.OpenAIModel
	case config.ProviderGemini:
		apiKey, model = cfg.GeminiAPIKey, cfg.GeminiModel
	}

	generator, err := utils.NewTextGenerator(context.Background(), cfg.PlanProvider, apiKey, model)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.PlanProvider, err)
	}
	logger.Info("Plan generator ready", zap.String("provider", cfg.PlanProvider), zap.String("model", model))

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return generator.Close()
		},
	})
	return generator, nil
}

func ProvidePlanService(
	generator utils.TextGeneratorInterface,
	schedules services.ScheduleServiceInterface,
	logger *zap.Logger,
) services.PlanServiceInterface {
	return services.NewPlanService(generator, schedules, logger)
}
