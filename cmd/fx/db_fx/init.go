package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gezi/internal/config"
	"gezi/internal/infra"
	"gezi/internal/repositories"
)

var Module = fx.Provide(
	provideDB,
	provideCityAliasRepository)

// provideDB returns a nil *gorm.DB when POSTGRES_URL is not set. The database
// only holds reference data, so the service runs without it.
func provideDB(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	if cfg.PostgresURL == "" {
		logger.Info("POSTGRES_URL not set, using built-in city aliases")
		return nil, nil
	}

	db, err := infra.InitPostgresql(cfg.PostgresURL, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, logger)
			return nil
		},
	})
	return db, nil
}

func provideCityAliasRepository(db *gorm.DB) repositories.CityAliasRepositoryInterface {
	if db == nil {
		return nil
	}
	return repositories.NewCityAliasRepository(db)
}
