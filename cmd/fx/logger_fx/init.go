package logger_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"gezi/internal/config"
)

var Module = fx.Provide(provideLogger)

// NewLogger builds a development logger for APP_ENV=development and a JSON
// production logger otherwise.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func provideLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	logger, err := NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	undo := zap.ReplaceGlobals(logger)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			undo()
			// Sync fails on stdout/stderr on some platforms; nothing to do about it.
			_ = logger.Sync()
			return nil
		},
	})
	return logger, nil
}
