package config_fx

import (
	"go.uber.org/fx"

	"gezi/internal/config"
)

var Module = fx.Provide(config.NewFromEnv)
