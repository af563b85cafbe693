package backend_fx

import (
	"go.uber.org/fx"

	"gezi/internal/backend"
	"gezi/internal/config"
)

var Module = fx.Provide(provideBackendClient)

func provideBackendClient(cfg *config.Config) backend.Client {
	return backend.NewClient(cfg.BackendURL, cfg.BackendTimeout)
}
