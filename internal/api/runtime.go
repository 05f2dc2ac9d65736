package api

import (
	"github.com/navigatehome/waypoint/internal/config"
	"github.com/navigatehome/waypoint/internal/infrastructure"
	"github.com/navigatehome/waypoint/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Gateway    config.GatewayConfig
	Pagination pagination.Config
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Storage:   infra.Storage,
			Sessions:  infra.Sessions,
		},
		Gateway:    cfg.Gateway,
		Pagination: cfg.API.Pagination,
	}
}
