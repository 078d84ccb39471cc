package modules

import (
	"workorder.io/engine/internal/api/handlers"
	"workorder.io/engine/internal/config"
)

// NewServerDeps builds base server deps then lets each module contribute explicit wiring.
func NewServerDeps(cfg *config.Config, infra *Infrastructure, mods []Module) handlers.ServerDeps {
	deps := handlers.ServerDeps{
		EntClient:   infra.EntClient,
		Pool:        infra.Pool,
		RiverClient: infra.RiverClient,
	}
	for _, mod := range mods {
		if mod == nil {
			continue
		}
		mod.ContributeServerDeps(&deps)
	}
	return deps
}
