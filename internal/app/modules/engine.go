package modules

import (
	"context"

	"github.com/riverqueue/river"

	"workorder.io/engine/internal/api/handlers"
	"workorder.io/engine/internal/maintenance"
)

// EngineModule wires the work-order engine proper — registry, allocator,
// executor, lease service and maintenance — into the composition root.
// The engine has exactly one domain-neutral HTTP surface
// (internal/api/handlers) and one set of background workers
// (internal/maintenance), so a single module is enough.
type EngineModule struct {
	infra *Infrastructure
}

// NewEngineModule creates the engine module from an already-built Infrastructure.
func NewEngineModule(infra *Infrastructure) *EngineModule {
	return &EngineModule{infra: infra}
}

func (m *EngineModule) Name() string { return "engine" }

func (m *EngineModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil || m == nil || m.infra == nil {
		return
	}
	deps.Registry = m.infra.Registry
	deps.Allocator = m.infra.Allocator
	deps.Executor = m.infra.Executor
	deps.Leases = m.infra.Leases
	deps.Idem = m.infra.Idem
	if m.infra.Config != nil {
		deps.IdemEnforceOn = m.infra.Config.Idempotency.EnforceOn
	}
}

func (m *EngineModule) RegisterWorkers(workers *river.Workers) {
	if workers == nil || m == nil || m.infra == nil || m.infra.Maint == nil {
		return
	}
	river.AddWorker(workers, maintenance.NewReclaimWorker(m.infra.Maint))
	river.AddWorker(workers, maintenance.NewDeadLetterWorker(m.infra.Maint))
	river.AddWorker(workers, maintenance.NewStaleWorker(m.infra.Maint))
}

func (m *EngineModule) Shutdown(context.Context) error { return nil }
