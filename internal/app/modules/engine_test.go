package modules

import (
	"context"
	"testing"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"

	"workorder.io/engine/internal/api/handlers"
)

func TestEngineModule_NilInfraIsSafe(t *testing.T) {
	m := NewEngineModule(nil)

	require.Equal(t, "engine", m.Name())
	require.NotPanics(t, func() {
		m.ContributeServerDeps(&handlers.ServerDeps{})
		m.RegisterWorkers(river.NewWorkers())
	})
	require.NoError(t, m.Shutdown(context.Background()))
}

func TestEngineModule_ContributeServerDeps_NilDeps(t *testing.T) {
	m := NewEngineModule(&Infrastructure{})
	require.NotPanics(t, func() {
		m.ContributeServerDeps(nil)
	})
}

func TestEngineModule_RegisterWorkers_NilWorkers(t *testing.T) {
	m := NewEngineModule(&Infrastructure{})
	require.NotPanics(t, func() {
		m.RegisterWorkers(nil)
	})
}
