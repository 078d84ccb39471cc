package maintenance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"workorder.io/engine/internal/statemachine"
)

// Most of Maintenance's logic is multi-entity ent queries and
// transactions with no pure/isolable decision logic (unlike
// leaseservice's sort/tie-break and retry-backoff helpers), so this
// file covers only what's testable without a live client: the
// periodic job Kind()/InsertOpts() contracts, the nil-guard in each
// worker's Work, and the Config/New wiring.

func TestReclaimArgs_KindAndOpts(t *testing.T) {
	require.Equal(t, "maintenance_reclaim", ReclaimArgs{}.Kind())

	opts := ReclaimArgs{}.InsertOpts()
	require.Equal(t, 1, opts.MaxAttempts)
	require.Equal(t, 30*time.Second, opts.UniqueOpts.ByPeriod)
	require.True(t, opts.UniqueOpts.ByQueue)
}

func TestDeadLetterArgs_KindAndOpts(t *testing.T) {
	require.Equal(t, "maintenance_dead_letter", DeadLetterArgs{}.Kind())

	opts := DeadLetterArgs{}.InsertOpts()
	require.Equal(t, 1, opts.MaxAttempts)
	require.Equal(t, 10*time.Minute, opts.UniqueOpts.ByPeriod)
	require.True(t, opts.UniqueOpts.ByQueue)
}

func TestStaleArgs_KindAndOpts(t *testing.T) {
	require.Equal(t, "maintenance_stale", StaleArgs{}.Kind())

	opts := StaleArgs{}.InsertOpts()
	require.Equal(t, 1, opts.MaxAttempts)
	require.Equal(t, time.Hour, opts.UniqueOpts.ByPeriod)
	require.True(t, opts.UniqueOpts.ByQueue)
}

func TestWorkers_ErrorWhenUnwired(t *testing.T) {
	ctx := context.Background()

	require.Error(t, (&ReclaimWorker{}).Work(ctx, nil))
	require.Error(t, (&DeadLetterWorker{}).Work(ctx, nil))
	require.Error(t, (&StaleWorker{}).Work(ctx, nil))
}

func TestNewWorkers_WrapMaintenance(t *testing.T) {
	m := &Maintenance{}

	require.NotNil(t, NewReclaimWorker(m))
	require.NotNil(t, NewDeadLetterWorker(m))
	require.NotNil(t, NewStaleWorker(m))
}

func TestNew_WiresConfig(t *testing.T) {
	cfg := Config{DeadLetterAfter: 72 * time.Hour, StaleOrderThreshold: 24 * time.Hour}
	m := New(nil, nil, (*statemachine.Machine)(nil), cfg)

	require.Equal(t, cfg, m.cfg)
	require.Nil(t, m.client)
	require.Nil(t, m.leases)
}
