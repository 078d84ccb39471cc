package maintenance

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
)

// ReclaimArgs periodically reclaims expired leases.
type ReclaimArgs struct{}

func (ReclaimArgs) Kind() string { return "maintenance_reclaim" }

func (ReclaimArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: 30 * time.Second,
			ByQueue:  true,
		},
	}
}

// ReclaimWorker runs Maintenance.ReclaimExpired.
type ReclaimWorker struct {
	river.WorkerDefaults[ReclaimArgs]
	m *Maintenance
}

// NewReclaimWorker builds a ReclaimWorker.
func NewReclaimWorker(m *Maintenance) *ReclaimWorker {
	return &ReclaimWorker{m: m}
}

func (w *ReclaimWorker) Work(ctx context.Context, _ *river.Job[ReclaimArgs]) error {
	if w == nil || w.m == nil {
		return fmt.Errorf("reclaim worker is not initialized")
	}
	_, err := w.m.ReclaimExpired(ctx)
	return err
}

// DeadLetterArgs periodically dead-letters stale failures.
type DeadLetterArgs struct{}

func (DeadLetterArgs) Kind() string { return "maintenance_dead_letter" }

func (DeadLetterArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: 10 * time.Minute,
			ByQueue:  true,
		},
	}
}

// DeadLetterWorker runs Maintenance.DeadLetter.
type DeadLetterWorker struct {
	river.WorkerDefaults[DeadLetterArgs]
	m *Maintenance
}

// NewDeadLetterWorker builds a DeadLetterWorker.
func NewDeadLetterWorker(m *Maintenance) *DeadLetterWorker {
	return &DeadLetterWorker{m: m}
}

func (w *DeadLetterWorker) Work(ctx context.Context, _ *river.Job[DeadLetterArgs]) error {
	if w == nil || w.m == nil {
		return fmt.Errorf("dead-letter worker is not initialized")
	}
	_, err := w.m.DeadLetter(ctx)
	return err
}

// StaleArgs periodically reports stale non-terminal orders.
type StaleArgs struct{}

func (StaleArgs) Kind() string { return "maintenance_stale" }

func (StaleArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: time.Hour,
			ByQueue:  true,
		},
	}
}

// StaleWorker runs Maintenance.StaleOrders.
type StaleWorker struct {
	river.WorkerDefaults[StaleArgs]
	m *Maintenance
}

// NewStaleWorker builds a StaleWorker.
func NewStaleWorker(m *Maintenance) *StaleWorker {
	return &StaleWorker{m: m}
}

func (w *StaleWorker) Work(ctx context.Context, _ *river.Job[StaleArgs]) error {
	if w == nil || w.m == nil {
		return fmt.Errorf("stale worker is not initialized")
	}
	_, err := w.m.StaleOrders(ctx)
	return err
}
