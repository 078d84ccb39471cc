package maintenance

import (
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
)

// RegisterWorkers adds the three maintenance workers to a River
// worker bundle, for the app module that builds the shared
// river.Client (mirrors internal/app/bootstrap.go's per-module
// RegisterWorkers convention).
func RegisterWorkers(workers *river.Workers, m *Maintenance) error {
	if err := river.AddWorkerSafely(workers, NewReclaimWorker(m)); err != nil {
		return err
	}
	if err := river.AddWorkerSafely(workers, NewDeadLetterWorker(m)); err != nil {
		return err
	}
	return river.AddWorkerSafely(workers, NewStaleWorker(m))
}

// RegisterPeriodicJobs schedules the three periodic jobs against a
// live river.Client via PeriodicJobs().Add(river.NewPeriodicJob(...));
// internal/app/bootstrap.go calls it once River is initialized.
func RegisterPeriodicJobs(client *river.Client[pgx.Tx]) {
	client.PeriodicJobs().Add(
		river.NewPeriodicJob(
			river.PeriodicInterval(30*time.Second),
			func() (river.JobArgs, *river.InsertOpts) {
				return ReclaimArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	)
	client.PeriodicJobs().Add(
		river.NewPeriodicJob(
			river.PeriodicInterval(10*time.Minute),
			func() (river.JobArgs, *river.InsertOpts) {
				return DeadLetterArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	)
	client.PeriodicJobs().Add(
		river.NewPeriodicJob(
			river.PeriodicInterval(time.Hour),
			func() (river.JobArgs, *river.InsertOpts) {
				return StaleArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	)
}
