/*
Package jobsys provides an in-process job scheduler for Go applications:
a fixed pool of workers executing fire-and-forget tasks from a shared
FIFO queue, with deterministic shutdown and observable progress.

Core (pkg/jobsystem):
  - jobsystem: the scheduler itself — submission, draining, two stop
    modes, counters, and optional per-task telemetry

Surrounding packages:
  - periodic: cron and interval-based recurring submission
  - redisfeed: feed the scheduler from a Redis list
  - metrics: Prometheus collector over scheduler stats

Example usage:

	import "github.com/vnykmshr/jobsys/pkg/jobsystem"

	js := jobsystem.New(jobsystem.Config{Workers: 4})
	defer js.Close()

	js.Submit(func() {
		// background work
	})

	js.WaitIdle()
*/
package jobsys
