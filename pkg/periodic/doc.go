// Package periodic schedules recurring submissions into a job system.
//
// A Scheduler binds cron expressions and fixed intervals to labeled
// tasks. On every tick it submits the task to the configured Submitter
// — typically a *jobsystem.System — so recurring work shares the same
// worker pool, counters, and shutdown path as ad-hoc work.
//
// Basic usage:
//
//	js := jobsystem.New(jobsystem.Config{Workers: 4})
//	defer js.Close()
//
//	sched := periodic.New(js)
//	sched.AddEvery("autosave", 30*time.Second, "io/autosave", saveWorld)
//	sched.AddCron("nightly-compact", "0 3 * * *", "db/compact", compact)
//	sched.Start()
//	defer sched.Stop()
//
// Ticks that arrive while the job system is stopping are rejected by
// Submit; set Config.OnReject to observe them. Shut down the Scheduler
// before the job system to avoid those rejections entirely.
package periodic
