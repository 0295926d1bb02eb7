// Package metrics exposes jobsys scheduler state to Prometheus.
//
// The package follows a snapshot model: a Collector wraps any
// StatsSource and converts its Stats() into const metrics at scrape
// time. Nothing is stored between scrapes and the scheduler's hot path
// is untouched.
//
// # Quick Start
//
//	js := jobsystem.New(jobsystem.Config{Workers: 8})
//	defer js.Close()
//
//	if _, err := metrics.Register(nil, "render", js); err != nil {
//		log.Fatal(err)
//	}
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Available Metrics
//
//   - jobsys_workers: size of the worker pool
//   - jobsys_queued_tasks: tasks waiting in the queue
//   - jobsys_in_flight_tasks: tasks currently executing
//   - jobsys_submitted_total: tasks accepted since construction
//   - jobsys_completed_total: tasks whose function returned
//
// All metrics carry a "system" label so multiple schedulers can share
// one registry.
//
// # Custom Registry
//
// Use a dedicated registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	metrics.Register(registry, "physics", js)
package metrics
