// Package redisfeed feeds a job system from a Redis list.
//
// A Feeder blocks on BRPOP against a configured list key and submits
// one labeled task per payload, turning a Redis list into a work source
// for the in-process scheduler. Producers anywhere push payloads with
// LPUSH; the pool's workers process them.
//
// Basic usage:
//
//	rdb := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	js := jobsystem.New(jobsystem.Config{Workers: 8})
//	defer js.Close()
//
//	feeder, err := redisfeed.New(js, redisfeed.Config{
//		Redis:   rdb,
//		Key:     "jobs",
//		Handler: func(payload []byte) { process(payload) },
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	feeder.Start(context.Background())
//	defer feeder.Stop()
//
// Shut the Feeder down before the job system: a feeder whose
// submission is refused reports the error and exits its loop.
package redisfeed
