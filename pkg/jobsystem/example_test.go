package jobsystem_test

import (
	"fmt"
	"sync/atomic"

	"github.com/vnykmshr/jobsys/pkg/jobsystem"
)

// Example demonstrates submitting work and waiting for it to finish.
func Example() {
	js := jobsystem.New(jobsystem.Config{Workers: 4})
	defer js.Close()

	var counter int64
	for i := 0; i < 10; i++ {
		js.Submit(func() {
			atomic.AddInt64(&counter, 1)
		})
	}

	js.WaitIdle()
	fmt.Println(atomic.LoadInt64(&counter))

	// Output:
	// 10
}

// Example_cancelPending demonstrates discarding queued work at shutdown.
func Example_cancelPending() {
	js := jobsystem.New(jobsystem.Config{Workers: 1})

	js.Submit(func() {})

	// Queued tasks are dropped; in-flight ones finish.
	js.Stop(jobsystem.CancelPending)

	err := js.Submit(func() {})
	fmt.Println(err)

	// Output:
	// scheduler is not accepting tasks
}

// Example_stats demonstrates reading scheduler counters.
func Example_stats() {
	js := jobsystem.New(jobsystem.Config{Workers: 2})
	defer js.Close()

	for i := 0; i < 5; i++ {
		js.Submit(func() {})
	}
	js.WaitIdle()

	stats := js.Stats()
	fmt.Printf("submitted=%d completed=%d queued=%d\n",
		stats.Submitted, stats.Completed, stats.Queued)

	// Output:
	// submitted=5 completed=5 queued=0
}
