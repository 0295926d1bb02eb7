/*
Package jobsystem provides a fixed-size pool of workers executing
fire-and-forget tasks from a shared FIFO queue.

The scheduler targets host applications — a game loop, a simulation, a
service — that need a low-overhead way to push independent units of work
onto background workers, observe their progress, and shut the pool down
deterministically.

Basic usage:

	js := jobsystem.New(jobsystem.Config{Workers: 4})
	defer js.Close()

	if err := js.Submit(func() { doWork() }); err != nil {
		log.Printf("rejected: %v", err)
	}

	js.WaitIdle()

# Tasks

A task is an opaque func(). Tasks carry no result value: anything the
caller wants back must travel through the closure. A panic escaping a
task is recovered at the worker frame and discarded; the worker keeps
running and the task still counts as completed. Callers that need error
visibility wrap their own functions.

# Ordering and counters

Dequeue order is FIFO: tasks submitted from one goroutine execute in
submission order relative to each other. Stats exposes four counters —
submitted, completed, in-flight, queued — and while the queue lock is
held, submitted == completed + inFlight + queued, except that tasks
discarded by Stop(CancelPending) stay counted in submitted.

When WaitIdle returns and the caller sees completed == submitted, the
side effects of every submitted task are visible: a completion is
published before the counter increment that covers it.

# Shutdown

Stop is idempotent and comes in two modes. Drain runs every queued task
before stopping; CancelPending discards the queue and waits only for
in-flight tasks. After Stop returns, Submit fails forever and stats
remain readable. Close is Stop(Drain) behind io.Closer.

There are no timeouts: a submitted task that never returns blocks
Stop(Drain) — and therefore Close — forever. The caller owns task
correctness.

WaitIdle and Stop must not be called from inside a task; doing so
deadlocks. Submit from inside a task is fine.

# Telemetry

Building with -tags jobsys_telemetry stamps each task with a 64-bit id
(starting at 1) plus the optional SubmitLabeled label, and adds the
Diagnostics snapshot: per-worker running task id/label and the ids of
everything still queued. The default build assigns no ids, stores no
labels, and omits Diagnostics entirely.
*/
package jobsystem
