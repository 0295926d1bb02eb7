package jobsystem

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/vnykmshr/jobsys/pkg/common/errors"
)

// StopMode selects how Stop treats work that is still queued.
type StopMode uint8

const (
	// Drain executes all queued tasks before stopping.
	Drain StopMode = iota

	// CancelPending discards queued tasks and waits only for tasks that
	// are already executing.
	CancelPending
)

// Config holds construction options for a System.
type Config struct {
	// Workers is the number of worker goroutines. Zero means one worker
	// per CPU as reported by runtime.NumCPU, with a floor of one.
	Workers int
}

// Stats is a point-in-time snapshot of scheduler state. Queued is read
// under the queue lock; the remaining fields are independent atomic
// loads and are not guaranteed to be mutually consistent.
type Stats struct {
	// Workers is the size of the worker pool.
	Workers int

	// Queued is the number of tasks waiting in the queue.
	Queued uint64

	// InFlight is the number of tasks currently executing.
	InFlight uint64

	// Submitted is the total number of tasks ever accepted.
	Submitted uint64

	// Completed is the total number of tasks whose function returned,
	// normally or by panicking.
	Completed uint64
}

type taskItem struct {
	fn func()
	taskMeta
}

// System is a fixed pool of worker goroutines executing submitted tasks
// in FIFO order. All methods are safe for concurrent use.
//
// A System must be created with New. Once Stop (or Close) has been
// called the instance is inert: submissions are rejected and stats
// remain readable.
type System struct {
	workers int

	mu       sync.Mutex
	workCond sync.Cond // signalled on enqueue and on stop
	idleCond sync.Cond // broadcast on task completion and worker exit
	queue    []taskItem
	stopping bool // read and written under mu

	accepting atomic.Bool

	inFlight  atomic.Uint64
	submitted atomic.Uint64
	completed atomic.Uint64

	wg  sync.WaitGroup
	tel telemetry
}

// New creates a System whose workers are already running and waiting
// for work.
func New(cfg Config) *System {
	n := cfg.Workers
	if n <= 0 {
		n = runtime.NumCPU()
		if n <= 0 {
			n = 1
		}
	}

	s := &System{workers: n}
	s.workCond.L = &s.mu
	s.idleCond.L = &s.mu
	s.accepting.Store(true)
	s.tel.init(n)

	s.wg.Add(n)
	for i := 0; i < n; i++ {
		go s.workerLoop(i)
	}
	return s
}

// Submit enqueues fn for execution on a worker. A nil return means the
// task was accepted and will run. It returns errors.ErrNilTask when fn
// is nil and errors.ErrNotAccepting once Stop has begun.
//
// Submit may be called from inside a running task; WaitIdle and Stop
// may not (they would deadlock).
func (s *System) Submit(fn func()) error {
	return s.SubmitLabeled("", fn)
}

// SubmitLabeled is Submit with a diagnostic label. The label and a
// monotonically increasing task id are retained only when the scheduler
// is built with the jobsys_telemetry tag; otherwise the label is
// ignored.
func (s *System) SubmitLabeled(label string, fn func()) error {
	if fn == nil {
		return errors.ErrNilTask
	}
	if !s.accepting.Load() {
		return errors.ErrNotAccepting
	}

	item := taskItem{fn: fn}
	s.tel.stamp(&item, label)

	s.mu.Lock()
	// Re-check under the lock: a submission that raced past the atomic
	// check must not land after Stop(CancelPending) cleared the queue.
	if !s.accepting.Load() {
		s.mu.Unlock()
		return errors.ErrNotAccepting
	}
	s.queue = append(s.queue, item)
	s.submitted.Add(1)
	s.mu.Unlock()

	s.workCond.Signal()
	return nil
}

// WaitIdle blocks until the queue is empty and no task is executing.
// It does not stop new submissions from extending the busy period; it
// observes one instantaneous idle point.
func (s *System) WaitIdle() {
	s.mu.Lock()
	for len(s.queue) != 0 || s.inFlight.Load() != 0 {
		s.idleCond.Wait()
	}
	s.mu.Unlock()
}

// Stop shuts the scheduler down. The first caller performs the
// shutdown; later calls return immediately. With Drain every queued
// task still runs; with CancelPending queued tasks are discarded and
// only in-flight ones are waited for. In both modes all workers have
// exited when Stop returns.
func (s *System) Stop(mode StopMode) {
	if !s.accepting.CompareAndSwap(true, false) {
		return // already stopping or stopped
	}

	s.mu.Lock()
	if mode == CancelPending {
		// Discarded tasks never count as completed.
		s.queue = nil
	}
	s.stopping = true
	s.mu.Unlock()

	s.workCond.Broadcast()

	if mode == Drain {
		s.WaitIdle()
	} else {
		s.mu.Lock()
		for s.inFlight.Load() != 0 {
			s.idleCond.Wait()
		}
		s.mu.Unlock()
	}

	s.wg.Wait()
	s.tel.release()
}

// Close runs Stop(Drain) and returns nil. It satisfies io.Closer so a
// System can be released with defer. Note that a submitted task that
// never returns blocks Close (and Stop(Drain)) forever; the caller owns
// task correctness.
func (s *System) Close() error {
	s.Stop(Drain)
	return nil
}

// Stats returns a snapshot of the scheduler counters.
func (s *System) Stats() Stats {
	st := Stats{
		Workers:   s.workers,
		InFlight:  s.inFlight.Load(),
		Submitted: s.submitted.Load(),
		Completed: s.completed.Load(),
	}

	s.mu.Lock()
	st.Queued = uint64(len(s.queue))
	s.mu.Unlock()

	return st
}
