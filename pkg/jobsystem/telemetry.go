//go:build jobsys_telemetry

package jobsystem

import (
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
)

// Telemetry build: every accepted task is stamped with an id and an
// optional label, and each worker publishes what it is executing
// through lock-free atomic slots.

type taskMeta struct {
	id    uint64
	label string
}

type telemetry struct {
	nextTaskID atomic.Uint64
	workers    []workerTelemetry
}

type workerTelemetry struct {
	goroutineID atomic.Uint64
	running     atomic.Bool
	taskID      atomic.Uint64
	label       atomic.Pointer[string]
}

func (t *telemetry) init(workers int) {
	t.workers = make([]workerTelemetry, workers)
}

func (t *telemetry) release() {
	t.workers = nil
}

// stamp assigns the next task id. Ids start at 1 and never repeat
// within a System.
func (t *telemetry) stamp(item *taskItem, label string) {
	item.id = t.nextTaskID.Add(1)
	item.label = label
}

func (t *telemetry) workerStarted(index int) {
	if index < len(t.workers) {
		t.workers[index].goroutineID.Store(goroutineID())
	}
}

func (t *telemetry) taskStarted(index int, item taskItem) {
	if index < len(t.workers) {
		w := &t.workers[index]
		label := item.label
		w.taskID.Store(item.id)
		w.label.Store(&label)
		w.running.Store(true)
	}
}

func (t *telemetry) taskFinished(index int) {
	if index < len(t.workers) {
		w := &t.workers[index]
		w.running.Store(false)
		w.taskID.Store(0)
		w.label.Store(nil)
	}
}

// Diagnostics is a read-only snapshot of what the scheduler is doing.
// Worker fields are independent atomic loads: a snapshot may observe a
// task start without the matching stop.
type Diagnostics struct {
	Stats Stats

	Workers []WorkerState

	Queued []QueuedTask
}

// WorkerState describes one worker at snapshot time.
type WorkerState struct {
	Index       int
	GoroutineID uint64
	Running     bool
	TaskID      uint64
	Label       string
}

// QueuedTask identifies a task still waiting in the queue.
type QueuedTask struct {
	ID    uint64
	Label string
}

// Diagnostics returns stats plus per-worker and per-queued-task detail.
// Only available in builds with the jobsys_telemetry tag.
func (s *System) Diagnostics() Diagnostics {
	d := Diagnostics{Stats: s.Stats()}

	d.Workers = make([]WorkerState, len(s.tel.workers))
	for i := range s.tel.workers {
		w := &s.tel.workers[i]
		ws := WorkerState{
			Index:       i,
			GoroutineID: w.goroutineID.Load(),
			Running:     w.running.Load(),
			TaskID:      w.taskID.Load(),
		}
		if p := w.label.Load(); p != nil {
			ws.Label = *p
		}
		d.Workers[i] = ws
	}

	s.mu.Lock()
	d.Queued = make([]QueuedTask, len(s.queue))
	for i, item := range s.queue {
		d.Queued[i] = QueuedTask{ID: item.id, Label: item.label}
	}
	s.mu.Unlock()

	return d
}

// goroutineID extracts the current goroutine's runtime id from its
// stack header. Workers are goroutines, so this stands in for an OS
// thread id.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	header := strings.TrimPrefix(string(buf[:n]), "goroutine ")
	if i := strings.IndexByte(header, ' '); i > 0 {
		if id, err := strconv.ParseUint(header[:i], 10, 64); err == nil {
			return id
		}
	}
	return 0
}
