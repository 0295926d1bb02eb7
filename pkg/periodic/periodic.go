package periodic

import (
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/vnykmshr/jobsys/pkg/common/errors"
)

// Submitter accepts labeled tasks for background execution.
// *jobsystem.System satisfies it.
type Submitter interface {
	SubmitLabeled(label string, fn func()) error
}

// Config holds scheduler configuration.
type Config struct {
	// Location is the timezone for cron expression evaluation.
	// Nil means time.Local.
	Location *time.Location

	// OnReject is called when a tick's submission is refused, typically
	// because the job system is stopping. Nil means rejected ticks are
	// dropped silently.
	OnReject func(id string, err error)
}

type entry struct {
	id     string
	cronID cron.EntryID
}

// Scheduler turns cron expressions and fixed intervals into recurring
// submissions against a Submitter. Each tick submits one task; the
// heavy lifting happens on the job system's workers, never on the
// scheduler's timer goroutine.
type Scheduler struct {
	sub      Submitter
	onReject func(string, error)
	parser   cron.Parser

	mu      sync.Mutex
	cron    *cron.Cron
	entries map[string]entry
	running bool
}

// New creates a Scheduler with default configuration.
func New(sub Submitter) *Scheduler {
	return NewWithConfig(sub, Config{})
}

// NewWithConfig creates a Scheduler with custom configuration.
func NewWithConfig(sub Submitter, cfg Config) *Scheduler {
	location := cfg.Location
	if location == nil {
		location = time.Local
	}

	return &Scheduler{
		sub:      sub,
		onReject: cfg.OnReject,
		parser: cron.NewParser(
			cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
		),
		cron:    cron.New(cron.WithLocation(location)),
		entries: make(map[string]entry),
	}
}

// AddCron schedules fn on a standard five-field cron expression
// ("30 14 * * 1-5") or a descriptor ("@hourly"). The id must be unique
// within the Scheduler.
func (s *Scheduler) AddCron(id, expr, label string, fn func()) error {
	schedule, err := s.parser.Parse(expr)
	if err != nil {
		return err
	}
	return s.add(id, schedule, label, fn)
}

// AddEvery schedules fn at a fixed interval. Intervals below one second
// are rounded up to one second by the cron runner.
func (s *Scheduler) AddEvery(id string, interval time.Duration, label string, fn func()) error {
	if interval <= 0 {
		return errors.ErrInvalidConfiguration
	}
	return s.add(id, cron.Every(interval), label, fn)
}

func (s *Scheduler) add(id string, schedule cron.Schedule, label string, fn func()) error {
	if fn == nil {
		return errors.ErrNilTask
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[id]; exists {
		return errors.ErrDuplicateEntry
	}

	cronID := s.cron.Schedule(schedule, cron.FuncJob(func() {
		if err := s.sub.SubmitLabeled(label, fn); err != nil && s.onReject != nil {
			s.onReject(id, err)
		}
	}))
	s.entries[id] = entry{id: id, cronID: cronID}
	return nil
}

// Remove cancels the entry with the given id. It reports whether an
// entry was removed.
func (s *Scheduler) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, exists := s.entries[id]
	if !exists {
		return false
	}
	s.cron.Remove(e.cronID)
	delete(s.entries, id)
	return true
}

// Entries returns the ids of all scheduled entries, sorted.
func (s *Scheduler) Entries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Start begins firing ticks. Entries may be added before or after
// Start.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return errors.ErrAlreadyRunning
	}
	s.running = true
	s.cron.Start()
	return nil
}

// Stop halts tick firing and waits for any in-progress tick dispatch to
// finish. Tasks already handed to the Submitter are unaffected; they
// drain through the job system's own Stop. Stop does not remove
// entries, so Start can resume the schedule.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	ctx := s.cron.Stop()
	s.mu.Unlock()

	<-ctx.Done()
}
