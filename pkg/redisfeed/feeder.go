package redisfeed

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vnykmshr/jobsys/pkg/common/errors"
)

// Handler processes one payload popped from the Redis list. It runs on
// a job system worker, so it may block without stalling the feed loop
// beyond the pool's capacity.
type Handler func(payload []byte)

// Submitter accepts labeled tasks. *jobsystem.System satisfies it.
type Submitter interface {
	SubmitLabeled(label string, fn func()) error
}

// Config holds feeder configuration.
type Config struct {
	// Redis is the client to consume from. Required.
	Redis redis.UniversalClient

	// Key is the Redis list to pop payloads from. Required.
	Key string

	// Handler is invoked once per payload. Required.
	Handler Handler

	// Label is attached to submitted tasks in telemetry builds.
	// Defaults to "redisfeed/<key>".
	Label string

	// PopTimeout bounds each blocking pop, and with it the feeder's
	// shutdown latency. Defaults to one second.
	PopTimeout time.Duration

	// OnError is called for Redis errors and for submissions refused by
	// a stopping job system. Nil means errors are dropped.
	OnError func(err error)
}

// Feeder pulls payloads from a Redis list and submits one task per
// payload to a job system. The pop loop runs on its own goroutine;
// payload processing runs on the pool's workers.
type Feeder struct {
	rdb        redis.UniversalClient
	sub        Submitter
	key        string
	label      string
	handler    Handler
	popTimeout time.Duration
	onError    func(error)

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// New creates a Feeder. It does not start consuming; call Start.
func New(sub Submitter, cfg Config) (*Feeder, error) {
	if cfg.Redis == nil || cfg.Key == "" || cfg.Handler == nil || sub == nil {
		return nil, errors.ErrInvalidConfiguration
	}

	label := cfg.Label
	if label == "" {
		label = "redisfeed/" + cfg.Key
	}

	popTimeout := cfg.PopTimeout
	if popTimeout <= 0 {
		popTimeout = time.Second
	}

	return &Feeder{
		rdb:        cfg.Redis,
		sub:        sub,
		key:        cfg.Key,
		label:      label,
		handler:    cfg.Handler,
		popTimeout: popTimeout,
		onError:    cfg.OnError,
	}, nil
}

// Start launches the pop loop. The loop stops when ctx is canceled,
// when Stop is called, or when the job system refuses a submission.
func (f *Feeder) Start(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.running {
		return errors.ErrAlreadyRunning
	}
	f.running = true

	ctx, f.cancel = context.WithCancel(ctx)
	f.done = make(chan struct{})
	go f.loop(ctx)
	return nil
}

// Stop halts the pop loop and waits for it to exit. Tasks already
// submitted keep draining through the job system.
func (f *Feeder) Stop() {
	f.mu.Lock()
	if !f.running {
		f.mu.Unlock()
		return
	}
	f.running = false
	cancel, done := f.cancel, f.done
	f.mu.Unlock()

	cancel()
	<-done
}

func (f *Feeder) loop(ctx context.Context) {
	defer close(f.done)

	for ctx.Err() == nil {
		res, err := f.rdb.BRPop(ctx, f.popTimeout, f.key).Result()
		if err != nil {
			if err == redis.Nil || ctx.Err() != nil {
				continue
			}
			f.reportError(err)
			// Back off briefly so a down Redis does not spin the loop.
			select {
			case <-time.After(250 * time.Millisecond):
			case <-ctx.Done():
			}
			continue
		}

		// BRPop returns [key, value].
		payload := []byte(res[1])
		if err := f.sub.SubmitLabeled(f.label, func() {
			f.handler(payload)
		}); err != nil {
			// The job system is stopping; there is nowhere left to feed.
			f.reportError(err)
			return
		}
	}
}

func (f *Feeder) reportError(err error) {
	if f.onError != nil {
		f.onError(err)
	}
}
