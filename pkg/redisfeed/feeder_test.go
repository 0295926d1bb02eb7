package redisfeed

import (
	"context"
	stderrors "errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vnykmshr/jobsys/internal/testutil"
	"github.com/vnykmshr/jobsys/pkg/common/errors"
)

type nopSubmitter struct{}

func (nopSubmitter) SubmitLabeled(string, func()) error { return nil }

func TestNewValidation(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	defer rdb.Close()

	tests := []struct {
		name string
		sub  Submitter
		cfg  Config
	}{
		{"nil redis", nopSubmitter{}, Config{Key: "jobs", Handler: func([]byte) {}}},
		{"empty key", nopSubmitter{}, Config{Redis: rdb, Handler: func([]byte) {}}},
		{"nil handler", nopSubmitter{}, Config{Redis: rdb, Key: "jobs"}},
		{"nil submitter", nil, Config{Redis: rdb, Key: "jobs", Handler: func([]byte) {}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.sub, tt.cfg)
			if !stderrors.Is(err, errors.ErrInvalidConfiguration) {
				t.Fatalf("got %v, want ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	defer rdb.Close()

	f, err := New(nopSubmitter{}, Config{Redis: rdb, Key: "jobs", Handler: func([]byte) {}})
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, f.label, "redisfeed/jobs")
	testutil.AssertEqual(t, f.popTimeout, time.Second)
}

func TestStartStop(t *testing.T) {
	// A client pointed at a closed port makes BRPop fail fast; the loop
	// must report the error, back off, and still stop cleanly.
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer rdb.Close()

	var errs int64
	f, err := New(nopSubmitter{}, Config{
		Redis:   rdb,
		Key:     "jobs",
		Handler: func([]byte) {},
		OnError: func(error) { atomic.AddInt64(&errs, 1) },
	})
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, f.Start(context.Background()))
	if err := f.Start(context.Background()); !stderrors.Is(err, errors.ErrAlreadyRunning) {
		t.Fatalf("got %v, want ErrAlreadyRunning", err)
	}

	testutil.Eventually(t, testutil.TestTimeout, func() bool {
		return atomic.LoadInt64(&errs) > 0
	}, "connection error never reported")

	f.Stop()
	f.Stop() // second Stop is a no-op
}
