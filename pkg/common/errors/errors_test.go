package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestCommonErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrNilTask", ErrNilTask, "task is nil"},
		{"ErrNotAccepting", ErrNotAccepting, "scheduler is not accepting tasks"},
		{"ErrAlreadyRunning", ErrAlreadyRunning, "already running"},
		{"ErrDuplicateEntry", ErrDuplicateEntry, "duplicate entry id"},
		{"ErrInvalidConfiguration", ErrInvalidConfiguration, "invalid configuration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("error should not be nil")
			}
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsRejection(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil task", ErrNilTask, true},
		{"not accepting", ErrNotAccepting, true},
		{"wrapped rejection", fmt.Errorf("submit: %w", ErrNotAccepting), true},
		{"already running", ErrAlreadyRunning, false},
		{"unrelated", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRejection(tt.err); got != tt.want {
				t.Errorf("IsRejection(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
