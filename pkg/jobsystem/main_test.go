package jobsystem

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain enables goroutine leak detection for all tests in this package.
// This catches workers that outlive Stop.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
