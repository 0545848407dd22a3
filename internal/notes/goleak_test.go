package notes

import (
	"testing"

	"go.uber.org/goleak"
)

// TestPackageLeaks verifies no test in this package leaks goroutines.
func TestPackageLeaks(t *testing.T) {
	defer goleak.VerifyNone(t)
}
