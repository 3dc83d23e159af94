package soa

import (
	"testing"

	"github.com/pavanmanishd/vexmem/internal/check"
)

// quietViolations silences the violation log for the duration of the test.
func quietViolations(t *testing.T) {
	t.Helper()
	prev := check.SetHook(func(*check.Violation) {})
	t.Cleanup(func() { check.SetHook(prev) })
}
