// Package check reports violated invariants.
//
// A violation is never a recoverable condition: it means a sizing or usage
// contract was broken by the caller or by an allocator. The failure is handed
// to the installed hook (by default a structured log record) and then raised
// as a panic carrying a *Violation.
package check

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"sync/atomic"
)

// Violation describes a failed invariant and where it was detected.
type Violation struct {
	File string
	Line int
	Msg  string
}

func (v *Violation) Error() string {
	return filepath.Base(v.File) + ":" + strconv.Itoa(v.Line) + ": " + v.Msg
}

// Hook receives every violation before the panic is raised.
type Hook func(v *Violation)

var hook atomic.Pointer[Hook]

// SetHook installs h as the violation hook and returns the previous one.
// A nil h restores the default, which logs through slog.Default().
func SetHook(h Hook) Hook {
	var prev *Hook
	if h == nil {
		prev = hook.Swap(nil)
	} else {
		prev = hook.Swap(&h)
	}
	if prev == nil {
		return nil
	}
	return *prev
}

// That raises a violation with msg when cond is false.
func That(cond bool, msg string) {
	if !cond {
		fail(2, msg)
	}
}

// Failf raises a violation with a formatted message.
func Failf(format string, args ...any) {
	fail(2, fmt.Sprintf(format, args...))
}

func fail(skip int, msg string) {
	v := &Violation{Msg: msg}
	if _, file, line, ok := runtime.Caller(skip); ok {
		v.File, v.Line = file, line
	}
	if h := hook.Load(); h != nil {
		(*h)(v)
	} else {
		slog.Error("invariant violated", "file", v.File, "line", v.Line, "msg", v.Msg)
	}
	panic(v)
}
