package engine

import (
	"fmt"
	"log/slog"
)

// caseFailure is the value a failing case panics with. It is recovered only
// at the case boundary in the engine.
type caseFailure struct {
	t       *T
	message string
}

// T is the handle a case body receives. Its methods must be called from the
// goroutine running the case.
type T struct {
	name    string
	defers  *DeferStack
	log     *slog.Logger
	failed  bool
	message string
}

func newT(name string, log *slog.Logger) *T {
	return &T{
		name:   name,
		defers: &DeferStack{},
		log:    log,
	}
}

// Name returns the case name
func (t *T) Name() string {
	return t.name
}

// Failed reports whether a failure has been signalled
func (t *T) Failed() bool {
	return t.failed
}

// Defer schedules action to run when the case finishes, whether it passes or
// fails. Actions run in reverse registration order.
func (t *T) Defer(action func()) {
	if action == nil {
		t.log.Warn("Defer ignored: nil action", "case", t.name)
		return
	}
	if !t.defers.Push(action) {
		t.log.Warn("Defer ignored outside a running case", "case", t.name)
	}
}

// Fail marks the case failed and stops executing its body. Only registered
// defers run after this.
func (t *T) Fail(format string, args ...any) {
	t.FailNow(fmt.Sprintf(format, args...))
}

// FailNow is Fail with an already rendered message.
func (t *T) FailNow(message string) {
	t.record(message)
	panic(caseFailure{t: t, message: message})
}

// Assert fails the case when cond is false
func (t *T) Assert(cond bool, format string, args ...any) {
	if !cond {
		t.Fail(format, args...)
	}
}

// record keeps the first failure message
func (t *T) record(message string) {
	if t.failed {
		return
	}
	t.failed = true
	t.message = message
}
