package engine

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"time"

	"snow/internal/domain"
)

// Config configures an Engine
type Config struct {
	Log       *slog.Logger
	Listeners []Listener
}

// Engine walks a declared tree and runs its cases one at a time.
type Engine struct {
	log       *slog.Logger
	listeners listeners
	now       func() time.Time
}

// New creates a new Engine
func New(cfg Config) *Engine {
	log := cfg.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{
		log:       log,
		listeners: cfg.Listeners,
		now:       time.Now,
	}
}

// run is the state of a single Run call
type run struct {
	*Engine
	report *domain.Report
	path   []string
	active *DeferStack
}

// Run executes every case under roots in declaration order and returns the
// aggregated report. A failing case never stops the run.
func (e *Engine) Run(roots []*Node) *domain.Report {
	r := &run{
		Engine: e,
		report: &domain.Report{Started: e.now()},
	}
	e.log.Debug("Starting run", "groups", len(roots), "cases", CountCases(roots))
	for _, root := range roots {
		r.visit(root, 0)
	}
	r.report.Duration = e.now().Sub(r.report.Started)
	e.log.Debug("Run finished", "passed", r.report.Passed, "total", r.report.Total)
	return r.report
}

func (r *run) visit(n *Node, depth int) {
	if n.Kind == KindCase {
		r.runCase(n, depth)
		return
	}

	before := r.report.Summary
	r.log.Debug("Entering group", "group", n.Name, "depth", depth)
	r.listeners.groupEntered(n, depth)
	r.path = append(r.path, n.Name)
	for _, child := range n.Children {
		r.visit(child, depth+1)
	}
	r.path = r.path[:len(r.path)-1]

	stats := domain.Summary{
		Passed: r.report.Passed - before.Passed,
		Total:  r.report.Total - before.Total,
	}
	r.log.Debug("Leaving group", "group", n.Name, "passed", stats.Passed, "total", stats.Total)
	r.listeners.groupExited(n, depth, stats)
}

func (r *run) runCase(n *Node, depth int) {
	t := newT(n.Name, r.log.With("case", n.Name))
	r.active = t.defers
	r.listeners.caseStarted(n, depth)
	start := r.now()

	r.execute(t, n.body)
	r.active.Drain(func(action func()) {
		r.runDeferred(t, action)
	})

	result := domain.Result{
		Status:  domain.StatusPassed,
		Elapsed: r.now().Sub(start),
	}
	if t.failed {
		result.Status = domain.StatusFailed
		result.Message = t.message
	}
	r.active = nil

	r.report.Summary.Record(result)
	r.report.Cases = append(r.report.Cases, domain.CaseRecord{
		Path:   append([]string(nil), r.path...),
		Name:   n.Name,
		Result: result,
	})
	r.log.Debug("Case finished", "case", n.Name, "status", result.Status, "elapsed", result.Elapsed)
	r.listeners.caseFinished(n, depth, result)
}

// execute runs a case body. A failure signal unwinds to here and nowhere
// further.
func (r *run) execute(t *T, body func(t *T)) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		if f, ok := v.(caseFailure); ok {
			r.checkOrigin(t, f)
			return
		}
		r.log.Debug("Case panicked", "case", t.name, "panic", v, "stack", string(debug.Stack()))
		t.record(fmt.Sprintf("panic: %v", v))
	}()

	if body == nil {
		t.FailNow("case has no body")
	}
	body(t)
}

// runDeferred invokes a cleanup action. A failure signal from the action
// marks the case failed; other panics are the action's own and propagate.
func (r *run) runDeferred(t *T, action func()) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		if f, ok := v.(caseFailure); ok {
			r.checkOrigin(t, f)
			return
		}
		panic(v)
	}()
	action()
}

// checkOrigin fails t when f was raised through the handle of another case,
// which has already finished and can't be failed anymore.
func (r *run) checkOrigin(t *T, f caseFailure) {
	if f.t == t {
		return
	}
	name := "<unknown>"
	if f.t != nil {
		name = f.t.name
	}
	r.log.Warn("Failure signalled by a finished case", "case", t.name, "finished", name)
	t.record(fmt.Sprintf("failure signalled by finished case %q", name))
}
