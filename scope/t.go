package scope

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/launchdarkly/scope/framework"
)

// Phase is the stage a test execution has reached.
type Phase int

const (
	NotStarted Phase = iota
	SetupChain
	Body
	TeardownChain
	Completed
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not started"
	case SetupChain:
		return "setup"
	case Body:
		return "body"
	case TeardownChain:
		return "teardown"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// T is passed to every hook and test body during one test execution. It plays the same role
// as *testing.T: assertions from testify's assert and require packages can be given a *T.
//
// Errorf marks the test as failed and lets the current step continue. FailNow marks it as
// failed and ends the current step; teardown hooks still run afterward. Any other panic ends
// the step too, and the test is reported as errored rather than failed.
type T struct {
	suite       *Suite
	name        string
	context     *Context
	phase       Phase
	hook        *hookFrame
	failed      bool
	errored     bool
	errors      []error
	debugLogger framework.CapturingLogger
}

type hookFrame struct {
	context *Context
	kind    HookKind
}

// failNow is the panic value used by FailNow; protect recognizes it as an ordinary failure.
type failNow struct {
	t *T
}

var errNoFailureMessage = errors.New("test failed with no failure message")

func newT(s *Suite, name string) *T {
	return &T{suite: s, name: name}
}

// Name returns the qualified name of the running test.
func (t *T) Name() string { return t.name }

// Context returns the context the running test was declared in.
func (t *T) Context() *Context { return t.context }

func (t *T) Phase() Phase { return t.phase }

func (t *T) Failed() bool { return t.failed || t.errored }

func (t *T) Helper() {}

func (t *T) Fail() {
	t.failed = true
}

func (t *T) Errorf(format string, args ...interface{}) {
	t.failed = true
	t.addError(fmt.Errorf(format, args...))
}

func (t *T) FailNow() {
	t.failed = true
	panic(failNow{t})
}

func (t *T) Fatalf(format string, args ...interface{}) {
	t.Errorf(format, args...)
	t.FailNow()
}

// Debug adds a line to the test's captured output, which is attached to its result.
func (t *T) Debug(format string, args ...interface{}) {
	t.debugLogger.Printf(format, args...)
}

func (t *T) DebugLogger() framework.Logger {
	return &t.debugLogger
}

func (t *T) addError(err error) {
	if t.hook != nil {
		err = &HookError{Context: t.hook.context.FullName(), Kind: t.hook.kind, Err: err}
	}
	if len(t.errors) > 0 && t.phase == TeardownChain {
		t.suite.loggers.Warnf("Test %q: another failure during teardown: %s", t.name, err)
	}
	t.errors = append(t.errors, err)
}

// protect runs one step and reports whether it completed. A FailNow or panic inside the step
// is recovered here, so that the caller can carry on with teardown.
func (t *T) protect(step func()) (completed bool) {
	errorCount := len(t.errors)
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		completed = false
		if f, ok := r.(failNow); ok && f.t == t {
			if len(t.errors) == errorCount {
				t.addError(errNoFailureMessage)
			}
			return
		}
		t.errored = true
		stack := debug.Stack()
		t.addError(&PanicError{Value: r, Stack: stack})
		t.Debug("panic stack:\n%s", stack)
	}()
	step()
	return true
}

// runHook runs one of a context's hooks, if present, and reports whether the test can go on.
func (t *T) runHook(c *Context, kind HookKind, hook Hook) bool {
	if hook == nil {
		return true
	}
	t.suite.loggers.Debugf("Test %q: running %s of context %q", t.name, kind, c.FullName())
	t.hook = &hookFrame{context: c, kind: kind}
	defer func() { t.hook = nil }()
	return t.protect(func() { hook(t) })
}

func (t *T) result() framework.TestResult {
	outcome := framework.Passed
	switch {
	case t.errored:
		outcome = framework.Errored
	case t.failed:
		outcome = framework.Failed
	}
	return framework.TestResult{
		TestID:      framework.TestID{Path: []string{t.suite.name, t.name}},
		Outcome:     outcome,
		Errors:      t.errors,
		DebugOutput: t.debugLogger.Output(),
	}
}
