package scope

import (
	"fmt"

	"github.com/launchdarkly/scope/framework"
)

// Run executes one test: the setups of every context from the root down to the test's own,
// then the test body, then the teardowns in reverse order. A context's teardown-once runs
// right after its teardown if this is the last test in its subtree.
//
// Failures in hooks or in the body do not stop the teardowns of contexts whose setup
// succeeded. A context whose setup failed is not torn down, but its ancestors are.
// rec, if not nil, receives the result exactly once; the same result is returned.
func (s *Suite) Run(name string, rec framework.Recorder) framework.TestResult {
	t := newT(s, name)
	if tc, ok := s.tests[name]; ok {
		t.context = tc.context
		s.runContext(t, tc, tc.context.Path())
	} else {
		t.errored = true
		t.addError(fmt.Errorf("%w: %q in suite %q", ErrUnknownTest, name, s.name))
	}
	t.phase = Completed

	result := t.result()
	s.loggers.Debugf("Test %q: %s", name, result.Outcome)
	if rec != nil {
		rec.Record(result)
	}
	return result
}

// runContext handles the first context of chain and recurses into the rest. A context whose
// own setup fails is not torn down; once its setup hooks succeed, its teardown is deferred so
// that it happens on every exit path.
func (s *Suite) runContext(t *T, tc *testCase, chain []*Context) {
	c := chain[0]

	t.phase = SetupChain
	if !t.runHook(c, SetupOnceHook, c.setupOnce.pending()) {
		return
	}
	if !t.runHook(c, SetupHook, c.setup) {
		return
	}
	defer s.teardownContext(t, c)

	if len(chain) > 1 {
		s.runContext(t, tc, chain[1:])
		return
	}
	t.phase = Body
	t.protect(func() { tc.body(t) })
}

func (s *Suite) teardownContext(t *T, c *Context) {
	t.phase = TeardownChain
	t.runHook(c, TeardownHook, c.teardown)
	if last, ok := c.LastTest(); ok && last == t.name {
		t.runHook(c, TeardownOnceHook, c.teardownOnce.pending())
	}
}
