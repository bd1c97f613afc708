// Package scopetest runs scope suites under the standard "go test" runner.
//
// Each suite becomes a subtest, and each of its tests a nested subtest, run sequentially in
// the suite's order. Running only some of a suite's tests (for instance with -run) can stop
// a TeardownOnce hook from firing, since it waits for the last test in its context.
package scopetest

import (
	"testing"

	"github.com/launchdarkly/scope/framework"
	"github.com/launchdarkly/scope/scope"
)

// TestingT is the part of *testing.T used to report a single test's result.
type TestingT interface {
	Helper()
	Log(args ...interface{})
	Error(args ...interface{})
	Fail()
}

// Run runs every test of each suite as a nested subtest of t.
func Run(t *testing.T, suites ...*scope.Suite) {
	t.Helper()
	for _, s := range suites {
		s := s
		t.Run(s.Name(), func(t *testing.T) {
			for _, name := range s.Tests() {
				name := name
				t.Run(name, func(t *testing.T) {
					s.Run(name, Recorder(t))
				})
			}
		})
	}
}

// Recorder returns a framework.Recorder that reports a test result to t.
func Recorder(t TestingT) framework.Recorder {
	return framework.RecorderFunc(func(result framework.TestResult) {
		t.Helper()
		for _, line := range result.DebugOutput.Messages() {
			t.Log(line)
		}
		if result.Outcome == framework.Passed {
			return
		}
		for _, err := range result.Errors {
			t.Error(err)
		}
		t.Fail()
	})
}
