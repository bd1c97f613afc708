package framework

import (
	"fmt"
	"strings"
)

// Outcome is the single recorded verdict for one test execution.
type Outcome int

const (
	// Passed means no hook or body reported a failure.
	Passed Outcome = iota
	// Failed means an assertion failed, in a hook or in the test body.
	Failed
	// Errored means something panicked unexpectedly, or the test could not be run at all.
	Errored
)

func (o Outcome) String() string {
	switch o {
	case Passed:
		return "PASSED"
	case Failed:
		return "FAILED"
	case Errored:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID      TestID
	Outcome     Outcome
	Errors      []error
	DebugOutput CapturedOutput
}

// Err returns the first failure encountered during the test, or nil if it passed.
func (r TestResult) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return r.Errors[0]
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

func (r *Results) add(result TestResult) {
	r.Tests = append(r.Tests, result)
	if result.Outcome != Passed {
		r.Failures = append(r.Failures, result)
	}
}

// TestID identifies a test by its suite name followed by its qualified test name.
type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// Name returns the last element of the path.
func (t TestID) Name() string {
	if len(t.Path) == 0 {
		return ""
	}
	return t.Path[len(t.Path)-1]
}

type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}

func (f TestFailure) Unwrap() error {
	return f.Err
}

// Errors returns every failure in the results, each tagged with its test ID.
func (r Results) Errors() []error {
	var ret []error
	for _, t := range r.Failures {
		for _, err := range t.Errors {
			ret = append(ret, TestFailure{ID: t.TestID, Err: err})
		}
	}
	return ret
}
