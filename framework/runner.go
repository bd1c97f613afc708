package framework

import (
	"fmt"
)

// Suite is what a host needs from a suite of tests: a name, the ordered list of test names
// it declares, and a way to run one of them.
type Suite interface {
	Name() string
	Tests() []string
	Run(name string, rec Recorder) TestResult
}

type environment struct {
	results    Results
	testLogger TestLogger
}

// Run drives every test of every suite, one at a time and in the order each suite reports
// them, and collects one result per test.
func Run(testLogger TestLogger, suites ...Suite) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{testLogger: testLogger}
	for _, s := range suites {
		for _, name := range s.Tests() {
			env.runTest(s, name)
		}
	}
	return env.results
}

func (env *environment) runTest(s Suite, name string) {
	id := TestID{Path: []string{s.Name(), name}}
	env.testLogger.TestStarted(id)

	rec := &onceRecorder{target: RecorderFunc(env.record)}
	s.Run(name, rec)

	switch n := rec.timesRecorded(); {
	case n == 0:
		env.record(TestResult{TestID: id, Outcome: Errored, Errors: []error{errNotRecorded}})
	case n > 1:
		// The first result already went through; the extra ones are a bug in the suite.
		err := fmt.Errorf("test recorded %d results instead of one", n)
		env.testLogger.TestError(id, err)
	}
}

func (env *environment) record(result TestResult) {
	for _, err := range result.Errors {
		env.testLogger.TestError(result.TestID, err)
	}
	env.results.add(result)
	env.testLogger.TestFinished(result.TestID, result.Outcome, result.DebugOutput)
}
