package framework

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSuite records the given number of results for each test, with the outcome taken from
// outcomes (Passed if absent).
type fakeSuite struct {
	name     string
	tests    []string
	outcomes map[string]Outcome
	records  int
	ran      []string
}

func (s *fakeSuite) Name() string    { return s.name }
func (s *fakeSuite) Tests() []string { return s.tests }

func (s *fakeSuite) Run(name string, rec Recorder) TestResult {
	s.ran = append(s.ran, name)
	result := TestResult{TestID: TestID{Path: []string{s.name, name}}, Outcome: s.outcomes[name]}
	if result.Outcome != Passed {
		result.Errors = []error{errors.New(name + " broke")}
	}
	for i := 0; i < s.records; i++ {
		rec.Record(result)
	}
	return result
}

type loggedEvent struct {
	kind string
	id   string
	text string
}

type fakeTestLogger struct {
	events []loggedEvent
}

func (l *fakeTestLogger) TestStarted(id TestID) {
	l.events = append(l.events, loggedEvent{"started", id.String(), ""})
}

func (l *fakeTestLogger) TestError(id TestID, err error) {
	l.events = append(l.events, loggedEvent{"error", id.String(), err.Error()})
}

func (l *fakeTestLogger) TestFinished(id TestID, outcome Outcome, _ CapturedOutput) {
	l.events = append(l.events, loggedEvent{"finished", id.String(), outcome.String()})
}

func TestRunDrivesTestsInSuiteOrder(t *testing.T) {
	s1 := &fakeSuite{name: "one", tests: []string{"b", "a"}, records: 1}
	s2 := &fakeSuite{name: "two", tests: []string{"c"}, records: 1, outcomes: map[string]Outcome{"c": Failed}}
	logger := &fakeTestLogger{}

	results := Run(logger, s1, s2)

	assert.Equal(t, []string{"b", "a"}, s1.ran)
	assert.Equal(t, []string{"c"}, s2.ran)
	require.Len(t, results.Tests, 3)
	require.Len(t, results.Failures, 1)
	assert.False(t, results.OK())
	assert.Equal(t, "two/c", results.Failures[0].TestID.String())
	assert.Equal(t, []loggedEvent{
		{"started", "one/b", ""},
		{"finished", "one/b", "PASSED"},
		{"started", "one/a", ""},
		{"finished", "one/a", "PASSED"},
		{"started", "two/c", ""},
		{"error", "two/c", "c broke"},
		{"finished", "two/c", "FAILED"},
	}, logger.events)
}

func TestRunReportsTestThatRecordedNothing(t *testing.T) {
	s := &fakeSuite{name: "s", tests: []string{"a"}, records: 0}

	results := Run(nil, s)

	require.Len(t, results.Failures, 1)
	assert.Equal(t, Errored, results.Failures[0].Outcome)
	assert.Equal(t, errNotRecorded, results.Failures[0].Err())
}

func TestRunKeepsOnlyFirstOfSeveralResults(t *testing.T) {
	s := &fakeSuite{name: "s", tests: []string{"a"}, records: 3}
	logger := &fakeTestLogger{}

	results := Run(logger, s)

	assert.Len(t, results.Tests, 1)
	assert.True(t, results.OK())
	assert.Contains(t, logger.events, loggedEvent{"error", "s/a", "test recorded 3 results instead of one"})
}

func TestResultsErrorsAreTaggedWithTestID(t *testing.T) {
	s := &fakeSuite{name: "s", tests: []string{"a"}, records: 1, outcomes: map[string]Outcome{"a": Errored}}

	errs := Run(nil, s).Errors()

	require.Len(t, errs, 1)
	assert.EqualError(t, errs[0], "[s/a]: a broke")
	var failure TestFailure
	require.True(t, errors.As(errs[0], &failure))
	assert.Equal(t, "a", failure.ID.Name())
}

func TestPassedResultHasNoErr(t *testing.T) {
	assert.NoError(t, TestResult{}.Err())
	assert.Equal(t, "", TestID{}.Name())
}
