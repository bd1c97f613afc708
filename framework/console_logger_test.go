package framework

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func withoutColor(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = saved })
}

func capturedOutput(messages ...string) CapturedOutput {
	var l CapturingLogger
	for _, m := range messages {
		l.Printf("%s", m)
	}
	return l.Output()
}

func TestConsoleTestLoggerPassed(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer
	logger := &ConsoleTestLogger{Output: &buf}
	id := TestID{Path: []string{"suite", "a"}}

	logger.TestStarted(id)
	logger.TestFinished(id, Passed, capturedOutput("hidden"))

	assert.Equal(t, "[suite/a]\n  PASSED\n", buf.String())
}

func TestConsoleTestLoggerFailedWithDebugOutput(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer
	logger := &ConsoleTestLogger{Output: &buf, DebugOutputOnFailure: true}
	id := TestID{Path: []string{"suite", "a"}}

	logger.TestError(id, errors.New("first line\nsecond line"))
	logger.TestFinished(id, Failed, capturedOutput("ran setup"))

	out := buf.String()
	assert.Contains(t, out, "  first line\n  second line\n")
	assert.Contains(t, out, "  FAILED: suite/a\n")
	assert.Contains(t, out, "    DEBUG [")
	assert.Contains(t, out, "] ran setup\n")
}

func TestConsoleTestLoggerShowsSuccessDebugOutputOnlyWhenAsked(t *testing.T) {
	withoutColor(t)
	id := TestID{Path: []string{"suite", "a"}}

	var quiet, verbose bytes.Buffer
	(&ConsoleTestLogger{Output: &quiet, DebugOutputOnFailure: true}).TestFinished(id, Passed, capturedOutput("x"))
	(&ConsoleTestLogger{Output: &verbose, DebugOutputOnSuccess: true}).TestFinished(id, Passed, capturedOutput("x"))

	assert.NotContains(t, quiet.String(), "DEBUG")
	assert.Contains(t, verbose.String(), "DEBUG")
}

func TestConsoleTestLoggerErrored(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer

	(&ConsoleTestLogger{Output: &buf}).TestFinished(TestID{Path: []string{"s", "b"}}, Errored, nil)

	assert.Equal(t, "  ERROR: s/b\n", buf.String())
}

func TestCapturedOutputMessages(t *testing.T) {
	assert.Equal(t, []string{"a 1", "b"}, capturedOutput("a 1", "b").Messages())
	assert.Empty(t, CapturedOutput(nil).Messages())
}
