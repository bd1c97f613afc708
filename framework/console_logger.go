package framework

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	passedColor  = color.New(color.FgGreen)
	failedColor  = color.New(color.FgRed, color.Bold)
	erroredColor = color.New(color.FgMagenta, color.Bold)
)

// ConsoleTestLogger writes one line per test, plus error details and optionally the test's
// captured debug output.
type ConsoleTestLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
	// Output defaults to os.Stdout.
	Output io.Writer
}

func (c *ConsoleTestLogger) out() io.Writer {
	if c.Output == nil {
		return os.Stdout
	}
	return c.Output
}

func (c *ConsoleTestLogger) TestStarted(id TestID) {
	fmt.Fprintf(c.out(), "[%s]\n", id)
}

func (c *ConsoleTestLogger) TestError(id TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		failedColor.Fprintf(c.out(), "  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id TestID, outcome Outcome, debugOutput CapturedOutput) {
	failed := outcome != Passed
	switch outcome {
	case Passed:
		passedColor.Fprintf(c.out(), "  %s\n", outcome)
	case Failed:
		failedColor.Fprintf(c.out(), "  %s: %s\n", outcome, id)
	default:
		erroredColor.Fprintf(c.out(), "  %s: %s\n", outcome, id)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.out(), "    DEBUG ")
	}
}
