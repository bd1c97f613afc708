package framework

// TestLogger receives notifications as the host runs each test.
type TestLogger interface {
	TestStarted(id TestID)
	TestError(id TestID, err error)
	TestFinished(id TestID, outcome Outcome, debugOutput CapturedOutput)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(TestID)                           {}
func (n nullTestLogger) TestError(TestID, error)                      {}
func (n nullTestLogger) TestFinished(TestID, Outcome, CapturedOutput) {}
