// Package framework contains the host side of test execution: the pieces that discover tests,
// run them one at a time, and collect results, independent of how the tests were declared.
//
// The general model is:
//
// 1. A suite exposes an ordered list of test names and can run any one of them on request
// (see the Suite interface). The scope package provides the main implementation.
//
// 2. For each test, the host hands the suite a Recorder. The suite must call Record exactly
// once with the test's outcome (passed, failed, or errored), whatever happened during setup,
// the test body, or teardown.
//
// 3. A TestLogger is notified as tests start, report errors, and finish. ConsoleTestLogger
// prints to the terminal; debug output captured during a test is attached to its result
// and can be shown selectively.
package framework
