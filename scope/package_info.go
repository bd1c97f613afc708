// Package scope organizes tests into nested, named contexts with setup and teardown hooks.
//
// A suite is declared in one pass with Describe:
//
//	suite, err := scope.Describe("Stack", func(s *scope.Builder) {
//		var stack *Stack
//		s.Setup(func(t *scope.T) { stack = NewStack() })
//
//		s.Should("start empty", func(t *scope.T) {
//			assert.True(t, stack.Empty())
//		})
//
//		s.Context("after a push", func(s *scope.Builder) {
//			s.Setup(func(t *scope.T) { stack.Push(1) })
//
//			s.Should("not be empty", func(t *scope.T) {
//				assert.False(t, stack.Empty())
//			})
//		})
//	})
//
// Test names are the names of the enclosing contexts followed by the declared name, joined
// with spaces ("after a push not be empty" above). Tests run in declaration order, depth first.
//
// For each test, the setup hooks of every enclosing context run from the outermost inward, then
// the test body, then the teardown hooks from the innermost outward. SetupOnce and TeardownOnce
// hooks run only once per context: before the first test inside it, and after the last test
// anywhere in its subtree.
//
// Suites are run by a host. The framework package provides one that prints to the console, and
// the scopetest package runs suites under "go test".
package scope
