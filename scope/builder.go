package scope

import (
	"fmt"
	"strings"
)

// Builder is handed to the body of Describe and of every Context call. All declarations go
// through it; it tracks which context is currently open and whether a focus is in effect.
type Builder struct {
	suite  *Suite
	stack  []*Context
	focus  focusState
	err    error
	sealed bool
}

type focusState struct {
	enabled bool // Focus was called during this pass
	next    bool // the next Should or Context is the focus target
	inside  bool // declarations are currently inside the focused context
}

// Describe builds a suite by running body against a new Builder. Declaration errors such as
// duplicate test names are reported here, before any test runs.
func Describe(name string, body func(s *Builder), opts ...Option) (*Suite, error) {
	suite := newSuite(name)
	for _, opt := range opts {
		opt(suite)
	}
	b := &Builder{suite: suite, stack: []*Context{suite.root}}
	b.declare(body)
	b.sealed = true
	if b.err != nil {
		return nil, b.err
	}
	suite.order = suite.root.Tests()
	suite.loggers.Debugf("Suite %q declares %d tests", name, len(suite.order))
	return suite, nil
}

// MustDescribe is like Describe but panics on a declaration error. It is meant for suites
// declared in package-level variables.
func MustDescribe(name string, body func(s *Builder), opts ...Option) *Suite {
	suite, err := Describe(name, body, opts...)
	if err != nil {
		panic(err)
	}
	return suite
}

func (b *Builder) declare(body func(s *Builder)) {
	defer func() {
		if r := recover(); r != nil && b.err == nil {
			b.err = &DeclarationError{Suite: b.suite.name, Err: fmt.Errorf("%w: %v", ErrDeclarationPanic, r)}
		}
	}()
	body(b)
}

func (b *Builder) current() *Context {
	return b.stack[len(b.stack)-1]
}

// usable reports whether a declaration should proceed. Once a pass has produced an error,
// further declarations are ignored. A declaration on a builder whose suite has already been
// built panics, since there is no longer a caller to return an error to.
func (b *Builder) usable() bool {
	if b.sealed {
		panic(&DeclarationError{Suite: b.suite.name, Err: ErrSealed})
	}
	return b.err == nil
}

func (b *Builder) fail(test string, err error) {
	b.err = &DeclarationError{Suite: b.suite.name, Test: test, Err: err}
}

// Context declares a nested context and runs body to declare what is inside it.
func (b *Builder) Context(name string, body func(s *Builder)) {
	if !b.usable() {
		return
	}
	parent := b.current()
	if strings.TrimSpace(name) == "" {
		b.fail(qualifiedName(parent, name), ErrBlankName)
		return
	}
	focused := false
	if b.focus.enabled && b.focus.next {
		b.focus.next = false
		b.focus.inside = true
		focused = true
	}

	child := newContext(name, parent)
	parent.addContext(child)
	b.stack = append(b.stack, child)
	defer func() {
		b.stack = b.stack[:len(b.stack)-1]
		if focused {
			b.focus.inside = false
		}
	}()

	if body != nil {
		body(b)
	}
}

// Should declares a test in the innermost open context. Its name is the names of the
// enclosing contexts followed by name, separated by spaces.
func (b *Builder) Should(name string, body func(t *T)) {
	if !b.usable() {
		return
	}
	if b.focus.enabled {
		if !b.focus.next && !b.focus.inside {
			b.suite.loggers.Debugf("Suite %q: %q is outside the focus, discarding it", b.suite.name, name)
			return
		}
		b.focus.next = false
	}

	ctx := b.current()
	qualified := qualifiedName(ctx, name)
	switch {
	case strings.TrimSpace(name) == "":
		b.fail(qualified, ErrBlankName)
		return
	case body == nil:
		b.fail(qualified, ErrNilBody)
		return
	}
	if _, exists := b.suite.tests[qualified]; exists {
		b.fail(qualified, ErrDuplicateTest)
		return
	}

	b.suite.tests[qualified] = &testCase{name: qualified, declaredName: name, context: ctx, body: body}
	ctx.addTest(qualified)
}

// Setup sets the hook that runs before each test in the current context, including tests in
// nested contexts. A later call replaces an earlier one.
func (b *Builder) Setup(fn Hook) {
	if b.usable() {
		b.current().setup = fn
	}
}

// Teardown sets the hook that runs after each test in the current context, even if the test
// or an inner hook failed. A later call replaces an earlier one.
func (b *Builder) Teardown(fn Hook) {
	if b.usable() {
		b.current().teardown = fn
	}
}

// SetupOnce sets a hook that runs before the first test in the current context and never
// again.
func (b *Builder) SetupOnce(fn Hook) {
	if b.usable() {
		b.current().setupOnce = NewOnceHook(fn)
	}
}

// TeardownOnce sets a hook that runs once, after the last test in the current context's
// subtree.
func (b *Builder) TeardownOnce(fn Hook) {
	if b.usable() {
		b.current().teardownOnce = NewOnceHook(fn)
	}
}

// Focus restricts the suite to the next test or context declared after this call. Tests
// already declared are removed, and tests declared later outside the focus are discarded.
func (b *Builder) Focus() {
	if !b.usable() {
		return
	}
	if n := len(b.suite.tests); n > 0 {
		b.suite.loggers.Debugf("Suite %q: focus removes %d already declared tests", b.suite.name, n)
	}
	b.suite.root.removeTests()
	b.suite.tests = make(map[string]*testCase)
	b.focus = focusState{enabled: true, next: true}
}
