package scope

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldlog"
)

// Option configures a suite at declaration time.
type Option func(*Suite)

// WithLoggers directs the suite's diagnostic logging. By default it is disabled.
func WithLoggers(loggers ldlog.Loggers) Option {
	return func(s *Suite) {
		s.loggers = loggers
	}
}

type testCase struct {
	name         string
	declaredName string
	context      *Context
	body         func(t *T)
}

// Suite is a tree of contexts and tests produced by one declaration pass. Its structure does
// not change after Describe returns; the only state that changes as tests run is whether each
// once-hook has fired.
//
// A Suite is meant to be run by a single host, one test at a time.
type Suite struct {
	name    string
	root    *Context
	tests   map[string]*testCase
	order   []string
	loggers ldlog.Loggers
}

func newSuite(name string) *Suite {
	return &Suite{
		name:    name,
		root:    newContext("", nil),
		tests:   make(map[string]*testCase),
		loggers: ldlog.NewDisabledLoggers(),
	}
}

func (s *Suite) Name() string { return s.name }

// Root returns the implicit unnamed context that contains everything in the suite.
func (s *Suite) Root() *Context { return s.root }

// Tests returns the names of the suite's tests in the order they should run: depth first,
// in declaration order.
func (s *Suite) Tests() []string {
	return append([]string(nil), s.order...)
}

// ContextFor returns the context in which the named test was declared.
func (s *Suite) ContextFor(name string) (*Context, bool) {
	tc, ok := s.tests[name]
	if !ok {
		return nil, false
	}
	return tc.context, true
}

// OutlineNode describes a context, or a test within one, for display.
type OutlineNode struct {
	Context  string        `yaml:"context,omitempty"`
	Should   string        `yaml:"should,omitempty"`
	Hooks    []HookKind    `yaml:"hooks,omitempty"`
	Children []OutlineNode `yaml:"children,omitempty"`
}

// Outline returns the suite's tree, using the names the tests were declared with. The root
// node carries the suite name.
func (s *Suite) Outline() OutlineNode {
	node := s.outline(s.root)
	node.Context = s.name
	return node
}

func (s *Suite) outline(c *Context) OutlineNode {
	node := OutlineNode{Context: c.name}
	if c.setupOnce != nil {
		node.Hooks = append(node.Hooks, SetupOnceHook)
	}
	if c.setup != nil {
		node.Hooks = append(node.Hooks, SetupHook)
	}
	if c.teardown != nil {
		node.Hooks = append(node.Hooks, TeardownHook)
	}
	if c.teardownOnce != nil {
		node.Hooks = append(node.Hooks, TeardownOnceHook)
	}
	for _, item := range c.children {
		if item.context != nil {
			node.Children = append(node.Children, s.outline(item.context))
		} else {
			node.Children = append(node.Children, OutlineNode{Should: s.tests[item.test].declaredName})
		}
	}
	return node
}
