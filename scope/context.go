package scope

import "strings"

// contextItem is one entry in a context's children: either a nested context or the name of
// a test. Keeping both kinds in one list preserves declaration order, which is both the
// execution order and what decides when teardown-once runs.
type contextItem struct {
	context *Context
	test    string
}

// Context is a node in a suite's test tree.
//
// Every suite has an unnamed root context; contexts declared with Builder.Context hang off
// it. A context owns its nested contexts and refers to its parent only for walking upward.
type Context struct {
	name     string
	parent   *Context
	children []contextItem

	setup        Hook
	teardown     Hook
	setupOnce    *OnceHook
	teardownOnce *OnceHook
}

func newContext(name string, parent *Context) *Context {
	return &Context{name: name, parent: parent}
}

func (c *Context) Name() string { return c.name }

func (c *Context) Parent() *Context { return c.parent }

func (c *Context) IsRoot() bool { return c.parent == nil }

// Path returns the contexts from the root down to and including c.
func (c *Context) Path() []*Context {
	var path []*Context
	for p := c; p != nil; p = p.parent {
		path = append(path, p)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// FullName is the space-separated names of every context below the root down to c. It is
// empty for the root.
func (c *Context) FullName() string {
	path := c.Path()
	names := make([]string, 0, len(path)-1)
	for _, p := range path[1:] {
		names = append(names, p.name)
	}
	return strings.Join(names, " ")
}

// Tests returns the names of all tests in this subtree, depth first, in declaration order.
func (c *Context) Tests() []string {
	var tests []string
	c.collectTests(&tests)
	return tests
}

func (c *Context) collectTests(tests *[]string) {
	for _, item := range c.children {
		if item.context != nil {
			item.context.collectTests(tests)
		} else {
			*tests = append(*tests, item.test)
		}
	}
}

// LastTest returns the name of the test that runs last in this subtree, which may be inside a
// nested context any number of levels down. Empty nested contexts are skipped.
func (c *Context) LastTest() (string, bool) {
	for i := len(c.children) - 1; i >= 0; i-- {
		item := c.children[i]
		if item.context == nil {
			return item.test, true
		}
		if last, ok := item.context.LastTest(); ok {
			return last, true
		}
	}
	return "", false
}

// Contexts returns the contexts declared directly inside c.
func (c *Context) Contexts() []*Context {
	var ret []*Context
	for _, item := range c.children {
		if item.context != nil {
			ret = append(ret, item.context)
		}
	}
	return ret
}

func (c *Context) addContext(child *Context) {
	c.children = append(c.children, contextItem{context: child})
}

func (c *Context) addTest(name string) {
	c.children = append(c.children, contextItem{test: name})
}

// removeTests drops every test from this subtree, leaving the contexts themselves in place.
func (c *Context) removeTests() {
	kept := c.children[:0]
	for _, item := range c.children {
		if item.context != nil {
			item.context.removeTests()
			kept = append(kept, item)
		}
	}
	c.children = kept
}

// qualifiedName is the identifier of a test declared as name inside c.
func qualifiedName(c *Context, name string) string {
	if prefix := c.FullName(); prefix != "" {
		return prefix + " " + name
	}
	return name
}
