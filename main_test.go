package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/launchdarkly/scope/examples"
	"github.com/launchdarkly/scope/scope"
)

func executeCommand(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListText(t *testing.T) {
	out, err := executeCommand("list")

	require.NoError(t, err)
	assert.Contains(t, out, "PassingTests\n  A\n  context Z\n  context A\n")
	assert.Contains(t, out, "Stack\n  start empty\n")
}

func TestListYAML(t *testing.T) {
	out, err := executeCommand("list", "--format", "yaml")
	require.NoError(t, err)

	dec := yaml.NewDecoder(bytes.NewBufferString(out))
	var first scope.OutlineNode
	require.NoError(t, dec.Decode(&first))

	assert.Equal(t, "PassingTests", first.Context)
	assert.Equal(t, []scope.HookKind{scope.SetupOnceHook, scope.SetupHook, scope.TeardownHook, scope.TeardownOnceHook}, first.Hooks)
	require.Len(t, first.Children, 2)
	assert.Equal(t, "A", first.Children[0].Should)
	assert.Equal(t, "context", first.Children[1].Context)
}

func TestListRejectsUnknownFormat(t *testing.T) {
	_, err := executeCommand("list", "--format", "json")

	assert.EqualError(t, err, `invalid format "json", must be "text" or "yaml"`)
}

func TestRunReportsEveryTest(t *testing.T) {
	saved := color.NoColor
	t.Cleanup(func() { color.NoColor = saved })

	out, err := executeCommand("run", "--no-color")

	require.NoError(t, err)
	assert.Contains(t, out, "[PassingTests/context Z]\n  PASSED\n")
	assert.Contains(t, out, "7 tests, 0 failed\n")
}

func TestRunSuitesReturnsErrorOnFailure(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = saved })
	failing := scope.MustDescribe("Failing", func(s *scope.Builder) {
		s.Should("fail", func(t *scope.T) {
			t.Errorf("nope")
		})
	})

	var out bytes.Buffer
	err := runSuites(&out, commandParams{}, append(examples.All(), failing))

	assert.EqualError(t, err, "1 of 8 tests failed")
	assert.Contains(t, out.String(), "  nope\n")
	assert.Contains(t, out.String(), "  FAILED: Failing/fail\n")
}
