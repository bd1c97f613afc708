package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldlog"

	"github.com/launchdarkly/scope/scope"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

type commandParams struct {
	debug    bool
	debugAll bool
	noColor  bool
	format   string
}

func (c *commandParams) addRunFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&c.debug, "debug", false, "log each hook as it runs, and show debug output of failed tests")
	cmd.Flags().BoolVar(&c.debugAll, "debug-all", false, "like --debug, but show debug output of all tests")
	cmd.Flags().BoolVar(&c.noColor, "no-color", false, "disable colored output")
}

func (c *commandParams) addListFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&c.format, "format", formatText, "output format (text, yaml)")
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{formatText, formatYAML}, cobra.ShellCompDirectiveDefault
	})
}

func (c *commandParams) validateFormat() error {
	switch c.format {
	case formatText, formatYAML:
		return nil
	default:
		return fmt.Errorf("invalid format %q, must be %q or %q", c.format, formatText, formatYAML)
	}
}

func (c *commandParams) applyColor() {
	if c.noColor {
		color.NoColor = true
	}
}

// suiteOptions returns the options for declaring suites. Engine logging goes to stderr so
// that it does not interleave with the test report on stdout.
func (c *commandParams) suiteOptions() []scope.Option {
	if !c.debug && !c.debugAll {
		return nil
	}
	loggers := ldlog.NewDefaultLoggers()
	loggers.SetBaseLogger(log.New(os.Stderr, "[scope] ", log.LstdFlags))
	loggers.SetMinLevel(ldlog.Debug)
	return []scope.Option{scope.WithLoggers(loggers)}
}
