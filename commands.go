package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/launchdarkly/scope/examples"
	"github.com/launchdarkly/scope/framework"
	"github.com/launchdarkly/scope/scope"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scope",
		Short: "Run the example scope test suites",
		Long: `scope runs the example suites that ship with this module, using the console
test host from the framework package. It is mainly useful for seeing the order in which
hooks and tests run (use --debug-all).`,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newListCmd())
	return rootCmd
}

func newRunCmd() *cobra.Command {
	var params commandParams
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every example suite and report each test",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params.applyColor()
			return runSuites(cmd.OutOrStdout(), params, examples.All(params.suiteOptions()...))
		},
	}
	params.addRunFlags(cmd)
	return cmd
}

func newListCmd() *cobra.Command {
	var params commandParams
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the tests of every example suite in the order they run",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return params.validateFormat()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return listSuites(cmd.OutOrStdout(), params.format, examples.All())
		},
	}
	params.addListFlags(cmd)
	return cmd
}

func runSuites(out io.Writer, params commandParams, suites []*scope.Suite) error {
	testLogger := &framework.ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
		Output:               out,
	}
	hosted := make([]framework.Suite, 0, len(suites))
	for _, s := range suites {
		hosted = append(hosted, s)
	}

	results := framework.Run(testLogger, hosted...)

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%d tests, %d failed\n", len(results.Tests), len(results.Failures))
	if !results.OK() {
		return fmt.Errorf("%d of %d tests failed", len(results.Failures), len(results.Tests))
	}
	return nil
}

func listSuites(out io.Writer, format string, suites []*scope.Suite) error {
	if format == formatYAML {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		for _, s := range suites {
			if err := enc.Encode(s.Outline()); err != nil {
				return fmt.Errorf("failed to encode outline of suite %q: %w", s.Name(), err)
			}
		}
		return enc.Close()
	}
	for _, s := range suites {
		fmt.Fprintln(out, s.Name())
		for _, name := range s.Tests() {
			fmt.Fprintf(out, "  %s\n", name)
		}
	}
	return nil
}
