// Package cli provides the Cobra command tree and output wiring for demo.
package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ejolly/demo-project/demo"
	"github.com/ejolly/demo-project/internal/config"
)

// NewRootCmd builds the top-level Cobra command for demo.
// logger and level are shared with main; --verbose lowers level to debug.
// Callers must set stdout/stderr via cmd.SetOut / cmd.SetErr before Execute.
func NewRootCmd(logger *slog.Logger, level *slog.LevelVar) *cobra.Command {
	// d is populated by PersistentPreRunE before any subcommand's RunE runs.
	// Cobra only executes the innermost PersistentPreRunE in the command
	// chain, so a subcommand that defines its own must not rely on d.
	var d deps

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "demo prints a greeting",
		Long: `demo is a small demonstration CLI.

It prints a fixed greeting and reports its version.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			resolved, err := buildDeps(cmd, logger, level)
			if err != nil {
				return err
			}
			d = *resolved
			return nil
		},
	}

	config.RegisterFlags(cmd.PersistentFlags())
	config.RegisterFlagCompletions(cmd)

	cmd.Version = demo.Version
	cmd.SetVersionTemplate("demo version {{.Version}}\n")

	cmd.AddGroup(
		&cobra.Group{ID: "greeting", Title: "Greeting Commands:"},
		&cobra.Group{ID: "utility", Title: "Utility Commands:"},
	)

	cmd.AddCommand(
		newHelloCmd(&d),
		newVersionCmd(&d),
		newConfigCmd(&d),
		newCompletionCmd(),
	)

	return cmd
}

// Execute builds the root command and runs it with args.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer, logger *slog.Logger, level *slog.LevelVar) error {
	cmd := NewRootCmd(logger, level)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}
