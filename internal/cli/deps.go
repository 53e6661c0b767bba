package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ejolly/demo-project/internal/config"
	"github.com/ejolly/demo-project/internal/output"
)

// deps holds fully-resolved runtime dependencies for a subcommand.
type deps struct {
	logger *slog.Logger
	cfg    *config.Config
	format output.Format
}

// buildDeps resolves config and output format, and raises the log level when verbose.
func buildDeps(cmd *cobra.Command, logger *slog.Logger, level *slog.LevelVar) (*deps, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if cfg.Verbose {
		level.Set(slog.LevelDebug)
	}

	format, err := output.ParseFormat(cfg.Output)
	if err != nil {
		return nil, err
	}

	logger.Debug("configuration resolved",
		"config_file", cfg.ConfigFile,
		"output", cfg.Output,
		"command", cmd.Name(),
	)

	return &deps{logger: logger, cfg: cfg, format: format}, nil
}

// writeResult formats and writes a command result to stdout.
func writeResult(stdout io.Writer, d *deps, result any) error {
	if err := output.Write(stdout, d.format, result); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
