package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ejolly/demo-project/internal/config"
	"github.com/ejolly/demo-project/internal/output"
)

func newConfigCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Read and write demo config file values",
		GroupID: "utility",
	}
	cmd.AddCommand(
		newConfigPathCmd(d),
		newConfigShowCmd(d),
		newConfigGetCmd(d),
		newConfigSetCmd(d),
	)
	return cmd
}

func newConfigPathCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), d.cfg.ConfigFile)
			return err
		},
	}
}

// effectiveValues returns every config key with its value from the resolved
// config, in ValidKeys order. Values include defaults, env vars and flags.
func effectiveValues(cfg *config.Config) ([][2]string, error) {
	keys := config.ValidKeys()
	rows := make([][2]string, 0, len(keys))
	for _, k := range keys {
		v, err := cfg.Get(k)
		if err != nil {
			return nil, err
		}
		rows = append(rows, [2]string{k, v})
	}
	return rows, nil
}

func newConfigShowCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:     "show",
		Aliases: []string{"cat"},
		Short:   "Display all effective config settings",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			rows, err := effectiveValues(d.cfg)
			if err != nil {
				return err
			}
			switch d.format {
			case output.FormatJSON:
				m := make(map[string]string, len(rows))
				for _, r := range rows {
					m[r[0]] = r[1]
				}
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(m)
			case output.FormatPlain:
				for _, r := range rows {
					if _, err := fmt.Fprintf(w, "%s=%s\n", r[0], r[1]); err != nil {
						return err
					}
				}
				return nil
			default:
				table := output.NewWrappingTable(w, 20, 6)
				table.Header([]string{"KEY", "VALUE"})
				tableRows := make([][]string, len(rows))
				for i, r := range rows {
					tableRows[i] = []string{r[0], r[1]}
				}
				if err := table.Bulk(tableRows); err != nil {
					return err
				}
				return table.Render()
			}
		},
	}
}

func newConfigGetCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:               "get <key>",
		Short:             "Print the value of a config key",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: config.CompleteKey,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := d.cfg.Get(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}
}

func newConfigSetCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:               "set <key> <value>",
		Short:             "Set a config value and persist it to the config file",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: config.CompleteKey,
		RunE: func(cmd *cobra.Command, args []string) error {
			key := config.NormalizeKey(args[0])
			if err := config.ValidateKey(key); err != nil {
				return err
			}
			typed, err := config.ParseValue(key, args[1])
			if err != nil {
				return err
			}

			// Start from what the file already holds, not from d.cfg, so that
			// defaults and env/flag overrides are never persisted.
			raw := map[string]any{}
			data, err := os.ReadFile(d.cfg.ConfigFile)
			if err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("reading config file: %w", err)
			}
			if len(data) > 0 {
				if err := yaml.Unmarshal(data, &raw); err != nil {
					return fmt.Errorf("parsing config file: %w", err)
				}
			}
			raw[key] = typed

			out, err := yaml.Marshal(raw)
			if err != nil {
				return fmt.Errorf("marshaling config: %w", err)
			}
			if err := os.WriteFile(d.cfg.ConfigFile, out, 0o600); err != nil {
				return fmt.Errorf("writing config file: %w", err)
			}
			d.logger.Debug("config value written", "key", key, "file", d.cfg.ConfigFile)
			return nil
		},
	}
}
