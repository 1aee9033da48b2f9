package config

import (
	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/internal/cli/output"
	"github.com/marmos91/netctl/pkg/config"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Show the configuration after the file, environment variables and
defaults have been merged.

Examples:
  # Show as table
  netctl config show

  # Show as YAML
  netctl config show -o yaml`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

// configTable renders the effective configuration as key/value rows.
func configTable(cfg *config.Config) output.TableRenderer {
	t := output.NewTableData("KEY", "VALUE")
	t.AddRow("server_url", cmdutil.EmptyOr(cfg.ServerURL, "-"))
	t.AddRow("timeout", cfg.Timeout.String())
	t.AddRow("output", cfg.Output)
	t.AddRow("logging.level", cfg.Logging.Level)
	t.AddRow("logging.format", cfg.Logging.Format)
	t.AddRow("logging.output", cfg.Logging.Output)
	return t
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := cmdutil.LoadConfig()
	if err != nil {
		return err
	}
	return cmdutil.PrintResource(cmd.OutOrStdout(), cfg, configTable(cfg))
}
