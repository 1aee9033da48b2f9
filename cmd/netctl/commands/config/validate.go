package config

import (
	"fmt"

	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/pkg/config"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration file",
	Long: `Validate the netctl configuration file.

Checks for syntax errors and invalid values.

Examples:
  # Validate default config
  netctl config validate

  # Validate specific config file
  netctl config validate --config ./netctl.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfigValidate,
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := cmdutil.LoadConfig()
	if err != nil {
		return err
	}

	displayPath := cmdutil.Flags.ConfigPath
	if displayPath == "" {
		displayPath = config.GetDefaultConfigPath()
		if !config.DefaultConfigExists() {
			displayPath += " (not found, using defaults)"
		}
	}

	var warnings []string
	if cfg.ServerURL == "" {
		warnings = append(warnings, "server_url not configured - pass --server or log in to a context")
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "Configuration file: %s\n", displayPath)
	_, _ = fmt.Fprintln(w, "Validation: OK")

	if len(warnings) > 0 {
		_, _ = fmt.Fprintln(w, "\nWarnings:")
		for _, warning := range warnings {
			_, _ = fmt.Fprintf(w, "  - %s\n", warning)
		}
	}

	_, _ = fmt.Fprintf(w, "\nConfiguration summary:\n")
	_, _ = fmt.Fprintf(w, "  Server URL:      %s\n", cmdutil.EmptyOr(cfg.ServerURL, "-"))
	_, _ = fmt.Fprintf(w, "  Timeout:         %s\n", cfg.Timeout)
	_, _ = fmt.Fprintf(w, "  Output format:   %s\n", cfg.Output)
	_, _ = fmt.Fprintf(w, "  Log level:       %s\n", cfg.Logging.Level)

	return nil
}
