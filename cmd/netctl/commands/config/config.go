// Package config implements the configuration subcommands for netctl.
package config

import (
	"github.com/spf13/cobra"
)

// Cmd is the config subcommand.
var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the client configuration",
	Long: `Inspect and validate the netctl configuration file.

The configuration holds client preferences: the default server URL, the
request timeout, the default output format and logging. Credentials are
kept separately, see 'netctl context'.

Values can be overridden with NETCTL_* environment variables, for example
NETCTL_SERVER_URL or NETCTL_LOGGING_LEVEL.`,
}

func init() {
	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(validateCmd)
	Cmd.AddCommand(schemaCmd)
}
