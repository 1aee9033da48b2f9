// Package commands implements the CLI commands for netctl.
package commands

import (
	"strings"

	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	configcmd "github.com/marmos91/netctl/cmd/netctl/commands/config"
	ctxcmd "github.com/marmos91/netctl/cmd/netctl/commands/context"
	hostcmd "github.com/marmos91/netctl/cmd/netctl/commands/host"
	pfcmd "github.com/marmos91/netctl/cmd/netctl/commands/portforwarding"
	pncmd "github.com/marmos91/netctl/cmd/netctl/commands/providernet"
	qoscmd "github.com/marmos91/netctl/cmd/netctl/commands/qos"
	settingcmd "github.com/marmos91/netctl/cmd/netctl/commands/setting"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "netctl",
	Short: "Networking service command-line client",
	Long: `netctl is the command-line client for the networking service REST API.

Use it to manage hosts, port forwardings, provider networks and their
segmentation ranges, connectivity tests, QoS policies and tenant settings.

Resources can be referenced by ID or, where the service allows it, by name.

Use "netctl [command] --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Sync flags to cmdutil.Flags for subcommands
		cmdutil.Flags.ServerURL, _ = cmd.Flags().GetString("server")
		cmdutil.Flags.Token, _ = cmd.Flags().GetString("token")
		cmdutil.Flags.ConfigPath, _ = cmd.Flags().GetString("config")
		cmdutil.Flags.Output, _ = cmd.Flags().GetString("output")
		cmdutil.Flags.NoColor, _ = cmd.Flags().GetBool("no-color")
		cmdutil.Flags.Verbose, _ = cmd.Flags().GetBool("verbose")
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// GetRootCmd returns the root command for testing purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

// normalizeFlagName accepts underscore spellings such as --tenant_id for
// the dashed flag names.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().String("server", "", "Server URL (overrides stored credential)")
	rootCmd.PersistentFlags().String("token", "", "Bearer token (overrides stored credential)")
	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/netctl/netctl.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (table|json|yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(ctxcmd.Cmd)
	rootCmd.AddCommand(configcmd.Cmd)
	rootCmd.AddCommand(hostcmd.Cmd)
	rootCmd.AddCommand(pfcmd.Cmd)
	rootCmd.AddCommand(pncmd.Cmd)
	rootCmd.AddCommand(qoscmd.Cmd)
	rootCmd.AddCommand(settingcmd.Cmd)
	rootCmd.AddCommand(completionCmd)

	rootCmd.SetGlobalNormalizationFunc(normalizeFlagName)

	// Hide the default completion command (we provide our own)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
