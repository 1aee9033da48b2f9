// Package host implements host management commands for netctl.
package host

import (
	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/pkg/resource"
	"github.com/spf13/cobra"
)

// Cmd is the parent command for host management.
var Cmd = &cobra.Command{
	Use:   "host",
	Short: "Host management",
	Long: `Manage compute and network hosts known to the networking service.

Hosts can be referenced by ID or by hostname.

Examples:
  # List all hosts
  netctl host list

  # Register a host
  netctl host create compute-0 --availability up

  # Bind a data interface to provider networks
  netctl host bind-interface compute-0 --interface 5d7e... --mtu 1500 --providernets group0-data0

  # Delete a host
  netctl host delete compute-0`,
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(cmdutil.NewShowCmd(resource.Host, "host", `Show the agents and resource counts of a host.

Examples:
  # Show a host by name
  netctl host show compute-0`))
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(updateCmd)
	Cmd.AddCommand(cmdutil.NewDeleteCmd(resource.Host, "host", `Delete a host record.

You will be prompted for confirmation unless --force is specified.

Examples:
  # Delete a host without confirmation
  netctl host delete compute-0 --force`))
	Cmd.AddCommand(bindCmd)
	Cmd.AddCommand(unbindCmd)
}
