// Package providernet implements provider network commands for netctl.
package providernet

import (
	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/cmd/netctl/commands/providernet/connectivity"
	"github.com/marmos91/netctl/cmd/netctl/commands/providernet/segmentrange"
	"github.com/marmos91/netctl/pkg/resource"
	"github.com/spf13/cobra"
)

// Cmd is the parent command for provider networks.
var Cmd = &cobra.Command{
	Use:   "providernet",
	Short: "Provider network management",
	Long: `Manage provider networks, their segmentation id ranges and
connectivity tests.

Examples:
  # List provider networks with their ranges
  netctl providernet list

  # Create a VLAN provider network
  netctl providernet create group0-data0 --type vlan --mtu 1500

  # Add a segmentation range
  netctl providernet range create group0-data0 --name group0-data0-r1 --range 100-199

  # Show connectivity test results
  netctl providernet connectivity list`,
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(cmdutil.NewShowCmd(resource.ProviderNet, "provider network", `Show a provider network.

Examples:
  netctl providernet show group0-data0`))
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(updateCmd)
	Cmd.AddCommand(cmdutil.NewDeleteCmd(resource.ProviderNet, "provider network", `Delete a provider network.

Examples:
  netctl providernet delete group0-data0 --force`))
	Cmd.AddCommand(typesCmd)
	Cmd.AddCommand(networksCmd)
	Cmd.AddCommand(segmentrange.Cmd)
	Cmd.AddCommand(connectivity.Cmd)
}
