// Package segmentrange implements provider network segmentation range
// commands for netctl.
package segmentrange

import (
	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/pkg/resource"
	"github.com/spf13/cobra"
)

// Cmd is the parent command for segmentation id ranges.
var Cmd = &cobra.Command{
	Use:   "range",
	Short: "Segmentation id range management",
	Long: `Manage the segmentation id ranges (VLAN ids or VXLAN VNIs) that
tenant networks are allocated from.

Examples:
  # List ranges, ordered by provider network and minimum
  netctl providernet range list

  # Create a shared VLAN range
  netctl providernet range create group0-data0 --name group0-data0-r1 --range 100-199 --shared`,
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(cmdutil.NewShowCmd(resource.ProviderNetRange, "segmentation range", `Show a segmentation id range.

Examples:
  netctl providernet range show group0-data0-r1`))
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(updateCmd)
	Cmd.AddCommand(cmdutil.NewDeleteCmd(resource.ProviderNetRange, "segmentation range", `Delete a segmentation id range.

Examples:
  netctl providernet range delete group0-data0-r1 --force`))
}
