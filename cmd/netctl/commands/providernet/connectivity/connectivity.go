// Package connectivity implements provider network connectivity test
// commands for netctl.
package connectivity

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for connectivity tests.
var Cmd = &cobra.Command{
	Use:   "connectivity",
	Short: "Provider network connectivity tests",
	Long: `Schedule provider network connectivity tests and list their results.

Examples:
  # Test every provider network on a host
  netctl providernet connectivity create --host compute-0

  # Show results for one provider network
  netctl providernet connectivity list --providernet group0-data0`,
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(createCmd)
}
