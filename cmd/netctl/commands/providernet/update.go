package providernet

import (
	"fmt"

	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/pkg/resource"
	"github.com/spf13/cobra"
)

var (
	updateDescription     string
	updateMTU             int
	updateVlanTransparent bool
	updateSet             []string
)

var updateCmd = &cobra.Command{
	Use:   "update <providernet>",
	Short: "Update a provider network",
	Long: `Update a provider network. Only the given attributes change.

Attributes without a dedicated flag can be set with --set KEY=VALUE.

Examples:
  netctl providernet update group0-data0 --mtu 9000
  netctl providernet update group0-data0 --set status=DOWN`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "User-defined description")
	updateCmd.Flags().IntVar(&updateMTU, "mtu", 0, "Maximum transmit unit")
	updateCmd.Flags().BoolVar(&updateVlanTransparent, "vlan-transparent", false, "Allow VLAN tagged packets on tenant networks")
	updateCmd.Flags().StringArrayVar(&updateSet, "set", nil, "Set an attribute KEY=VALUE (repeatable)")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	attrs, err := cmdutil.ParseAttributes(updateSet)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("description") {
		attrs["description"] = updateDescription
	}
	if cmd.Flags().Changed("mtu") {
		attrs["mtu"] = updateMTU
	}
	if cmd.Flags().Changed("vlan-transparent") {
		attrs["vlan_transparent"] = updateVlanTransparent
	}

	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	id, err := cmdutil.Resolver(client).Resolve(resource.ProviderNet, args[0])
	if err != nil {
		return err
	}

	pn, err := client.UpdateProviderNet(id, attrs)
	if err != nil {
		return fmt.Errorf("failed to update provider network: %w", err)
	}

	return cmdutil.PrintResourceWithSuccess(cmd.OutOrStdout(), pn, fmt.Sprintf("Updated providernet: %s", args[0]))
}
