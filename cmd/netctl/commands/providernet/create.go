package providernet

import (
	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/pkg/apiclient"
	"github.com/spf13/cobra"
)

var (
	createType            string
	createMTU             int
	createDescription     string
	createVlanTransparent bool
)

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a provider network",
	Long: `Create a provider network.

Examples:
  # Create a flat provider network
  netctl providernet create physnet0 --type flat

  # Create a VXLAN provider network that passes VLAN tagged packets
  netctl providernet create group0-ext0 --type vxlan --mtu 1600 --vlan-transparent`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createType, "type", "", "Network type (flat|vlan|vxlan) (required)")
	createCmd.Flags().IntVar(&createMTU, "mtu", 0, "Maximum transmit unit")
	createCmd.Flags().StringVar(&createDescription, "description", "", "User-defined description")
	createCmd.Flags().BoolVar(&createVlanTransparent, "vlan-transparent", false, "Allow VLAN tagged packets on tenant networks")
	_ = createCmd.MarkFlagRequired("type")
}

func runCreate(cmd *cobra.Command, args []string) error {
	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	pn, err := client.CreateProviderNet(&apiclient.ProviderNetRequest{
		Name:            args[0],
		Type:            createType,
		MTU:             createMTU,
		Description:     createDescription,
		VlanTransparent: createVlanTransparent,
	})
	if err != nil {
		return cmdutil.CreateError("provider network", err)
	}

	return cmdutil.PrintCreated(cmd.OutOrStdout(), pn, "Created a new providernet:")
}
