package segmentrange

import (
	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/pkg/apiclient"
	"github.com/marmos91/netctl/pkg/resource"
	"github.com/marmos91/netctl/pkg/segrange"
	"github.com/spf13/cobra"
)

var (
	createName        string
	createSpan        string
	createShared      bool
	createDescription string
	createGroup       string
	createTTL         int
	createPort        int
	createMode        string
	createTenantID    string
)

var createCmd = &cobra.Command{
	Use:   "create <providernet>",
	Short: "Create a segmentation id range",
	Long: `Create a segmentation id range on a provider network.

--group, --ttl, --port and --mode only apply to VXLAN provider networks.

Examples:
  # A VLAN range
  netctl providernet range create group0-data0 --name group0-data0-r1 --range 100-199

  # A VXLAN range with a multicast group
  netctl providernet range create group0-ext0 --name group0-ext0-r1 --range 1000-1999 \
    --group 239.0.0.1 --ttl 1 --port 4789`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "Range name (required)")
	createCmd.Flags().StringVar(&createSpan, "range", "", "Segmentation id range MIN_VALUE-MAX_VALUE (required)")
	createCmd.Flags().BoolVar(&createShared, "shared", false, "Allow the range to be shared between tenants")
	createCmd.Flags().StringVar(&createDescription, "description", "", "User-defined description")
	createCmd.Flags().StringVar(&createGroup, "group", "", "Multicast IP address for VXLAN endpoints")
	createCmd.Flags().IntVar(&createTTL, "ttl", 0, "Time-to-live for VXLAN provider networks")
	createCmd.Flags().IntVar(&createPort, "port", 0, "Destination UDP port for VXLAN provider networks")
	createCmd.Flags().StringVar(&createMode, "mode", "dynamic", "VXLAN learning mode (dynamic|static|evpn)")
	createCmd.Flags().StringVar(&createTenantID, "tenant-id", "", "Owner tenant ID")
	_ = createCmd.MarkFlagRequired("name")
	_ = createCmd.MarkFlagRequired("range")
}

func runCreate(cmd *cobra.Command, args []string) error {
	minimum, maximum, err := segrange.ParseSpan(createSpan)
	if err != nil {
		return err
	}

	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	providerNetID, err := cmdutil.Resolver(client).Resolve(resource.ProviderNet, args[0])
	if err != nil {
		return err
	}

	r, err := client.CreateProviderNetRange(&apiclient.CreateRangeRequest{
		ProviderNetID: providerNetID,
		Name:          createName,
		Description:   createDescription,
		Shared:        createShared,
		Minimum:       minimum,
		Maximum:       maximum,
		TenantID:      createTenantID,
		Port:          createPort,
		TTL:           createTTL,
		Group:         createGroup,
		Mode:          createMode,
	})
	if err != nil {
		return cmdutil.CreateError("segmentation range", err)
	}

	return cmdutil.PrintCreated(cmd.OutOrStdout(), r, "Created a new providernet_range:")
}
