package providernet

import (
	"fmt"
	"strings"

	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/internal/cli/output"
	"github.com/marmos91/netctl/pkg/apiclient"
	"github.com/marmos91/netctl/pkg/resource"
	"github.com/spf13/cobra"
)

var networksFlags cmdutil.ListFlags

var networksCmd = &cobra.Command{
	Use:   "networks <providernet>",
	Short: "List the networks on a provider network",
	Long: `List the tenant networks carried by a provider network.

Examples:
  netctl providernet networks group0-data0`,
	Args: cobra.ExactArgs(1),
	RunE: runNetworks,
}

func init() {
	networksFlags.Register(networksCmd)
}

// NetworkList is a list of provider network networks for table rendering.
type NetworkList []apiclient.ProviderNetNetwork

// Headers implements TableRenderer.
func (nl NetworkList) Headers() []string {
	return []string{"ID", "NAME", "VLAN ID", "PROVIDERNET TYPE", "SEGMENTATION ID", "PROVIDERNET ATTRIBUTES"}
}

// Rows implements TableRenderer.
func (nl NetworkList) Rows() [][]string {
	rows := make([][]string, 0, len(nl))
	for _, n := range nl {
		rows = append(rows, []string{
			n.ID,
			n.Name,
			output.FormatValue(n.VlanID),
			n.ProviderNetType,
			segmentationID(n),
			vxlanAttributes(n.Vxlan),
		})
	}
	return rows
}

// segmentationID is "n/a" on flat provider networks, which carry no
// segmentation.
func segmentationID(n apiclient.ProviderNetNetwork) string {
	if strings.EqualFold(n.ProviderNetType, "flat") {
		return "n/a"
	}
	return output.FormatValue(n.SegmentationID)
}

func vxlanAttributes(vxlan map[string]any) string {
	if vxlan == nil {
		return ""
	}
	return output.CompactJSON(vxlan)
}

func runNetworks(cmd *cobra.Command, args []string) error {
	opts, err := networksFlags.Options()
	if err != nil {
		return err
	}

	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	id, err := cmdutil.Resolver(client).Resolve(resource.ProviderNet, args[0])
	if err != nil {
		return err
	}

	networks, err := client.ListProviderNetNetworks(id, opts)
	if err != nil {
		return fmt.Errorf("failed to list networks on provider network: %w", err)
	}

	return cmdutil.PrintOutput(cmd.OutOrStdout(), networks, len(networks) == 0,
		fmt.Sprintf("No networks found on provider network %s.", args[0]), NetworkList(networks))
}
