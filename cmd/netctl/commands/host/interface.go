package host

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/pkg/apiclient"
	"github.com/marmos91/netctl/pkg/resource"
	"github.com/spf13/cobra"
)

var (
	bindInterface    string
	bindMTU          int
	bindProviderNets string
	bindVLANs        string
	bindTest         bool

	unbindInterface string
)

var bindCmd = &cobra.Command{
	Use:   "bind-interface <host>",
	Short: "Bind an interface to a set of provider networks",
	Long: `Bind a host interface to a set of provider networks.

With --test the service only checks whether the bind would succeed; no
action is taken.

Examples:
  # Bind an interface to two provider networks
  netctl host bind-interface compute-0 --interface 5d7e2f3a-9c41-4c8b-8e0f-6a1b2c3d4e5f \
    --mtu 1500 --providernets group0-data0,group0-data1

  # Check a bind without applying it
  netctl host bind-interface compute-0 --interface 5d7e2f3a-9c41-4c8b-8e0f-6a1b2c3d4e5f \
    --mtu 9000 --providernets group0-data0 --vlans 10,11 --test`,
	Args: cobra.ExactArgs(1),
	RunE: runBind,
}

var unbindCmd = &cobra.Command{
	Use:   "unbind-interface <host>",
	Short: "Unbind an interface from all provider networks",
	Long: `Unbind a host interface from every provider network it is bound to.

Examples:
  netctl host unbind-interface compute-0 --interface 5d7e2f3a-9c41-4c8b-8e0f-6a1b2c3d4e5f`,
	Args: cobra.ExactArgs(1),
	RunE: runUnbind,
}

func init() {
	bindCmd.Flags().StringVar(&bindInterface, "interface", "", "Interface UUID (required)")
	bindCmd.Flags().IntVar(&bindMTU, "mtu", 0, "MTU of the interface (required)")
	bindCmd.Flags().StringVar(&bindProviderNets, "providernets", "", "Comma-separated list of provider network names (required)")
	bindCmd.Flags().StringVar(&bindVLANs, "vlans", "", "Comma-separated list of VLANs reserved for system use")
	bindCmd.Flags().BoolVar(&bindTest, "test", false, "Only test whether the bind would succeed")
	_ = bindCmd.MarkFlagRequired("interface")
	_ = bindCmd.MarkFlagRequired("mtu")
	_ = bindCmd.MarkFlagRequired("providernets")

	unbindCmd.Flags().StringVar(&unbindInterface, "interface", "", "Interface UUID (required)")
	_ = unbindCmd.MarkFlagRequired("interface")
}

func checkInterfaceUUID(value string) error {
	if _, err := uuid.Parse(value); err != nil {
		return fmt.Errorf("--interface must be a UUID, got %q", value)
	}
	return nil
}

func runBind(cmd *cobra.Command, args []string) error {
	if err := checkInterfaceUUID(bindInterface); err != nil {
		return err
	}

	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	id, err := cmdutil.Resolver(client).Resolve(resource.Host, args[0])
	if err != nil {
		return err
	}

	req := &apiclient.BindInterfaceRequest{
		UUID:         bindInterface,
		MTU:          bindMTU,
		ProviderNets: strings.Join(cmdutil.ParseCommaSeparatedList(bindProviderNets), ","),
		VLANs:        strings.Join(cmdutil.ParseCommaSeparatedList(bindVLANs), ","),
	}
	if err := client.BindInterface(id, req, bindTest); err != nil {
		return fmt.Errorf("failed to bind interface: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Bound provider networks to interface %s on %s\n", bindInterface, args[0])
	return nil
}

func runUnbind(cmd *cobra.Command, args []string) error {
	if err := checkInterfaceUUID(unbindInterface); err != nil {
		return err
	}

	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	id, err := cmdutil.Resolver(client).Resolve(resource.Host, args[0])
	if err != nil {
		return err
	}

	if err := client.UnbindInterface(id, unbindInterface); err != nil {
		return fmt.Errorf("failed to unbind interface: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unbound provider networks from interface %s on %s\n", unbindInterface, args[0])
	return nil
}
