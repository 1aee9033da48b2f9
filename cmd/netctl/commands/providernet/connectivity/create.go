package connectivity

import (
	"fmt"

	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/pkg/apiclient"
	"github.com/marmos91/netctl/pkg/resource"
	"github.com/spf13/cobra"
)

var (
	createProviderNet    string
	createHost           string
	createSegmentationID string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Schedule a connectivity test",
	Long: `Schedule a provider network connectivity test.

Without filters every provider network on every host is tested.

Examples:
  # Test all provider networks on one host
  netctl providernet connectivity create --host compute-0

  # Test one segmentation id of a provider network
  netctl providernet connectivity create --providernet group0-data0 --segmentation-id 100`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createProviderNet, "providernet", "", "Test the given provider network")
	createCmd.Flags().StringVar(&createHost, "host", "", "Test all provider networks on the given host")
	createCmd.Flags().StringVar(&createSegmentationID, "segmentation-id", "", "Test the given segmentation id")
}

// optional returns nil for a flag that was not given, so it is sent as null.
func optional(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

func runCreate(cmd *cobra.Command, args []string) error {
	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	req := &apiclient.ConnectivityTestRequest{
		HostName:       optional(cmd, "host", createHost),
		SegmentationID: optional(cmd, "segmentation-id", createSegmentationID),
	}
	if createProviderNet != "" {
		id, err := cmdutil.Resolver(client).Resolve(resource.ProviderNet, createProviderNet)
		if err != nil {
			return err
		}
		req.ProviderNetID = &id
	}

	test, err := client.ScheduleConnectivityTest(req)
	if err != nil {
		return fmt.Errorf("failed to schedule connectivity test: %w", err)
	}

	return cmdutil.PrintCreated(cmd.OutOrStdout(), test, "Created a new providernet_connectivity_test:")
}
