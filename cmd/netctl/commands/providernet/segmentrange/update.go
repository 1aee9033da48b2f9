package segmentrange

import (
	"fmt"

	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/pkg/apiclient"
	"github.com/marmos91/netctl/pkg/resource"
	"github.com/marmos91/netctl/pkg/segrange"
	"github.com/spf13/cobra"
)

var (
	updateDescription string
	updateSpan        string
)

var updateCmd = &cobra.Command{
	Use:   "update <range>",
	Short: "Update a segmentation id range",
	Long: `Update the description or bounds of a segmentation id range.

Examples:
  netctl providernet range update group0-data0-r1 --range 100-299
  netctl providernet range update group0-data0-r1 --description "tenant pool"`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "User-defined description")
	updateCmd.Flags().StringVar(&updateSpan, "range", "", "Segmentation id range MIN_VALUE-MAX_VALUE")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	req := &apiclient.UpdateRangeRequest{Description: updateDescription}
	if updateSpan != "" {
		minimum, maximum, err := segrange.ParseSpan(updateSpan)
		if err != nil {
			return err
		}
		req.Minimum = &minimum
		req.Maximum = &maximum
	}

	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	id, err := cmdutil.Resolver(client).Resolve(resource.ProviderNetRange, args[0])
	if err != nil {
		return err
	}

	r, err := client.UpdateProviderNetRange(id, req)
	if err != nil {
		return fmt.Errorf("failed to update segmentation range: %w", err)
	}

	return cmdutil.PrintResourceWithSuccess(cmd.OutOrStdout(), r, fmt.Sprintf("Updated providernet_range: %s", args[0]))
}
