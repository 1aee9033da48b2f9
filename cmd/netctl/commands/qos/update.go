package qos

import (
	"fmt"

	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/pkg/resource"
	"github.com/spf13/cobra"
)

var updateFlags policyFlags

var updateCmd = &cobra.Command{
	Use:   "update <qos>",
	Short: "Update a QoS policy",
	Long: `Update a QoS policy.

The policies sent replace the existing ones; a QoS updated without any
policy flag ends up with no policies.

Examples:
  netctl qos update gold --dscp dscp=34`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateFlags.register(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	req, err := updateFlags.request()
	if err != nil {
		return err
	}

	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	id, err := cmdutil.Resolver(client).Resolve(resource.QoS, args[0])
	if err != nil {
		return err
	}

	q, err := client.UpdateQoS(id, req)
	if err != nil {
		return fmt.Errorf("failed to update QoS policy: %w", err)
	}

	return cmdutil.PrintResourceWithSuccess(cmd.OutOrStdout(), q, fmt.Sprintf("Updated qos: %s", args[0]))
}
