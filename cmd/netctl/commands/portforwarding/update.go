package portforwarding

import (
	"fmt"

	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/pkg/resource"
	"github.com/spf13/cobra"
)

var updateFlags mappingFlags

var updateCmd = &cobra.Command{
	Use:   "update <portforwarding>",
	Short: "Update a port forwarding mapping",
	Long: `Update a port forwarding mapping. Only the given attributes change.

Examples:
  netctl portforwarding update 3f1d2c4b-... --outside-port 2223`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateFlags.register(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	id, err := cmdutil.Resolver(client).Resolve(resource.PortForwarding, args[0])
	if err != nil {
		return err
	}

	pf, err := client.UpdatePortForwarding(id, updateFlags.request())
	if err != nil {
		return fmt.Errorf("failed to update port forwarding: %w", err)
	}

	return cmdutil.PrintResourceWithSuccess(cmd.OutOrStdout(), pf, fmt.Sprintf("Updated portforwarding: %s", args[0]))
}
