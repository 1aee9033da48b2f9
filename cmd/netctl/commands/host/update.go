package host

import (
	"fmt"

	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/pkg/apiclient"
	"github.com/marmos91/netctl/pkg/resource"
	"github.com/spf13/cobra"
)

var updateAvailability string

var updateCmd = &cobra.Command{
	Use:   "update <host>",
	Short: "Update a host",
	Long: `Update the availability of a host.

Examples:
  # Mark a host as available
  netctl host update compute-0 --availability up`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateAvailability, "availability", "down", "Host availability (up|down)")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	id, err := cmdutil.Resolver(client).Resolve(resource.Host, args[0])
	if err != nil {
		return err
	}

	host, err := client.UpdateHost(id, &apiclient.UpdateHostRequest{Availability: updateAvailability})
	if err != nil {
		return fmt.Errorf("failed to update host: %w", err)
	}

	return cmdutil.PrintResourceWithSuccess(cmd.OutOrStdout(), host, fmt.Sprintf("Updated host: %s", args[0]))
}
