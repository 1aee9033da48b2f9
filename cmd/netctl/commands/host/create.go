package host

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/pkg/apiclient"
	"github.com/spf13/cobra"
)

var (
	createID           string
	createAvailability string
)

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a host record",
	Long: `Create a host record for the given system hostname.

Examples:
  # Create a host that is not yet available
  netctl host create compute-0

  # Create a host with a fixed ID
  netctl host create compute-1 --id 0b2f6d4e-5c1a-4b8e-9f3d-2a7c6e1b9d04 --availability up`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createID, "id", "", "Host UUID (assigned by the service if omitted)")
	createCmd.Flags().StringVar(&createAvailability, "availability", "down", "Host availability (up|down)")
}

func runCreate(cmd *cobra.Command, args []string) error {
	if createID != "" {
		if _, err := uuid.Parse(createID); err != nil {
			return fmt.Errorf("--id must be a UUID, got %q", createID)
		}
	}

	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	host, err := client.CreateHost(&apiclient.CreateHostRequest{
		ID:           createID,
		Name:         args[0],
		Availability: createAvailability,
	})
	if err != nil {
		return cmdutil.CreateError("host", err)
	}

	return cmdutil.PrintCreated(cmd.OutOrStdout(), host, "Created a new host:")
}
