package setting

import (
	"fmt"

	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/spf13/cobra"
)

var (
	deleteTenantID string
	deleteForce    bool
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Reset a tenant's settings to the defaults",
	Long: `Delete a tenant's settings so that it uses the defaults again.

Examples:
  netctl setting delete --tenant-id 6b0c... --force`,
	Args: cobra.NoArgs,
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().StringVar(&deleteTenantID, "tenant-id", "", "Owner tenant ID (default: the caller's tenant)")
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	tenantID, err := tenantOrCaller(client, deleteTenantID)
	if err != nil {
		return err
	}

	return cmdutil.RunDeleteWithConfirmation(cmd.OutOrStdout(), "setting", tenantID, deleteForce, func() error {
		if err := client.DeleteSettings(tenantID); err != nil {
			return fmt.Errorf("failed to delete settings: %w", err)
		}
		return nil
	})
}
