package setting

import (
	"fmt"

	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/internal/cli/output"
	"github.com/spf13/cobra"
)

var showTenantID string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a tenant's settings",
	Long: `Show the effective settings of a tenant.

Examples:
  # The caller's tenant
  netctl setting show

  # Another tenant
  netctl setting show --tenant-id 6b0c...`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&showTenantID, "tenant-id", "", "Owner tenant ID (default: the caller's tenant)")
}

func runShow(cmd *cobra.Command, args []string) error {
	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	tenantID, err := tenantOrCaller(client, showTenantID)
	if err != nil {
		return err
	}

	settings, err := client.GetSettings(tenantID)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	return cmdutil.PrintResource(cmd.OutOrStdout(), settings, output.FieldTable(settings))
}
