// Package setting implements tenant setting commands for netctl.
package setting

import (
	"fmt"

	"github.com/marmos91/netctl/pkg/apiclient"
	"github.com/spf13/cobra"
)

// Cmd is the parent command for tenant settings.
var Cmd = &cobra.Command{
	Use:   "setting",
	Short: "Tenant setting management",
	Long: `Manage per-tenant settings that override the service defaults.

Without --tenant-id, show, update and delete act on the caller's tenant.

Examples:
  # List tenants with non-default settings
  netctl setting list

  # Enable source MAC filtering for the caller's tenant
  netctl setting update --mac-filtering yes

  # Reset a tenant to the defaults
  netctl setting delete --tenant-id 6b0c...`,
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(updateCmd)
	Cmd.AddCommand(deleteCmd)
}

// tenantOrCaller returns tenantID, or the caller's tenant when it is empty.
func tenantOrCaller(client *apiclient.Client, tenantID string) (string, error) {
	if tenantID != "" {
		return tenantID, nil
	}
	tenantID, err := client.GetSettingsTenant()
	if err != nil {
		return "", fmt.Errorf("failed to determine tenant: %w", err)
	}
	return tenantID, nil
}
