package setting

import (
	"errors"
	"fmt"

	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/internal/cli/output"
	"github.com/spf13/cobra"
)

// ErrNoSettings is returned when update is given nothing to change.
var ErrNoSettings = errors.New("No recognized settings") //nolint:staticcheck // shown to users verbatim

var (
	updateTenantID     string
	updateMacFiltering string
	updateSet          []string
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Override a tenant's settings",
	Long: `Define settings for a tenant so that it no longer uses the defaults.

--mac-filtering is enabled by yes, true or enabled (any case); any other
value disables it. Settings without a dedicated flag can be given with
--set KEY=VALUE.

Examples:
  netctl setting update --mac-filtering enabled
  netctl setting update --tenant-id 6b0c... --mac-filtering no`,
	Args: cobra.NoArgs,
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateTenantID, "tenant-id", "", "Owner tenant ID (default: the caller's tenant)")
	updateCmd.Flags().StringVar(&updateMacFiltering, "mac-filtering", "", "Enable/disable source MAC filtering on all ports")
	updateCmd.Flags().StringArrayVar(&updateSet, "set", nil, "Set a setting KEY=VALUE (repeatable)")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	settings, err := cmdutil.ParseAttributes(updateSet)
	if err != nil {
		return err
	}
	if updateMacFiltering != "" {
		settings["mac_filtering"] = cmdutil.ParseBool(updateMacFiltering)
	}
	if len(settings) == 0 {
		return ErrNoSettings
	}

	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	tenantID, err := tenantOrCaller(client, updateTenantID)
	if err != nil {
		return err
	}

	updated, err := client.UpdateSettings(tenantID, settings)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}

	return cmdutil.PrintResource(cmd.OutOrStdout(), updated, output.FieldTable(updated))
}
