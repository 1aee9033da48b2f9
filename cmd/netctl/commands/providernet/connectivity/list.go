package connectivity

import (
	"fmt"

	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/pkg/resource"
	"github.com/spf13/cobra"
)

var (
	listProviderNet string
	listHost        string
	listFlags       cmdutil.ListFlags
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List connectivity test results",
	Long: `List provider network connectivity test results.

Results that share provider network, host, status and message are shown
on one line with their segmentation ids collapsed into ranges, e.g.
"10-12, 20".

Examples:
  netctl providernet connectivity list
  netctl providernet connectivity list --providernet group0-data0 --host compute-0`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listProviderNet, "providernet", "", "Only results for this provider network")
	listCmd.Flags().StringVar(&listHost, "host", "", "Only results for this host name")
	listFlags.Register(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	opts, err := listFlags.Options("status", "hostname", "providernet", "audit_uuid")
	if err != nil {
		return err
	}

	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	providerNetID, err := cmdutil.Resolver(client).ResolveOptional(resource.ProviderNet, listProviderNet)
	if err != nil {
		return err
	}

	opts.Filters = map[string]string{}
	if providerNetID != "" {
		opts.Filters["providernet_id"] = providerNetID
	}
	if listHost != "" {
		opts.Filters["host_name"] = listHost
	}

	results, err := client.ListConnectivityResults(opts)
	if err != nil {
		return fmt.Errorf("failed to list connectivity results: %w", err)
	}

	grouped := ResultList(groupResults(results))
	return cmdutil.PrintOutput(cmd.OutOrStdout(), grouped, len(grouped) == 0,
		"No connectivity test results found.", grouped)
}
