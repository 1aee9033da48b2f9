package qos

import (
	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/spf13/cobra"
)

var (
	createFlags    policyFlags
	createTenantID string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a QoS policy",
	Long: `Create a QoS policy.

Examples:
  netctl qos create --name gold --description "low latency" --dscp dscp=46
  netctl qos create --name bulk --scheduler weight=4 --tenant-id 6b0c...`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

func init() {
	createFlags.register(createCmd)
	createCmd.Flags().StringVar(&createTenantID, "tenant-id", "", "Owner tenant ID")
}

func runCreate(cmd *cobra.Command, args []string) error {
	req, err := createFlags.request()
	if err != nil {
		return err
	}
	req.TenantID = createTenantID

	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	q, err := client.CreateQoS(req)
	if err != nil {
		return cmdutil.CreateError("QoS policy", err)
	}

	return cmdutil.PrintCreated(cmd.OutOrStdout(), q, "Created a new qos:")
}
