package portforwarding

import (
	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/pkg/resource"
	"github.com/spf13/cobra"
)

var createFlags mappingFlags

var createCmd = &cobra.Command{
	Use:   "create <router>",
	Short: "Create a port forwarding mapping",
	Long: `Create a port forwarding mapping on a router.

The router can be given by ID or name.

Examples:
  netctl portforwarding create edge --inside-addr 10.0.0.5 --inside-port 22 --outside-port 2222 --protocol tcp`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	createFlags.register(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	routerID, err := cmdutil.Resolver(client).Resolve(resource.Router, args[0])
	if err != nil {
		return err
	}

	req := createFlags.request()
	req.RouterID = routerID

	pf, err := client.CreatePortForwarding(req)
	if err != nil {
		return cmdutil.CreateError("port forwarding", err)
	}

	return cmdutil.PrintCreated(cmd.OutOrStdout(), pf, "Created a new portforwarding:")
}
