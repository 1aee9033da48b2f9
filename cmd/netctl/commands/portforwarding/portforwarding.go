// Package portforwarding implements port forwarding commands for netctl.
package portforwarding

import (
	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/pkg/apiclient"
	"github.com/marmos91/netctl/pkg/resource"
	"github.com/spf13/cobra"
)

// Cmd is the parent command for port forwarding mappings.
var Cmd = &cobra.Command{
	Use:     "portforwarding",
	Aliases: []string{"pf"},
	Short:   "Port forwarding management",
	Long: `Manage port forwarding mappings between a router's public address and
private inside addresses.

Examples:
  # List mappings
  netctl portforwarding list

  # Forward TCP 8080 on router edge to 10.0.0.5:80
  netctl portforwarding create edge --inside-addr 10.0.0.5 --inside-port 80 --outside-port 8080 --protocol tcp`,
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(cmdutil.NewShowCmd(resource.PortForwarding, "port forwarding", `Show a port forwarding mapping.

Examples:
  netctl portforwarding show 3f1d2c4b-...`))
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(updateCmd)
	Cmd.AddCommand(cmdutil.NewDeleteCmd(resource.PortForwarding, "port forwarding", `Delete a port forwarding mapping.

Examples:
  netctl portforwarding delete 3f1d2c4b-... --force`))
}

// mappingFlags holds the attributes shared by create and update.
type mappingFlags struct {
	insideAddr  string
	insidePort  string
	outsidePort string
	protocol    string
	description string
}

func (f *mappingFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.insideAddr, "inside-addr", "", "Private IP address")
	cmd.Flags().StringVar(&f.insidePort, "inside-port", "", "Private layer4 protocol port")
	cmd.Flags().StringVar(&f.outsidePort, "outside-port", "", "Public layer4 protocol port")
	cmd.Flags().StringVar(&f.protocol, "protocol", "", "Layer4 protocol (tcp|udp)")
	cmd.Flags().StringVar(&f.description, "description", "", "User specified text description")
}

// request builds a body holding only the attributes that were given.
func (f *mappingFlags) request() *apiclient.PortForwardingRequest {
	return &apiclient.PortForwardingRequest{
		InsideAddr:  f.insideAddr,
		InsidePort:  f.insidePort,
		OutsidePort: f.outsidePort,
		Protocol:    f.protocol,
		Description: f.description,
	}
}
