package portforwarding

import (
	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/internal/cli/output"
	"github.com/marmos91/netctl/pkg/apiclient"
	"github.com/marmos91/netctl/pkg/resource"
)

var listCmd = cmdutil.NewListCmd(cmdutil.ListSpec[apiclient.PortForwarding]{
	Kind:  resource.PortForwarding,
	Short: "List port forwarding mappings",
	Long: `List port forwarding mappings.

Examples:
  # List as table
  netctl portforwarding list

  # List as YAML
  netctl portforwarding list -o yaml`,
	Fetch: (*apiclient.Client).ListPortForwardings,
	Table: func(items []apiclient.PortForwarding) output.TableRenderer { return MappingList(items) },
})

// MappingList is a list of port forwarding mappings for table rendering.
type MappingList []apiclient.PortForwarding

// Headers implements TableRenderer.
func (ml MappingList) Headers() []string {
	return []string{"ID", "ROUTER ID", "INSIDE ADDR", "INSIDE PORT", "OUTSIDE PORT", "PROTOCOL"}
}

// Rows implements TableRenderer.
func (ml MappingList) Rows() [][]string {
	rows := make([][]string, 0, len(ml))
	for _, m := range ml {
		rows = append(rows, []string{
			m.ID,
			m.RouterID,
			m.InsideAddr,
			output.FormatValue(m.InsidePort),
			output.FormatValue(m.OutsidePort),
			m.Protocol,
		})
	}
	return rows
}
