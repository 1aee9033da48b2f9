package host

import (
	"strconv"

	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/internal/cli/output"
	"github.com/marmos91/netctl/pkg/apiclient"
	"github.com/marmos91/netctl/pkg/resource"
)

var listCmd = cmdutil.NewListCmd(cmdutil.ListSpec[apiclient.Host]{
	Kind:  resource.Host,
	Short: "List hosts",
	Long: `List hosts with their availability and resource counts.

Examples:
  # List hosts as table
  netctl host list

  # Sort by name, descending
  netctl host list --sort-key name --sort-dir desc

  # List as JSON
  netctl host list -o json`,
	Fetch: (*apiclient.Client).ListHosts,
	Table: func(hosts []apiclient.Host) output.TableRenderer { return HostList(hosts) },
})

// HostList is a list of hosts for table rendering.
type HostList []apiclient.Host

// Headers implements TableRenderer.
func (hl HostList) Headers() []string {
	return []string{"ID", "NAME", "AVAILABILITY", "AGENTS", "SUBNETS", "ROUTERS", "PORTS"}
}

// Rows implements TableRenderer.
func (hl HostList) Rows() [][]string {
	rows := make([][]string, 0, len(hl))
	for _, h := range hl {
		rows = append(rows, []string{
			h.ID,
			h.Name,
			h.Availability,
			agentCount(h.Agents),
			strconv.Itoa(h.Subnets),
			strconv.Itoa(h.Routers),
			strconv.Itoa(h.Ports),
		})
	}
	return rows
}

// agentCount renders the number of agents, or nothing when the service
// did not report them.
func agentCount(agents []map[string]any) string {
	if agents == nil {
		return ""
	}
	return strconv.Itoa(len(agents))
}
