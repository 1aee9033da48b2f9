package qos

import (
	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/internal/cli/output"
	"github.com/marmos91/netctl/pkg/apiclient"
	"github.com/marmos91/netctl/pkg/resource"
)

var listCmd = cmdutil.NewListCmd(cmdutil.ListSpec[apiclient.QoS]{
	Kind:  resource.QoS,
	Short: "List QoS policies",
	Long: `List QoS policies.

Examples:
  netctl qos list
  netctl qos list -o json`,
	Fetch: (*apiclient.Client).ListQoS,
	Table: func(items []apiclient.QoS) output.TableRenderer { return QoSList(items) },
})

// QoSList is a list of QoS policies for table rendering.
type QoSList []apiclient.QoS

// Headers implements TableRenderer.
func (ql QoSList) Headers() []string {
	return []string{"ID", "NAME", "DESCRIPTION"}
}

// Rows implements TableRenderer.
func (ql QoSList) Rows() [][]string {
	rows := make([][]string, 0, len(ql))
	for _, q := range ql {
		rows = append(rows, []string{q.ID, q.Name, q.Description})
	}
	return rows
}
