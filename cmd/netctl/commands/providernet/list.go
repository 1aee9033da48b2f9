package providernet

import (
	"strconv"
	"strings"

	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/internal/cli/output"
	"github.com/marmos91/netctl/pkg/apiclient"
	"github.com/marmos91/netctl/pkg/resource"
)

var listCmd = cmdutil.NewListCmd(cmdutil.ListSpec[apiclient.ProviderNet]{
	Kind:  resource.ProviderNet,
	Short: "List provider networks",
	Long: `List provider networks with their segmentation id ranges.

Examples:
  # List as table
  netctl providernet list

  # Sort by type, then name
  netctl providernet list --sort-key type --sort-key name`,
	Fetch: (*apiclient.Client).ListProviderNets,
	Table: func(items []apiclient.ProviderNet) output.TableRenderer { return ProviderNetList(items) },
})

// ProviderNetList is a list of provider networks for table rendering.
type ProviderNetList []apiclient.ProviderNet

// Headers implements TableRenderer.
func (pl ProviderNetList) Headers() []string {
	return []string{"ID", "NAME", "TYPE", "MTU", "RANGES"}
}

// Rows implements TableRenderer.
func (pl ProviderNetList) Rows() [][]string {
	rows := make([][]string, 0, len(pl))
	for _, pn := range pl {
		rows = append(rows, []string{pn.ID, pn.Name, pn.Type, strconv.Itoa(pn.MTU), formatRanges(pn.Ranges)})
	}
	return rows
}

// formatRanges renders one {"name","minimum","maximum"} object per line.
func formatRanges(ranges []apiclient.ProviderNetRange) string {
	lines := make([]string, 0, len(ranges))
	for _, r := range ranges {
		lines = append(lines, output.CompactJSON(struct {
			Name    string `json:"name"`
			Minimum int    `json:"minimum"`
			Maximum int    `json:"maximum"`
		}{r.Name, r.Minimum, r.Maximum}))
	}
	return strings.Join(lines, "\n")
}
