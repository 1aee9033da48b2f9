package segmentrange

import (
	"strconv"

	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/internal/cli/output"
	"github.com/marmos91/netctl/pkg/apiclient"
	"github.com/marmos91/netctl/pkg/resource"
)

var listCmd = cmdutil.NewListCmd(cmdutil.ListSpec[apiclient.ProviderNetRange]{
	Kind:  resource.ProviderNetRange,
	Short: "List segmentation id ranges",
	Long: `List segmentation id ranges, ordered by provider network name and
then by minimum unless --sort-key is given.

Examples:
  netctl providernet range list
  netctl providernet range list -o json`,
	SortKeys: []string{"providernet_name", "minimum"},
	Fetch:    (*apiclient.Client).ListProviderNetRanges,
	Table:    func(items []apiclient.ProviderNetRange) output.TableRenderer { return RangeList(items) },
})

// RangeList is a list of segmentation ranges for table rendering.
type RangeList []apiclient.ProviderNetRange

// Headers implements TableRenderer.
func (rl RangeList) Headers() []string {
	return []string{"ID", "NAME", "PROVIDERNET", "TYPE", "MINIMUM", "MAXIMUM", "ATTRIBUTES"}
}

// Rows implements TableRenderer.
func (rl RangeList) Rows() [][]string {
	rows := make([][]string, 0, len(rl))
	for _, r := range rl {
		attributes := ""
		if r.Vxlan != nil {
			attributes = output.CompactJSON(r.Vxlan)
		}
		rows = append(rows, []string{
			r.ID,
			r.Name,
			r.ProviderNetName,
			r.ProviderNetType,
			strconv.Itoa(r.Minimum),
			strconv.Itoa(r.Maximum),
			attributes,
		})
	}
	return rows
}
