package connectivity

import (
	"github.com/marmos91/netctl/pkg/apiclient"
	"github.com/marmos91/netctl/pkg/segrange"
)

// Result is one row of grouped connectivity results: every segmentation id
// that shares provider network, host, status and message.
type Result struct {
	ProviderNetID   string `json:"providernet_id" yaml:"providernet_id"`
	ProviderNetName string `json:"providernet_name" yaml:"providernet_name"`
	Type            string `json:"type" yaml:"type"`
	HostName        string `json:"host_name" yaml:"host_name"`
	SegmentationIDs string `json:"segmentation_ids" yaml:"segmentation_ids"`
	Status          string `json:"status" yaml:"status"`
	Message         string `json:"message,omitempty" yaml:"message,omitempty"`
}

type groupKey struct {
	providerNetID   string
	providerNetName string
	kind            string
	hostName        string
	status          string
	message         string
}

// groupResults folds results into one Result per group, in the order each
// group first appears.
func groupResults(results []apiclient.ConnectivityResult) []Result {
	var order []groupKey
	ids := make(map[groupKey][]string)

	for _, r := range results {
		key := groupKey{
			providerNetID:   r.ProviderNetID,
			providerNetName: r.ProviderNetName,
			kind:            r.Type,
			hostName:        r.HostName,
			status:          r.Status,
			message:         r.Message,
		}
		if _, seen := ids[key]; !seen {
			order = append(order, key)
		}
		ids[key] = append(ids[key], string(r.SegmentationID))
	}

	grouped := make([]Result, 0, len(order))
	for _, key := range order {
		grouped = append(grouped, Result{
			ProviderNetID:   key.providerNetID,
			ProviderNetName: key.providerNetName,
			Type:            key.kind,
			HostName:        key.hostName,
			SegmentationIDs: segrange.FormatGroupedRanges(ids[key]),
			Status:          key.status,
			Message:         key.message,
		})
	}
	return grouped
}

// ResultList is a list of grouped results for table rendering. The MESSAGE
// column is only shown when some result carries a message.
type ResultList []Result

func (rl ResultList) hasMessages() bool {
	for _, r := range rl {
		if r.Message != "" {
			return true
		}
	}
	return false
}

// Headers implements TableRenderer.
func (rl ResultList) Headers() []string {
	headers := []string{"PROVIDERNET ID", "PROVIDERNET NAME", "TYPE", "HOST NAME", "SEGMENTATION IDS", "STATUS"}
	if rl.hasMessages() {
		headers = append(headers, "MESSAGE")
	}
	return headers
}

// Rows implements TableRenderer.
func (rl ResultList) Rows() [][]string {
	withMessage := rl.hasMessages()
	rows := make([][]string, 0, len(rl))
	for _, r := range rl {
		row := []string{r.ProviderNetID, r.ProviderNetName, r.Type, r.HostName, r.SegmentationIDs, r.Status}
		if withMessage {
			row = append(row, r.Message)
		}
		rows = append(rows, row)
	}
	return rows
}
