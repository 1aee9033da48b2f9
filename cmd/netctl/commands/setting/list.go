package setting

import (
	"fmt"
	"sort"

	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/internal/cli/output"
	"github.com/marmos91/netctl/pkg/apiclient"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tenant settings",
	Long: `List the settings of every tenant that does not use the defaults.

Examples:
  netctl setting list
  netctl setting list -o yaml`,
	Args: cobra.NoArgs,
	RunE: runList,
}

// SettingList is a list of tenant settings for table rendering. Its
// columns are the sorted attributes of the first entry.
type SettingList []apiclient.Object

func (sl SettingList) columns() []string {
	if len(sl) == 0 {
		return nil
	}
	keys := make([]string, 0, len(sl[0]))
	for k := range sl[0] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Headers implements TableRenderer.
func (sl SettingList) Headers() []string {
	return sl.columns()
}

// Rows implements TableRenderer.
func (sl SettingList) Rows() [][]string {
	columns := sl.columns()
	rows := make([][]string, 0, len(sl))
	for _, s := range sl {
		row := make([]string, 0, len(columns))
		for _, c := range columns {
			row = append(row, output.FormatValue(s[c]))
		}
		rows = append(rows, row)
	}
	return rows
}

func runList(cmd *cobra.Command, args []string) error {
	client, err := cmdutil.GetAuthenticatedClient()
	if err != nil {
		return err
	}

	settings, err := client.ListSettings()
	if err != nil {
		return fmt.Errorf("failed to list settings: %w", err)
	}

	return cmdutil.PrintOutput(cmd.OutOrStdout(), settings, len(settings) == 0,
		"No settings found.", SettingList(settings))
}
