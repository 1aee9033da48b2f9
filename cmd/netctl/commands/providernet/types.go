package providernet

import (
	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/internal/cli/output"
	"github.com/marmos91/netctl/pkg/apiclient"
	"github.com/marmos91/netctl/pkg/resource"
	"github.com/spf13/cobra"
)

var typesCmd = func() *cobra.Command {
	cmd := cmdutil.NewListCmd(cmdutil.ListSpec[apiclient.ProviderNetType]{
		Kind:  resource.ProviderNetType,
		Short: "List provider network types",
		Long: `List the provider network types supported by the service.

Examples:
  netctl providernet types`,
		Fetch: (*apiclient.Client).ListProviderNetTypes,
		Table: func(items []apiclient.ProviderNetType) output.TableRenderer { return TypeList(items) },
	})
	cmd.Use = "types"
	return cmd
}()

// TypeList is a list of provider network types for table rendering.
type TypeList []apiclient.ProviderNetType

// Headers implements TableRenderer.
func (tl TypeList) Headers() []string {
	return []string{"TYPE", "DESCRIPTION"}
}

// Rows implements TableRenderer.
func (tl TypeList) Rows() [][]string {
	rows := make([][]string, 0, len(tl))
	for _, t := range tl {
		rows = append(rows, []string{t.Type, t.Description})
	}
	return rows
}
