package context

import (
	"fmt"
	"time"

	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/internal/cli/credentials"
	"github.com/marmos91/netctl/internal/cli/timeutil"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configured contexts",
	Long: `List all configured server contexts.

Shows the context name, server URL, username and tenant for each saved
context. The current context is marked with an asterisk (*).

Examples:
  # List contexts as table
  netctl context list

  # List as JSON
  netctl context list -o json`,
	Args: cobra.NoArgs,
	RunE: runContextList,
}

// ContextInfo represents context information for output.
type ContextInfo struct {
	Name      string    `json:"name" yaml:"name"`
	Current   bool      `json:"current" yaml:"current"`
	ServerURL string    `json:"server_url" yaml:"server_url"`
	Username  string    `json:"username,omitempty" yaml:"username,omitempty"`
	TenantID  string    `json:"tenant_id,omitempty" yaml:"tenant_id,omitempty"`
	LoggedIn  bool      `json:"logged_in" yaml:"logged_in"`
	ExpiresAt time.Time `json:"expires_at,omitzero" yaml:"expires_at,omitempty"`
}

func newContextInfo(name string, current bool, ctx *credentials.Context) ContextInfo {
	return ContextInfo{
		Name:      name,
		Current:   current,
		ServerURL: ctx.ServerURL,
		Username:  ctx.Username,
		TenantID:  ctx.TenantID,
		LoggedIn:  ctx.AccessToken != "" && (!ctx.IsExpired() || ctx.HasRefreshToken()),
		ExpiresAt: ctx.Expiry(),
	}
}

// ContextList is a list of contexts for table rendering.
type ContextList []ContextInfo

// Headers implements TableRenderer.
func (cl ContextList) Headers() []string {
	return []string{"", "NAME", "SERVER", "USER", "TENANT", "LOGGED IN", "EXPIRES"}
}

// Rows implements TableRenderer.
func (cl ContextList) Rows() [][]string {
	now := time.Now()
	rows := make([][]string, 0, len(cl))
	for _, c := range cl {
		current := ""
		if c.Current {
			current = "*"
		}
		expires := "-"
		if c.LoggedIn {
			expires = timeutil.FormatExpiry(c.ExpiresAt, now)
		}
		rows = append(rows, []string{
			current, c.Name, c.ServerURL,
			cmdutil.EmptyOr(c.Username, "-"),
			cmdutil.EmptyOr(c.TenantID, "-"),
			cmdutil.BoolToYesNo(c.LoggedIn),
			expires,
		})
	}
	return rows
}

func runContextList(cmd *cobra.Command, args []string) error {
	store, err := credentials.NewStore()
	if err != nil {
		return fmt.Errorf("failed to initialize credential store: %w", err)
	}

	contextNames := store.ListContexts()
	currentContext := store.GetCurrentContextName()

	contexts := make(ContextList, 0, len(contextNames))
	for _, name := range contextNames {
		ctx, err := store.GetContext(name)
		if err != nil {
			continue
		}
		contexts = append(contexts, newContextInfo(name, name == currentContext, ctx))
	}

	return cmdutil.PrintOutput(cmd.OutOrStdout(), contexts, len(contexts) == 0,
		"No contexts configured. Use 'netctl login --server <url>' to create one.", contexts)
}
