package commands

import (
	"fmt"

	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/internal/cli/credentials"
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear stored credentials",
	Long: `Clear stored credentials for the current context.

The session is revoked on the server when it is reachable. The server URL
and context configuration are kept for easy re-login.

Examples:
  # Logout from current context
  netctl logout`,
	Args: cobra.NoArgs,
	RunE: runLogout,
}

func runLogout(cmd *cobra.Command, args []string) error {
	store, err := credentials.NewStore()
	if err != nil {
		return fmt.Errorf("failed to initialize credential store: %w", err)
	}

	contextName := store.GetCurrentContextName()
	if contextName == "" {
		return fmt.Errorf("not logged in - no current context")
	}

	if client, err := cmdutil.GetAuthenticatedClient(); err == nil {
		if err := client.Logout(); err != nil {
			client.Logger().Debug("server logout failed", "context", contextName, "error", err)
		}
	}

	if err := store.ClearCurrentContext(); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged out from context: %s\n", contextName)
	return nil
}
