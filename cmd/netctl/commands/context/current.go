package context

import (
	"fmt"
	"time"

	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/internal/cli/credentials"
	"github.com/marmos91/netctl/internal/cli/output"
	"github.com/marmos91/netctl/internal/cli/timeutil"
	"github.com/spf13/cobra"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show current context",
	Long: `Display information about the current active context.

Examples:
  # Show current context
  netctl context current

  # Show as JSON
  netctl context current -o json`,
	Args: cobra.NoArgs,
	RunE: runContextCurrent,
}

func runContextCurrent(cmd *cobra.Command, args []string) error {
	store, err := credentials.NewStore()
	if err != nil {
		return fmt.Errorf("failed to initialize credential store: %w", err)
	}

	contextName := store.GetCurrentContextName()
	if contextName == "" {
		return fmt.Errorf("no current context set\n\n" +
			"Login to a server first:\n" +
			"  netctl login --server http://controller:9696")
	}

	ctx, err := store.GetContext(contextName)
	if err != nil {
		return fmt.Errorf("failed to get context: %w", err)
	}

	info := newContextInfo(contextName, true, ctx)

	format, err := cmdutil.GetOutputFormatParsed()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch format {
	case output.FormatJSON:
		return output.PrintJSON(w, info)
	case output.FormatYAML:
		return output.PrintYAML(w, info)
	default:
		_, _ = fmt.Fprintf(w, "Current context: %s\n", contextName)
		_, _ = fmt.Fprintf(w, "  Server:    %s\n", ctx.ServerURL)
		_, _ = fmt.Fprintf(w, "  User:      %s\n", cmdutil.EmptyOr(ctx.Username, "-"))
		_, _ = fmt.Fprintf(w, "  Tenant:    %s\n", cmdutil.EmptyOr(ctx.TenantID, "-"))
		if info.LoggedIn {
			_, _ = fmt.Fprintf(w, "  Status:    Logged in\n")
			_, _ = fmt.Fprintf(w, "  Expires:   %s\n", timeutil.FormatExpiry(info.ExpiresAt, time.Now()))
		} else {
			_, _ = fmt.Fprintf(w, "  Status:    Not logged in\n")
		}
	}

	return nil
}
