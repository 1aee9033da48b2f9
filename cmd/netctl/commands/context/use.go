package context

import (
	"errors"
	"fmt"

	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/internal/cli/credentials"
	"github.com/marmos91/netctl/internal/cli/prompt"
	"github.com/spf13/cobra"
)

var useCmd = &cobra.Command{
	Use:   "use [name]",
	Short: "Switch to a different context",
	Long: `Switch to a different server context.

This changes the active context used for subsequent commands. Without a
name you are asked to pick one of the saved contexts.

Examples:
  # Switch to context named "production"
  netctl context use production

  # Pick a context interactively
  netctl context use`,
	Args: cobra.MaximumNArgs(1),
	RunE: runContextUse,
}

func runContextUse(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	store, err := credentials.NewStore()
	if err != nil {
		return fmt.Errorf("failed to initialize credential store: %w", err)
	}

	var contextName string
	if len(args) == 1 {
		contextName = args[0]
	} else {
		names := store.ListContexts()
		if len(names) == 0 {
			return fmt.Errorf("no contexts configured. Use 'netctl login --server <url>' to create one")
		}
		options := make([]prompt.SelectOption, 0, len(names))
		for _, name := range names {
			ctx, _ := store.GetContext(name)
			options = append(options, prompt.SelectOption{
				Label: fmt.Sprintf("%s (%s)", name, ctx.ServerURL),
				Value: name,
			})
		}
		contextName, err = prompt.Select("Context", options)
		if err != nil {
			return cmdutil.HandleAbort(w, err)
		}
	}

	if err := store.UseContext(contextName); err != nil {
		if errors.Is(err, credentials.ErrContextNotFound) {
			return fmt.Errorf("context '%s' not found\n\n"+
				"List available contexts:\n"+
				"  netctl context list", contextName)
		}
		return fmt.Errorf("failed to switch context: %w", err)
	}

	_, _ = fmt.Fprintf(w, "Switched to context: %s\n", contextName)
	return nil
}
