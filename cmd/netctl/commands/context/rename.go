package context

import (
	"errors"
	"fmt"

	"github.com/marmos91/netctl/internal/cli/credentials"
	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename <old-name> <new-name>",
	Short: "Give a saved controller login a new name",
	Long: `Rename a context without logging in again.

Login names contexts after the controller host and port. Renaming keeps the
stored URL, username, tenant and tokens, and the context stays selected if
it was the current one.

Examples:
  # Call the login for controller.example.com:9696 "prod"
  netctl context rename controller-example-com-9696 prod`,
	Args: cobra.ExactArgs(2),
	RunE: runContextRename,
}

func runContextRename(cmd *cobra.Command, args []string) error {
	from, to := args[0], args[1]

	store, err := credentials.NewStore()
	if err != nil {
		return fmt.Errorf("failed to initialize credential store: %w", err)
	}

	err = store.RenameContext(from, to)
	switch {
	case err == nil:
	case errors.Is(err, credentials.ErrContextNotFound):
		return fmt.Errorf("context '%s' not found", from)
	case errors.Is(err, credentials.ErrContextExists):
		return fmt.Errorf("context '%s' already exists", to)
	default:
		return fmt.Errorf("failed to rename context: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Context renamed: %s -> %s\n", from, to)
	return nil
}
