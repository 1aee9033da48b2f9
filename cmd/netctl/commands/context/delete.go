package context

import (
	"errors"
	"fmt"

	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/internal/cli/credentials"
	"github.com/spf13/cobra"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Forget a saved controller login",
	Long: `Remove a context from the credentials file.

The context's controller URL, username, tenant and tokens are discarded.
Nothing is changed on the controller. Deleting the current context leaves
no context selected; run "netctl context use" or "netctl login" afterwards.

Examples:
  # Forget the login saved for controller.example.com:9696
  netctl context delete controller-example-com-9696

  # Skip the confirmation prompt
  netctl context delete lab -f`,
	Args: cobra.ExactArgs(1),
	RunE: runContextDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip confirmation")
}

func runContextDelete(cmd *cobra.Command, args []string) error {
	name := args[0]

	store, err := credentials.NewStore()
	if err != nil {
		return fmt.Errorf("failed to initialize credential store: %w", err)
	}

	if _, err = store.GetContext(name); errors.Is(err, credentials.ErrContextNotFound) {
		return fmt.Errorf("context '%s' not found", name)
	} else if err != nil {
		return fmt.Errorf("failed to get context: %w", err)
	}
	current := store.GetCurrentContextName() == name

	w := cmd.OutOrStdout()
	deleted := false
	err = cmdutil.RunDeleteWithConfirmation(w, "context", name, deleteForce, func() error {
		if err := store.DeleteContext(name); err != nil {
			return err
		}
		deleted = true
		return nil
	})
	if err != nil {
		return err
	}
	if deleted && current {
		_, _ = fmt.Fprintln(w, "No context is selected now. Run 'netctl context use <name>' to pick one.")
	}
	return nil
}
