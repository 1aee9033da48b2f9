package cmdutil

import (
	"fmt"
	"strings"

	"github.com/marmos91/netctl/internal/cli/output"
	"github.com/marmos91/netctl/pkg/apiclient"
	"github.com/marmos91/netctl/pkg/resource"
	"github.com/spf13/cobra"
)

// ============================================================================
// Generic resource verbs
// ============================================================================
//
// show, delete and list behave the same for every resource kind; only the
// kind descriptor and the list columns differ.

// ListFlags holds the ordering and field selection flags of list commands.
type ListFlags struct {
	SortKeys []string
	SortDirs []string
	Fields   []string
}

// Register adds the list flags to cmd.
func (f *ListFlags) Register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.SortKeys, "sort-key", nil, "Sort by attribute (repeatable)")
	cmd.Flags().StringArrayVar(&f.SortDirs, "sort-dir", nil, "Sort direction asc|desc, paired with --sort-key (repeatable)")
	cmd.Flags().StringArrayVarP(&f.Fields, "field", "F", nil, "Only fetch the given attribute (repeatable)")
}

// Options builds list options from the flags. defaultKeys are sorted
// ascending when no --sort-key is given.
func (f *ListFlags) Options(defaultKeys ...string) (*apiclient.ListOptions, error) {
	opts := &apiclient.ListOptions{Fields: f.Fields}

	if len(f.SortDirs) > len(f.SortKeys) {
		return nil, fmt.Errorf("--sort-dir given %d times but --sort-key only %d", len(f.SortDirs), len(f.SortKeys))
	}
	for _, d := range f.SortDirs {
		if d != "asc" && d != "desc" {
			return nil, fmt.Errorf("invalid sort direction %q (valid: asc, desc)", d)
		}
	}

	if len(f.SortKeys) == 0 {
		opts.SortKeys = defaultKeys
		for range defaultKeys {
			opts.SortDirs = append(opts.SortDirs, "asc")
		}
		return opts, nil
	}

	opts.SortKeys = f.SortKeys
	opts.SortDirs = append([]string(nil), f.SortDirs...)
	for len(opts.SortDirs) < len(opts.SortKeys) {
		opts.SortDirs = append(opts.SortDirs, "asc")
	}
	return opts, nil
}

// ListSpec describes a list command.
type ListSpec[T any] struct {
	Kind  resource.Kind
	Short string
	Long  string
	// SortKeys orders the listing when the user gives no --sort-key.
	SortKeys []string
	Fetch    func(*apiclient.Client, *apiclient.ListOptions) ([]T, error)
	Table    func([]T) output.TableRenderer
}

// NewListCmd builds a list command from spec.
func NewListCmd[T any](spec ListSpec[T]) *cobra.Command {
	var flags ListFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: spec.Short,
		Long:  spec.Long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.Options(spec.SortKeys...)
			if err != nil {
				return err
			}

			client, err := GetAuthenticatedClient()
			if err != nil {
				return err
			}

			items, err := spec.Fetch(client, opts)
			if err != nil {
				return fmt.Errorf("failed to list %s: %w", spec.Kind.Plural, err)
			}

			return PrintOutput(cmd.OutOrStdout(), items, len(items) == 0,
				fmt.Sprintf("No %s found.", spec.Kind.Plural), spec.Table(items))
		},
	}
	flags.Register(cmd)
	return cmd
}

// NewShowCmd builds "show <name-or-id>" for kind. Every attribute the
// service returns is printed.
func NewShowCmd(kind resource.Kind, label, long string) *cobra.Command {
	return &cobra.Command{
		Use:   "show " + argName(kind),
		Short: "Show a " + label,
		Long:  long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := GetAuthenticatedClient()
			if err != nil {
				return err
			}

			id, err := Resolver(client).Resolve(kind, args[0])
			if err != nil {
				return err
			}

			obj, err := client.GetObject(kind, id)
			if err != nil {
				return fmt.Errorf("failed to get %s: %w", label, err)
			}

			return PrintResource(cmd.OutOrStdout(), obj, output.FieldTable(obj))
		},
	}
}

// NewDeleteCmd builds "delete <name-or-id>" for kind with a confirmation
// prompt that --force skips.
func NewDeleteCmd(kind resource.Kind, label, long string) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete " + argName(kind),
		Short: "Delete a " + label,
		Long:  long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := GetAuthenticatedClient()
			if err != nil {
				return err
			}

			id, err := Resolver(client).Resolve(kind, args[0])
			if err != nil {
				return err
			}

			return RunDeleteWithConfirmation(cmd.OutOrStdout(), kind.Name, args[0], force, func() error {
				if err := client.DeleteObject(kind, id); err != nil {
					return fmt.Errorf("failed to delete %s: %w", label, err)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	return cmd
}

func argName(kind resource.Kind) string {
	name := strings.ReplaceAll(kind.Name, "_", "-")
	if kind.AllowNames {
		return "<" + name + ">"
	}
	return "<" + name + "-id>"
}
