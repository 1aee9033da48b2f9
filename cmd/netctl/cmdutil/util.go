// Package cmdutil provides shared utilities for netctl commands.
package cmdutil

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/marmos91/netctl/internal/cli/credentials"
	"github.com/marmos91/netctl/internal/cli/output"
	"github.com/marmos91/netctl/internal/cli/prompt"
	"github.com/marmos91/netctl/internal/logger"
	"github.com/marmos91/netctl/pkg/apiclient"
	"github.com/marmos91/netctl/pkg/config"
	"github.com/marmos91/netctl/pkg/resolve"
)

// Flags stores global flag values accessible by subcommands.
var Flags = &GlobalFlags{}

// GlobalFlags holds the global flag values.
type GlobalFlags struct {
	ServerURL  string
	Token      string
	ConfigPath string
	Output     string
	NoColor    bool
	Verbose    bool
}

// LoadConfig loads the client configuration named by --config, or the
// default one.
func LoadConfig() (*config.Config, error) {
	return config.Load(Flags.ConfigPath)
}

// Logger builds the diagnostic logger for this invocation. --verbose
// forces DEBUG; otherwise the configured level applies.
func Logger() *slog.Logger {
	cfg := config.GetDefaultConfig()
	if loaded, err := LoadConfig(); err == nil {
		cfg = loaded
	}

	lc := logger.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Output:  cfg.Logging.Output,
		NoColor: Flags.NoColor,
	}
	if IsVerbose() {
		lc.Level = "DEBUG"
	}

	log, _, err := logger.New(lc)
	if err != nil {
		return logger.NewWithWriter(os.Stderr, lc.Level, lc.Format, false)
	}
	return log
}

// GetAuthenticatedClient returns an API client configured from the current context.
// It uses the --server and --token flags if provided, otherwise falls back to stored credentials.
// If the access token is expired but a refresh token exists, it will automatically refresh.
func GetAuthenticatedClient() (*apiclient.Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	opts := []apiclient.Option{
		apiclient.WithTimeout(cfg.Timeout),
		apiclient.WithLogger(Logger()),
	}

	// Check for explicit flags first
	if Flags.ServerURL != "" && Flags.Token != "" {
		return apiclient.New(Flags.ServerURL, opts...).WithToken(Flags.Token), nil
	}

	store, err := credentials.NewStore()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize credential store: %w", err)
	}

	ctx, err := store.GetCurrentContext()
	if err != nil {
		if Flags.Token == "" {
			return nil, credentials.ErrNotLoggedIn
		}
		ctx = &credentials.Context{}
	}

	url := ServerURL(ctx, cfg)
	if url == "" {
		return nil, fmt.Errorf("no server URL configured. Run 'netctl login --server <url>' first")
	}

	tok := ctx.AccessToken
	if Flags.Token != "" {
		tok = Flags.Token
	} else if ctx.IsExpired() && ctx.HasRefreshToken() {
		client := apiclient.New(url, opts...)
		newTokens, err := client.RefreshToken(ctx.RefreshToken)
		if err != nil {
			return nil, fmt.Errorf("session expired. Run 'netctl login' to re-authenticate")
		}

		if err := store.UpdateTokens(newTokens.AccessToken, newTokens.RefreshToken, newTokens.Expiry(time.Now())); err != nil {
			return nil, fmt.Errorf("failed to save refreshed tokens: %w", err)
		}

		tok = newTokens.AccessToken
	}

	if tok == "" {
		return nil, credentials.ErrNotLoggedIn
	}

	return apiclient.New(url, opts...).WithToken(tok), nil
}

// ServerURL picks the server URL: --server, then the context, then the
// configuration file or environment.
func ServerURL(ctx *credentials.Context, cfg *config.Config) string {
	switch {
	case Flags.ServerURL != "":
		return Flags.ServerURL
	case ctx != nil && ctx.ServerURL != "":
		return ctx.ServerURL
	case cfg != nil:
		return cfg.ServerURL
	default:
		return ""
	}
}

// Resolver returns a name-or-ID resolver backed by client.
func Resolver(client *apiclient.Client) *resolve.Resolver {
	return resolve.New(client.Catalog(), client.Logger())
}

// GetOutputFormatParsed returns the parsed output format. Without -o the
// configured default applies.
func GetOutputFormatParsed() (output.Format, error) {
	if Flags.Output != "" {
		return output.ParseFormat(Flags.Output)
	}
	cfg, err := LoadConfig()
	if err != nil {
		return output.FormatTable, nil
	}
	return output.ParseFormat(cfg.Output)
}

// IsColorDisabled returns whether color output is disabled.
func IsColorDisabled() bool {
	return Flags.NoColor
}

// IsVerbose returns whether verbose output is enabled.
func IsVerbose() bool {
	return Flags.Verbose
}

// PrintOutput prints data in the specified format (JSON, YAML, or table).
// For table format, it displays emptyMsg if data is empty, otherwise uses the tableRenderer.
func PrintOutput(w io.Writer, data any, isEmpty bool, emptyMsg string, tableRenderer output.TableRenderer) error {
	format, err := GetOutputFormatParsed()
	if err != nil {
		return err
	}

	if format == output.FormatTable && isEmpty {
		_, _ = fmt.Fprintln(w, emptyMsg)
		return nil
	}
	return output.NewPrinter(w, format, false).PrintWithTable(data, tableRenderer)
}

// PrintSuccess prints a success message if the output format is table.
func PrintSuccess(w io.Writer, msg string) {
	format, err := GetOutputFormatParsed()
	if err != nil || format != output.FormatTable {
		return
	}
	output.NewPrinter(w, format, !IsColorDisabled() && isTerminal(w)).Success(msg)
}

// PrintResourceWithSuccess prints a resource in the specified format.
// For table format, it displays a success message. For JSON/YAML, it outputs the resource.
// This is useful for update and similar operations.
func PrintResourceWithSuccess(w io.Writer, data any, successMsg string) error {
	format, err := GetOutputFormatParsed()
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(w, data)
	case output.FormatYAML:
		return output.PrintYAML(w, data)
	default:
		PrintSuccess(w, successMsg)
		return nil
	}
}

// PrintCreated is PrintResourceWithSuccess followed, in table format, by
// the FIELD/VALUE table of the created object.
func PrintCreated(w io.Writer, obj apiclient.Object, successMsg string) error {
	if err := PrintResourceWithSuccess(w, obj, successMsg); err != nil {
		return err
	}
	if format, _ := GetOutputFormatParsed(); format == output.FormatTable {
		return output.PrintTable(w, output.FieldTable(obj))
	}
	return nil
}

// PrintResource prints a resource in the specified format.
// For table format, it uses the provided tableRenderer. For JSON/YAML, it outputs the resource.
func PrintResource(w io.Writer, data any, tableRenderer output.TableRenderer) error {
	format, err := GetOutputFormatParsed()
	if err != nil {
		return err
	}

	return output.NewPrinter(w, format, false).PrintWithTable(data, tableRenderer)
}

// CreateError wraps a failed create of label. Conflicts and rejected
// request bodies are called out; the service's message is kept.
func CreateError(label string, err error) error {
	switch {
	case apiclient.IsConflict(err):
		return fmt.Errorf("%s already exists or conflicts with an existing one: %w", label, err)
	case apiclient.IsValidationError(err):
		return fmt.Errorf("invalid %s: %w", label, err)
	default:
		return fmt.Errorf("failed to create %s: %w", label, err)
	}
}

// RunDeleteWithConfirmation prompts for confirmation (unless force is true) and runs deleteFn.
func RunDeleteWithConfirmation(w io.Writer, resourceType, name string, force bool, deleteFn func() error) error {
	confirmed, err := prompt.ConfirmWithForce(fmt.Sprintf("Delete %s '%s'?", resourceType, name), force)
	if err != nil {
		return HandleAbort(w, err)
	}
	if !confirmed {
		_, _ = fmt.Fprintln(w, "Aborted.")
		return nil
	}

	if err := deleteFn(); err != nil {
		return err
	}

	PrintSuccess(w, fmt.Sprintf("Deleted %s: %s", resourceType, name))
	return nil
}

// ParseCommaSeparatedList parses a comma-separated string into a slice of trimmed strings.
func ParseCommaSeparatedList(s string) []string {
	if s == "" {
		return nil
	}
	var result []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}

// ParseKeyValues parses KEY=VALUE pairs. Later pairs win. The value may
// itself contain '='.
func ParseKeyValues(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid key=value pair %q", p)
		}
		out[key] = value
	}
	return out, nil
}

// ParseAttributes parses KEY=VALUE pairs into request attributes. "true"
// and "false" become booleans; every other value, numbers included, is sent
// as a string for the service to convert.
func ParseAttributes(pairs []string) (map[string]any, error) {
	kv, err := ParseKeyValues(pairs)
	if err != nil {
		return nil, err
	}
	attrs := make(map[string]any, len(kv))
	for k, v := range kv {
		attrs[k] = parseScalar(v)
	}
	return attrs, nil
}

func parseScalar(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	default:
		return s
	}
}

// ParseBool interprets yes/true/enabled (any case) as true and everything
// else as false.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "enabled":
		return true
	default:
		return false
	}
}

// BoolToYesNo converts a boolean to "yes" or "no" string.
func BoolToYesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// EmptyOr returns the value if not empty, otherwise returns the fallback.
func EmptyOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// HandleAbort checks if error is an abort (Ctrl+C) and prints a message.
// Returns nil for abort (user cancelled), otherwise returns the original error.
func HandleAbort(w io.Writer, err error) error {
	if prompt.IsAborted(err) {
		_, _ = fmt.Fprintln(w, "\nAborted.")
		return nil
	}
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && logger.IsTerminal(f.Fd())
}
