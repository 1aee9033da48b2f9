package commands

import (
	"fmt"
	"net/url"
	"time"

	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/internal/cli/credentials"
	"github.com/marmos91/netctl/internal/cli/prompt"
	"github.com/marmos91/netctl/pkg/apiclient"
	"github.com/spf13/cobra"
)

var (
	loginUsername string
	loginPassword string
	loginTenantID string
	loginContext  string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with the networking service",
	Long: `Authenticate with a networking service and store credentials.

On first login, you must specify the server URL. Subsequent logins will
use the stored server URL unless overridden.

Examples:
  # First login to a server
  netctl login --server http://controller:9696 --username admin

  # Login with password on command line (less secure)
  netctl login --server http://controller:9696 -u admin -p secret

  # Login into a named context
  netctl login --server https://lab:9696 -u admin --context lab

  # Re-login to stored server
  netctl login`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password")
	loginCmd.Flags().StringVar(&loginTenantID, "tenant-id", "", "Tenant to scope the session to")
	loginCmd.Flags().StringVar(&loginContext, "context", "", "Context name (default: derived from the server URL)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	store, err := credentials.NewStore()
	if err != nil {
		return fmt.Errorf("failed to initialize credential store: %w", err)
	}

	current, _ := store.GetCurrentContext()
	cfg, err := cmdutil.LoadConfig()
	if err != nil {
		return err
	}

	serverURLStr := cmdutil.ServerURL(current, cfg)
	if serverURLStr == "" {
		return fmt.Errorf("no server URL specified and no saved context found\n\n" +
			"Specify server URL:\n" +
			"  netctl login --server http://controller:9696")
	}

	parsedURL, err := url.Parse(serverURLStr)
	if err != nil {
		return fmt.Errorf("invalid server URL: %w", err)
	}
	if parsedURL.Scheme == "" {
		parsedURL.Scheme = "http"
		serverURLStr = parsedURL.String()
	}

	username := loginUsername
	if username == "" {
		username, err = prompt.InputRequired("Username")
		if err != nil {
			return cmdutil.HandleAbort(w, err)
		}
	}

	password := loginPassword
	if password == "" {
		password, err = prompt.Password("Password")
		if err != nil {
			return cmdutil.HandleAbort(w, err)
		}
	}

	client := apiclient.New(serverURLStr,
		apiclient.WithTimeout(cfg.Timeout),
		apiclient.WithLogger(cmdutil.Logger()))

	_, _ = fmt.Fprintf(w, "Logging in to %s as %s...\n", serverURLStr, username)
	tokens, err := client.Login(&apiclient.LoginRequest{
		Username: username,
		Password: password,
		TenantID: loginTenantID,
	})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	contextName := loginContext
	if contextName == "" {
		contextName = store.GetCurrentContextName()
		if current == nil || current.ServerURL != serverURLStr {
			contextName = credentials.GenerateContextName(serverURLStr)
		}
	}

	ctx := &credentials.Context{
		ServerURL:    serverURLStr,
		Username:     username,
		TenantID:     tokens.TenantID,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    tokens.Expiry(time.Now()),
	}
	if ctx.TenantID == "" {
		ctx.TenantID = loginTenantID
	}

	if err := store.SetContext(contextName, ctx); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}

	if err := store.UseContext(contextName); err != nil {
		return fmt.Errorf("failed to set current context: %w", err)
	}

	_, _ = fmt.Fprintf(w, "Logged in successfully as %s\n", username)
	_, _ = fmt.Fprintf(w, "Context: %s\n", contextName)
	_, _ = fmt.Fprintf(w, "Credentials saved to: %s\n", store.Path())

	return nil
}
