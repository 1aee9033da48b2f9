// Package credentials stores netctl server contexts and their tokens.
package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// DefaultConfigDir is the directory under the user config home.
	DefaultConfigDir = "netctl"
	// CredentialsFileName is the name of the credentials file.
	CredentialsFileName = "credentials.json"
	// FilePermissions for credential files (read/write for owner only).
	FilePermissions = 0600
	// DirPermissions for config directories.
	DirPermissions = 0700

	// expirySkew treats tokens as expired slightly before they are.
	expirySkew = 60 * time.Second
)

var (
	// ErrNoCurrentContext indicates no context is currently set.
	ErrNoCurrentContext = errors.New("no current context set")
	// ErrContextNotFound indicates the requested context doesn't exist.
	ErrContextNotFound = errors.New("context not found")
	// ErrContextExists indicates a rename target is already taken.
	ErrContextExists = errors.New("context already exists")
	// ErrNotLoggedIn indicates no valid credentials exist.
	ErrNotLoggedIn = errors.New("not logged in - run 'netctl login' first")
)

// Context is a named connection to a networking service.
type Context struct {
	ServerURL    string    `json:"server_url"`
	Username     string    `json:"username,omitempty"`
	TenantID     string    `json:"tenant_id,omitempty"`
	AccessToken  string    `json:"access_token,omitempty"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    time.Time `json:"expires_at,omitzero"`
}

// Expiry returns when the access token expires. A missing ExpiresAt is
// filled from the token's exp claim; the zero time means unknown.
func (c *Context) Expiry() time.Time {
	if !c.ExpiresAt.IsZero() || c.AccessToken == "" {
		return c.ExpiresAt
	}
	return TokenExpiry(c.AccessToken)
}

// IsExpired returns true if the access token has expired or will within
// a minute. Tokens with an unknown expiry count as expired.
func (c *Context) IsExpired() bool {
	expiry := c.Expiry()
	if expiry.IsZero() {
		return true
	}
	return time.Now().Add(expirySkew).After(expiry)
}

// HasRefreshToken returns true if a refresh token is available.
func (c *Context) HasRefreshToken() bool {
	return c.RefreshToken != ""
}

// TokenExpiry reads the exp claim from a JWT without verifying its
// signature. Non-JWT tokens and tokens without exp return the zero time.
func TokenExpiry(token string) time.Time {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}

// File is the on-disk layout of the credentials file.
type File struct {
	CurrentContext string              `json:"current_context"`
	Contexts       map[string]*Context `json:"contexts"`
}

// Store manages credential storage and retrieval.
type Store struct {
	path string
	file *File
}

// NewStore opens the credentials file in the user's config directory.
func NewStore() (*Store, error) {
	path, err := defaultPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

// Open opens the credentials file at path. A missing file yields an
// empty store; it is created on the first write.
func Open(path string) (*Store, error) {
	store := &Store{path: path}

	if err := store.load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read credentials: %w", err)
		}
		store.file = &File{}
	}
	if store.file.Contexts == nil {
		store.file.Contexts = make(map[string]*Context)
	}

	return store, nil
}

func defaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, DefaultConfigDir, CredentialsFileName), nil
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	s.file = &File{}
	return json.Unmarshal(data, s.file)
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), DirPermissions); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	data, err := json.MarshalIndent(s.file, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, FilePermissions)
}

// GetCurrentContext returns the current context.
func (s *Store) GetCurrentContext() (*Context, error) {
	if s.file.CurrentContext == "" {
		return nil, ErrNoCurrentContext
	}

	ctx, ok := s.file.Contexts[s.file.CurrentContext]
	if !ok {
		return nil, ErrContextNotFound
	}

	return ctx, nil
}

// GetCurrentContextName returns the name of the current context.
func (s *Store) GetCurrentContextName() string {
	return s.file.CurrentContext
}

// GetContext returns a specific context by name.
func (s *Store) GetContext(name string) (*Context, error) {
	ctx, ok := s.file.Contexts[name]
	if !ok {
		return nil, ErrContextNotFound
	}
	return ctx, nil
}

// ListContexts returns all context names in sorted order.
func (s *Store) ListContexts() []string {
	names := make([]string, 0, len(s.file.Contexts))
	for name := range s.file.Contexts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetContext creates or updates a context.
func (s *Store) SetContext(name string, ctx *Context) error {
	s.file.Contexts[name] = ctx
	return s.save()
}

// UseContext switches to a different context.
func (s *Store) UseContext(name string) error {
	if _, ok := s.file.Contexts[name]; !ok {
		return ErrContextNotFound
	}
	s.file.CurrentContext = name
	return s.save()
}

// RenameContext renames a context, keeping it current if it was.
func (s *Store) RenameContext(oldName, newName string) error {
	ctx, ok := s.file.Contexts[oldName]
	if !ok {
		return ErrContextNotFound
	}
	if _, taken := s.file.Contexts[newName]; taken {
		return ErrContextExists
	}

	delete(s.file.Contexts, oldName)
	s.file.Contexts[newName] = ctx

	if s.file.CurrentContext == oldName {
		s.file.CurrentContext = newName
	}

	return s.save()
}

// DeleteContext removes a context.
func (s *Store) DeleteContext(name string) error {
	if _, ok := s.file.Contexts[name]; !ok {
		return ErrContextNotFound
	}

	delete(s.file.Contexts, name)

	if s.file.CurrentContext == name {
		s.file.CurrentContext = ""
	}

	return s.save()
}

// UpdateTokens updates the tokens for the current context.
func (s *Store) UpdateTokens(accessToken, refreshToken string, expiresAt time.Time) error {
	ctx, err := s.GetCurrentContext()
	if err != nil {
		return err
	}

	ctx.AccessToken = accessToken
	ctx.RefreshToken = refreshToken
	ctx.ExpiresAt = expiresAt

	return s.save()
}

// ClearCurrentContext clears credentials from the current context (logout).
func (s *Store) ClearCurrentContext() error {
	ctx, err := s.GetCurrentContext()
	if err != nil {
		return err
	}

	ctx.AccessToken = ""
	ctx.RefreshToken = ""
	ctx.ExpiresAt = time.Time{}

	return s.save()
}

// Path returns the path to the credentials file.
func (s *Store) Path() string {
	return s.path
}

// GenerateContextName derives a context name from a server URL: its host,
// with the port appended when it is not the scheme default.
func GenerateContextName(serverURL string) string {
	u, err := url.Parse(serverURL)
	if err != nil || u.Hostname() == "" {
		return "default"
	}

	name := u.Hostname()
	if port := u.Port(); port != "" {
		name += "-" + port
	}
	return strings.ReplaceAll(name, ".", "-")
}
