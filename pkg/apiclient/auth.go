package apiclient

import (
	"time"

	"github.com/marmos91/netctl/pkg/resource"
)

// LoginRequest represents a login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	TenantID string `json:"tenant_id,omitempty"`
}

// TokenResponse represents the response from login/refresh endpoints.
type TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int64     `json:"expires_in"` // seconds
	ExpiresAt    time.Time `json:"expires_at"`
	TenantID     string    `json:"tenant_id,omitempty"`
}

// ExpiresInDuration returns ExpiresIn as a time.Duration.
func (t *TokenResponse) ExpiresInDuration() time.Duration {
	return time.Duration(t.ExpiresIn) * time.Second
}

// Expiry returns the absolute expiry of the access token, preferring
// expires_at over expires_in. The zero time means the server sent neither.
func (t *TokenResponse) Expiry(now time.Time) time.Time {
	if !t.ExpiresAt.IsZero() {
		return t.ExpiresAt
	}
	if t.ExpiresIn > 0 {
		return now.Add(t.ExpiresInDuration())
	}
	return time.Time{}
}

// Login authenticates with the server and returns tokens.
func (c *Client) Login(req *LoginRequest) (*TokenResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var resp TokenResponse
	if err := c.post(resource.APIPrefix+"/auth/login", req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// RefreshToken refreshes the access token using the refresh token.
func (c *Client) RefreshToken(refreshToken string) (*TokenResponse, error) {
	req := struct {
		RefreshToken string `json:"refresh_token"`
	}{
		RefreshToken: refreshToken,
	}

	var resp TokenResponse
	if err := c.post(resource.APIPrefix+"/auth/refresh", req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// Logout invalidates the current tokens.
func (c *Client) Logout() error {
	return c.post(resource.APIPrefix+"/auth/logout", nil, nil)
}
