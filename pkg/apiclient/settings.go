package apiclient

import (
	"errors"

	"github.com/marmos91/netctl/pkg/resource"
)

// ListSettings returns the settings of every tenant with non-default values.
func (c *Client) ListSettings() ([]Object, error) {
	return c.ListObjects(resource.Setting, nil)
}

// GetSettingsTenant returns the tenant ID of the authenticated caller.
func (c *Client) GetSettingsTenant() (string, error) {
	var resp struct {
		Tenant struct {
			TenantID string `json:"tenant_id"`
		} `json:"tenant"`
	}
	if err := c.get(resource.Setting.CollectionPath()+"/tenant", &resp); err != nil {
		return "", err
	}
	if resp.Tenant.TenantID == "" {
		return "", errors.New("server did not report a tenant ID")
	}
	return resp.Tenant.TenantID, nil
}

// GetSettings returns the settings of a tenant.
func (c *Client) GetSettings(tenantID string) (Object, error) {
	return c.GetObject(resource.Setting, tenantID)
}

// UpdateSettings overrides settings of a tenant.
func (c *Client) UpdateSettings(tenantID string, settings map[string]any) (Object, error) {
	return c.UpdateObject(resource.Setting, tenantID, settings)
}

// DeleteSettings resets a tenant's settings to their defaults.
func (c *Client) DeleteSettings(tenantID string) error {
	return c.DeleteObject(resource.Setting, tenantID)
}
