package apiclient

import (
	"github.com/marmos91/netctl/pkg/resource"
)

// ProviderNetRange is a segmentation id range of a provider network.
type ProviderNetRange struct {
	ID              string         `json:"id,omitempty"`
	Name            string         `json:"name"`
	ProviderNetID   string         `json:"providernet_id,omitempty"`
	ProviderNetName string         `json:"providernet_name,omitempty"`
	ProviderNetType string         `json:"providernet_type,omitempty"`
	Minimum         int            `json:"minimum"`
	Maximum         int            `json:"maximum"`
	Shared          bool           `json:"shared,omitempty"`
	Description     string         `json:"description,omitempty"`
	TenantID        string         `json:"tenant_id,omitempty"`
	Vxlan           map[string]any `json:"vxlan,omitempty"`
}

// CreateRangeRequest is the request to create a segmentation id range.
// Port, TTL, Group and Mode only apply to vxlan provider networks. Bounds,
// ordering and addresses are checked by the service.
type CreateRangeRequest struct {
	ProviderNetID string `json:"providernet_id" validate:"required"`
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description,omitempty"`
	Shared        bool   `json:"shared"`
	Minimum       int    `json:"minimum"`
	Maximum       int    `json:"maximum"`
	TenantID      string `json:"tenant_id,omitempty"`
	Port          int    `json:"port,omitempty"`
	TTL           int    `json:"ttl,omitempty"`
	Group         string `json:"group,omitempty"`
	Mode          string `json:"mode,omitempty" validate:"omitempty,oneof=dynamic static evpn"`
}

// UpdateRangeRequest is the request to update a segmentation id range.
type UpdateRangeRequest struct {
	Description string `json:"description,omitempty"`
	Minimum     *int   `json:"minimum,omitempty"`
	Maximum     *int   `json:"maximum,omitempty"`
}

// ListProviderNetRanges returns segmentation id ranges.
func (c *Client) ListProviderNetRanges(opts *ListOptions) ([]ProviderNetRange, error) {
	return listResources[ProviderNetRange](c, resource.ProviderNetRange, opts)
}

// CreateProviderNetRange creates a segmentation id range.
func (c *Client) CreateProviderNetRange(req *CreateRangeRequest) (Object, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	obj, err := createResource[Object](c, resource.ProviderNetRange, req)
	if err != nil {
		return nil, err
	}
	return *obj, nil
}

// UpdateProviderNetRange updates a segmentation id range.
func (c *Client) UpdateProviderNetRange(id string, req *UpdateRangeRequest) (Object, error) {
	obj, err := updateResource[Object](c, resource.ProviderNetRange, id, req)
	if err != nil {
		return nil, err
	}
	return *obj, nil
}
