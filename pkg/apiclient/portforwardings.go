package apiclient

import (
	"github.com/marmos91/netctl/pkg/resource"
)

// PortForwarding maps a router's public port to a private address.
type PortForwarding struct {
	ID          string `json:"id"`
	RouterID    string `json:"router_id"`
	InsideAddr  string `json:"inside_addr"`
	InsidePort  any    `json:"inside_port"`
	OutsidePort any    `json:"outside_port"`
	Protocol    string `json:"protocol"`
	Description string `json:"description,omitempty"`
	TenantID    string `json:"tenant_id,omitempty"`
}

// PortForwardingRequest creates or updates a mapping. Empty fields are not
// sent.
type PortForwardingRequest struct {
	RouterID    string `json:"router_id,omitempty"`
	InsideAddr  string `json:"inside_addr,omitempty" validate:"omitempty,ip"`
	InsidePort  string `json:"inside_port,omitempty"`
	OutsidePort string `json:"outside_port,omitempty"`
	Protocol    string `json:"protocol,omitempty"`
	Description string `json:"description,omitempty"`
}

// ListPortForwardings returns all port forwarding mappings.
func (c *Client) ListPortForwardings(opts *ListOptions) ([]PortForwarding, error) {
	return listResources[PortForwarding](c, resource.PortForwarding, opts)
}

// CreatePortForwarding creates a port forwarding mapping.
func (c *Client) CreatePortForwarding(req *PortForwardingRequest) (Object, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	obj, err := createResource[Object](c, resource.PortForwarding, req)
	if err != nil {
		return nil, err
	}
	return *obj, nil
}

// UpdatePortForwarding updates a port forwarding mapping.
func (c *Client) UpdatePortForwarding(id string, req *PortForwardingRequest) (Object, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	obj, err := updateResource[Object](c, resource.PortForwarding, id, req)
	if err != nil {
		return nil, err
	}
	return *obj, nil
}
