package apiclient

import (
	"github.com/marmos91/netctl/pkg/resource"
)

// Host is a compute or controller node known to the networking service.
type Host struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Availability string           `json:"availability"`
	Agents       []map[string]any `json:"agents,omitempty"`
	Subnets      int              `json:"subnets"`
	Routers      int              `json:"routers"`
	Ports        int              `json:"ports"`
}

// CreateHostRequest is the request to create a host record.
type CreateHostRequest struct {
	ID           string `json:"id,omitempty" validate:"omitempty,uuid"`
	Name         string `json:"name" validate:"required"`
	Availability string `json:"availability" validate:"oneof=up down"`
}

// UpdateHostRequest is the request to update a host.
type UpdateHostRequest struct {
	Availability string `json:"availability" validate:"oneof=up down"`
}

// BindInterfaceRequest binds a host interface to provider networks.
type BindInterfaceRequest struct {
	UUID         string `json:"uuid" validate:"required,uuid"`
	MTU          int    `json:"mtu" validate:"gt=0"`
	ProviderNets string `json:"providernets" validate:"required"`
	VLANs        string `json:"vlans"`
}

// ListHosts returns all hosts.
func (c *Client) ListHosts(opts *ListOptions) ([]Host, error) {
	return listResources[Host](c, resource.Host, opts)
}

// GetHost returns a host by ID.
func (c *Client) GetHost(id string) (*Host, error) {
	return getResource[Host](c, resource.Host, id, nil)
}

// CreateHost creates a host record.
func (c *Client) CreateHost(req *CreateHostRequest) (Object, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	obj, err := createResource[Object](c, resource.Host, req)
	if err != nil {
		return nil, err
	}
	return *obj, nil
}

// UpdateHost updates a host.
func (c *Client) UpdateHost(id string, req *UpdateHostRequest) (Object, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	obj, err := updateResource[Object](c, resource.Host, id, req)
	if err != nil {
		return nil, err
	}
	return *obj, nil
}

// BindInterface binds an interface of a host to a set of provider networks.
// With test set the server only checks whether the bind would succeed.
func (c *Client) BindInterface(hostID string, req *BindInterfaceRequest, test bool) error {
	if err := validateRequest(req); err != nil {
		return err
	}

	body := map[string]any{"interface": req}
	if test {
		body["test"] = true
	}
	return c.put(resourcePath("%s/bind_interface", resource.Host.ItemPath(hostID)), body, nil)
}

// UnbindInterface unbinds an interface of a host from all provider networks.
func (c *Client) UnbindInterface(hostID, interfaceUUID string) error {
	req := struct {
		UUID string `json:"uuid" validate:"required,uuid"`
	}{UUID: interfaceUUID}
	if err := validateRequest(&req); err != nil {
		return err
	}

	body := map[string]any{"interface": req}
	return c.put(resourcePath("%s/unbind_interface", resource.Host.ItemPath(hostID)), body, nil)
}
