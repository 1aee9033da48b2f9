package apiclient

import (
	"github.com/marmos91/netctl/pkg/resource"
)

// ProviderNet is a physical network segment tenant networks are built on.
type ProviderNet struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Type            string             `json:"type"`
	MTU             int                `json:"mtu"`
	Description     string             `json:"description,omitempty"`
	VlanTransparent bool               `json:"vlan_transparent"`
	Status          string             `json:"status,omitempty"`
	Ranges          []ProviderNetRange `json:"ranges"`
}

// ProviderNetType is one supported provider network type.
type ProviderNetType struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// ProviderNetRequest is the request to create a provider network.
type ProviderNetRequest struct {
	Name            string `json:"name" validate:"required"`
	Type            string `json:"type" validate:"oneof=flat vlan vxlan"`
	MTU             int    `json:"mtu,omitempty" validate:"omitempty,gt=0"`
	Description     string `json:"description,omitempty"`
	VlanTransparent bool   `json:"vlan_transparent"`
}

// ProviderNetNetwork is a tenant network carried by a provider network.
type ProviderNetNetwork struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	VlanID          any            `json:"vlan_id"`
	ProviderNetType string         `json:"providernet_type"`
	SegmentationID  any            `json:"segmentation_id"`
	Vxlan           map[string]any `json:"vxlan,omitempty"`
}

// ListProviderNets returns all provider networks.
func (c *Client) ListProviderNets(opts *ListOptions) ([]ProviderNet, error) {
	return listResources[ProviderNet](c, resource.ProviderNet, opts)
}

// ListProviderNetTypes returns the supported provider network types.
func (c *Client) ListProviderNetTypes(opts *ListOptions) ([]ProviderNetType, error) {
	return listResources[ProviderNetType](c, resource.ProviderNetType, opts)
}

// CreateProviderNet creates a provider network.
func (c *Client) CreateProviderNet(req *ProviderNetRequest) (Object, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	obj, err := createResource[Object](c, resource.ProviderNet, req)
	if err != nil {
		return nil, err
	}
	return *obj, nil
}

// UpdateProviderNet applies the given attributes to a provider network.
func (c *Client) UpdateProviderNet(id string, attrs map[string]any) (Object, error) {
	return c.UpdateObject(resource.ProviderNet, id, attrs)
}

// ListProviderNetNetworks returns the networks bound to a provider network.
func (c *Client) ListProviderNetNetworks(id string, opts *ListOptions) ([]ProviderNetNetwork, error) {
	path := resourcePath("%s/networks", resource.ProviderNet.ItemPath(id))
	return listAt[ProviderNetNetwork](c, path, resource.Network.Plural, opts)
}
