package apiclient

import (
	"github.com/marmos91/netctl/pkg/resource"
)

// QoS policy types.
const (
	PolicyDSCP      = "dscp"
	PolicyRateLimit = "ratelimit"
	PolicyScheduler = "scheduler"
)

// QoS is a quality of service policy.
type QoS struct {
	ID          string                    `json:"id"`
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	TenantID    string                    `json:"tenant_id,omitempty"`
	Policies    map[string]map[string]any `json:"policies,omitempty"`
}

// QoSRequest creates or updates a QoS policy. Policies maps a policy type
// to its key/value settings and is always sent.
type QoSRequest struct {
	Name        string                       `json:"name,omitempty"`
	Description string                       `json:"description,omitempty"`
	TenantID    string                       `json:"tenant_id,omitempty"`
	Policies    map[string]map[string]string `json:"policies"`
}

// ListQoS returns all QoS policies.
func (c *Client) ListQoS(opts *ListOptions) ([]QoS, error) {
	return listResources[QoS](c, resource.QoS, opts)
}

// CreateQoS creates a QoS policy.
func (c *Client) CreateQoS(req *QoSRequest) (Object, error) {
	obj, err := createResource[Object](c, resource.QoS, req)
	if err != nil {
		return nil, err
	}
	return *obj, nil
}

// UpdateQoS updates a QoS policy.
func (c *Client) UpdateQoS(id string, req *QoSRequest) (Object, error) {
	obj, err := updateResource[Object](c, resource.QoS, id, req)
	if err != nil {
		return nil, err
	}
	return *obj, nil
}
