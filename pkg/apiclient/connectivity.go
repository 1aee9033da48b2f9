package apiclient

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/marmos91/netctl/pkg/resource"
)

// SegmentationID is a segmentation id as reported by connectivity tests.
// The service sends numbers, strings or null; null decodes to "".
type SegmentationID string

// UnmarshalJSON implements json.Unmarshaler.
func (s *SegmentationID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = SegmentationID(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = SegmentationID(strings.TrimSpace(n.String()))
	return nil
}

// ConnectivityResult is one provider network connectivity test result.
type ConnectivityResult struct {
	ProviderNetID   string         `json:"providernet_id"`
	ProviderNetName string         `json:"providernet_name"`
	Type            string         `json:"type"`
	HostName        string         `json:"host_name"`
	SegmentationID  SegmentationID `json:"segmentation_id"`
	Status          string         `json:"status"`
	Message         string         `json:"message"`
	AuditUUID       string         `json:"audit_uuid,omitempty"`
}

// ConnectivityTestRequest schedules a connectivity test. Nil fields are
// sent as null and widen the test's scope.
type ConnectivityTestRequest struct {
	ProviderNetID  *string `json:"providernet_id"`
	HostName       *string `json:"host_name"`
	SegmentationID *string `json:"segmentation_id"`
}

// ListConnectivityResults returns connectivity test results.
func (c *Client) ListConnectivityResults(opts *ListOptions) ([]ConnectivityResult, error) {
	return listResources[ConnectivityResult](c, resource.ConnectivityTest, opts)
}

// ScheduleConnectivityTest schedules a connectivity test.
func (c *Client) ScheduleConnectivityTest(req *ConnectivityTestRequest) (Object, error) {
	obj, err := createResource[Object](c, resource.ConnectivityTest, req)
	if err != nil {
		return nil, err
	}
	return *obj, nil
}
