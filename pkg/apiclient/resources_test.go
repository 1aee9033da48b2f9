package apiclient

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/marmos91/netctl/internal/cli/apitest"
	"github.com/marmos91/netctl/pkg/resolve"
	"github.com/marmos91/netctl/pkg/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHosts(t *testing.T) {
	srv := apitest.New(t)
	client := New(srv.URL)

	srv.Seed(resource.Host, map[string]any{
		"name": "compute-0", "availability": "up",
		"agents": []any{map[string]any{"type": "L2"}}, "subnets": 2, "routers": 1, "ports": 7,
	})

	hosts, err := client.ListHosts(nil)
	require.NoError(t, err)
	require.Len(t, hosts, 1)
	assert.Equal(t, "compute-0", hosts[0].Name)
	assert.Len(t, hosts[0].Agents, 1)
	assert.Equal(t, 7, hosts[0].Ports)

	id := uuid.NewString()
	created, err := client.CreateHost(&CreateHostRequest{ID: id, Name: "compute-1", Availability: "down"})
	require.NoError(t, err)
	assert.Equal(t, id, created.ID())

	updated, err := client.UpdateHost(id, &UpdateHostRequest{Availability: "up"})
	require.NoError(t, err)
	assert.Equal(t, "up", updated["availability"])

	host, err := client.GetHost(id)
	require.NoError(t, err)
	assert.Equal(t, "up", host.Availability)
}

func TestCreateHost_Validation(t *testing.T) {
	srv := apitest.New(t)
	client := New(srv.URL)

	_, err := client.CreateHost(&CreateHostRequest{ID: "not-a-uuid", Name: "h", Availability: "down"})
	assert.ErrorContains(t, err, "ID must be a UUID")

	_, err = client.CreateHost(&CreateHostRequest{Name: "h", Availability: "sideways"})
	assert.ErrorContains(t, err, "Availability must be one of")

	assert.Empty(t, srv.Requests(), "invalid requests must not reach the server")
}

func TestBindInterface(t *testing.T) {
	srv := apitest.New(t)
	client := New(srv.URL)
	hostID := srv.Seed(resource.Host, map[string]any{"name": "compute-0"})
	ifaceID := uuid.NewString()

	err := client.BindInterface(hostID, &BindInterfaceRequest{
		UUID: ifaceID, MTU: 1500, ProviderNets: "group0-data0,group0-data1", VLANs: "10,11",
	}, true)
	require.NoError(t, err)

	req, ok := srv.LastRequest(http.MethodPut)
	require.True(t, ok)
	assert.Equal(t, "/v2.0/hosts/"+hostID+"/bind_interface", req.Path)
	assert.Equal(t, true, req.Body["test"])
	assert.Equal(t, map[string]any{
		"uuid": ifaceID, "mtu": float64(1500), "providernets": "group0-data0,group0-data1", "vlans": "10,11",
	}, req.Body["interface"])

	require.NoError(t, client.UnbindInterface(hostID, ifaceID))
	req, _ = srv.LastRequest(http.MethodPut)
	assert.Equal(t, "/v2.0/hosts/"+hostID+"/unbind_interface", req.Path)
	assert.Equal(t, map[string]any{"uuid": ifaceID}, req.Body["interface"])

	assert.ErrorContains(t, client.UnbindInterface(hostID, "eth0"), "UUID must be a UUID")
}

func TestPortForwardingUpdate_OmitsUnsetFields(t *testing.T) {
	srv := apitest.New(t)
	client := New(srv.URL)
	id := srv.Seed(resource.PortForwarding, map[string]any{"router_id": "r-1", "protocol": "tcp"})

	_, err := client.UpdatePortForwarding(id, &PortForwardingRequest{OutsidePort: "8080"})
	require.NoError(t, err)

	req, _ := srv.LastRequest(http.MethodPut)
	assert.Equal(t, map[string]any{"outside_port": "8080"}, req.Body["portforwarding"])
}

func TestProviderNets(t *testing.T) {
	srv := apitest.New(t)
	client := New(srv.URL)

	created, err := client.CreateProviderNet(&ProviderNetRequest{Name: "group0-data0", Type: "vlan", MTU: 1500})
	require.NoError(t, err)
	id := created.ID()

	req, _ := srv.LastRequest(http.MethodPost)
	assert.Equal(t, false, req.Body["providernet"].(map[string]any)["vlan_transparent"])
	assert.NotContains(t, req.Body["providernet"], "description")

	_, err = client.CreateProviderNet(&ProviderNetRequest{Name: "bad", Type: "gre"})
	assert.ErrorContains(t, err, "Type must be one of")

	srv.SeedNetworks(id, map[string]any{"id": "n-1", "name": "tenant-net", "providernet_type": "vlan", "segmentation_id": 10})
	nets, err := client.ListProviderNetNetworks(id, nil)
	require.NoError(t, err)
	require.Len(t, nets, 1)
	assert.Equal(t, float64(10), nets[0].SegmentationID)

	_, err = client.ListProviderNetNetworks("missing", nil)
	assert.True(t, IsNotFound(err))
}

func TestProviderNetRanges(t *testing.T) {
	srv := apitest.New(t)
	client := New(srv.URL)

	_, err := client.CreateProviderNetRange(&CreateRangeRequest{ProviderNetID: "p-1", Name: "r0", Minimum: 10, Maximum: 20, Mode: "dynamic", Group: "239.0.0.1"})
	require.NoError(t, err)

	srv.Seed(resource.ProviderNetRange, map[string]any{"name": "r1", "providernet_name": "a", "minimum": 5, "maximum": 6})
	ranges, err := client.ListProviderNetRanges(&ListOptions{
		SortKeys: []string{"minimum"},
		SortDirs: []string{"asc"},
	})
	require.NoError(t, err)
	require.Len(t, ranges, 2)
	assert.Equal(t, "r1", ranges[0].Name)
	assert.Equal(t, 20, ranges[1].Maximum)
}

func TestCreateProviderNetRange_ServiceChecksValues(t *testing.T) {
	srv := apitest.New(t)
	client := New(srv.URL)

	for _, req := range []*CreateRangeRequest{
		{ProviderNetID: "p-1", Name: "reversed", Minimum: 200, Maximum: 100},
		{ProviderNetID: "p-1", Name: "groups", Minimum: 1, Maximum: 2, Group: "239.0.0.1,239.0.0.2"},
		{ProviderNetID: "p-1", Name: "ttl", Minimum: 1, Maximum: 2, TTL: -1, Port: -1},
	} {
		_, err := client.CreateProviderNetRange(req)
		require.NoError(t, err, req.Name)
	}
	assert.Equal(t, 3, srv.CountRequests(http.MethodPost, resource.ProviderNetRange.CollectionPath()))

	sent, _ := srv.LastRequest(http.MethodPost)
	assert.Equal(t, float64(-1), sent.Body["providernet_range"].(map[string]any)["ttl"])
}

func TestCreateProviderNetRange_Required(t *testing.T) {
	client := New("http://127.0.0.1:1")

	_, err := client.CreateProviderNetRange(&CreateRangeRequest{ProviderNetID: "p-1"})
	assert.ErrorContains(t, err, "Name is required")

	_, err = client.CreateProviderNetRange(&CreateRangeRequest{ProviderNetID: "p-1", Name: "r0", Mode: "flood"})
	assert.ErrorContains(t, err, "Mode must be one of")
}

func TestSegmentationID_Unmarshal(t *testing.T) {
	var results []ConnectivityResult
	data := `[{"segmentation_id": 10}, {"segmentation_id": "11"}, {"segmentation_id": null}, {}]`
	require.NoError(t, json.Unmarshal([]byte(data), &results))

	assert.Equal(t, SegmentationID("10"), results[0].SegmentationID)
	assert.Equal(t, SegmentationID("11"), results[1].SegmentationID)
	assert.Equal(t, SegmentationID(""), results[2].SegmentationID)
	assert.Equal(t, SegmentationID(""), results[3].SegmentationID)
}

func TestScheduleConnectivityTest_SendsNulls(t *testing.T) {
	srv := apitest.New(t)
	host := "compute-0"

	_, err := New(srv.URL).ScheduleConnectivityTest(&ConnectivityTestRequest{HostName: &host})
	require.NoError(t, err)

	req, _ := srv.LastRequest(http.MethodPost)
	body := req.Body["providernet_connectivity_test"].(map[string]any)
	assert.Equal(t, "compute-0", body["host_name"])
	assert.Contains(t, body, "providernet_id")
	assert.Nil(t, body["providernet_id"])
	assert.Contains(t, body, "segmentation_id")
}

func TestQoS(t *testing.T) {
	srv := apitest.New(t)
	client := New(srv.URL)

	created, err := client.CreateQoS(&QoSRequest{
		Name:     "gold",
		Policies: map[string]map[string]string{PolicyDSCP: {"dscp": "10"}},
	})
	require.NoError(t, err)

	policies, err := client.ListQoS(nil)
	require.NoError(t, err)
	require.Len(t, policies, 1)
	assert.Equal(t, "10", policies[0].Policies[PolicyDSCP]["dscp"])

	_, err = client.UpdateQoS(created.ID(), &QoSRequest{Description: "premium", Policies: map[string]map[string]string{}})
	require.NoError(t, err)

	req, _ := srv.LastRequest(http.MethodPut)
	assert.Equal(t, map[string]any{"description": "premium", "policies": map[string]any{}}, req.Body["qos"])
}

func TestSettings(t *testing.T) {
	srv := apitest.New(t)
	client := New(srv.URL)

	tenant, err := client.GetSettingsTenant()
	require.NoError(t, err)
	assert.Equal(t, srv.TenantID(), tenant)

	updated, err := client.UpdateSettings(tenant, map[string]any{"mac_filtering": true})
	require.NoError(t, err)
	assert.Equal(t, true, updated["mac_filtering"])

	settings, err := client.GetSettings(tenant)
	require.NoError(t, err)
	assert.Equal(t, tenant, settings["tenant_id"])

	all, err := client.ListSettings()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, client.DeleteSettings(tenant))
	_, err = client.GetSettings(tenant)
	assert.True(t, IsNotFound(err))
}

func TestCatalog_WithResolver(t *testing.T) {
	srv := apitest.New(t)
	client := New(srv.URL)

	edge := srv.Seed(resource.Router, map[string]any{"name": "edge"})
	srv.Seed(resource.Router, map[string]any{"name": "dup"})
	srv.Seed(resource.Router, map[string]any{"name": "dup"})

	r := resolve.New(client.Catalog(), nil)

	id, err := r.Resolve(resource.Router, "edge")
	require.NoError(t, err)
	assert.Equal(t, edge, id)

	id, err = r.Resolve(resource.Router, edge)
	require.NoError(t, err)
	assert.Equal(t, edge, id)

	_, err = r.Resolve(resource.Router, "dup")
	assert.True(t, resolve.IsAmbiguous(err))

	_, err = r.Resolve(resource.Router, "missing")
	assert.True(t, resolve.IsNotFound(err))

	// lookups only ask for the attributes they need
	req, _ := srv.LastRequest(http.MethodGet)
	assert.Equal(t, []string{"id", "name"}, req.Query["fields"])
}

func TestCatalog_TransportFailure(t *testing.T) {
	srv := apitest.New(t)
	srv.FailWith(http.MethodGet, "/v2.0/qoses/gold", http.StatusInternalServerError)

	_, err := resolve.New(New(srv.URL).Catalog(), nil).Resolve(resource.QoS, "gold")

	var rerr *resolve.Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, resolve.TransportFailure, rerr.Reason)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestObjects(t *testing.T) {
	srv := apitest.New(t)
	client := New(srv.URL)
	id := srv.Seed(resource.QoS, map[string]any{"name": "bronze", "description": "cheap"})

	obj, err := client.GetObject(resource.QoS, id)
	require.NoError(t, err)
	assert.Equal(t, "cheap", obj["description"])

	objs, err := client.ListObjects(resource.QoS, &ListOptions{Filters: map[string]string{"name": "bronze"}})
	require.NoError(t, err)
	assert.Len(t, objs, 1)

	require.NoError(t, client.DeleteObject(resource.QoS, id))
	assert.Empty(t, srv.Objects(resource.QoS))

	err = client.DeleteObject(resource.QoS, id)
	assert.True(t, IsNotFound(err))
}
