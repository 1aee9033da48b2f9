package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/marmos91/netctl/cmd/netctl/cmdutil"
	"github.com/marmos91/netctl/internal/cli/apitest"
	"github.com/marmos91/netctl/internal/cli/credentials"
	"github.com/marmos91/netctl/pkg/resolve"
	"github.com/marmos91/netctl/pkg/resource"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag of cmd and its children to its default.
// Command flags are package-level, so values would otherwise leak from
// one Execute into the next.
func resetFlags(cmd *cobra.Command) {
	reset := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				_ = sv.Replace(nil)
			} else {
				_ = f.Value.Set(f.DefValue)
			}
			f.Changed = false
		})
	}
	reset(cmd.Flags())
	reset(cmd.PersistentFlags())
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// run executes netctl with args and returns everything it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := GetRootCmd()
	resetFlags(root)
	*cmdutil.Flags = cmdutil.GlobalFlags{}

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

// setup starts a fake service and logs into it from an empty config dir.
func setup(t *testing.T) *apitest.Server {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	srv := apitest.New(t)
	out, err := run(t, "login", "--server", srv.URL, "-u", apitest.Username, "-p", apitest.Password)
	require.NoError(t, err, out)
	return srv
}

// body returns the object of kind sent with the last request of method.
func body(t *testing.T, srv *apitest.Server, method string, kind resource.Kind) map[string]any {
	t.Helper()
	req, ok := srv.LastRequest(method)
	require.True(t, ok, "no %s request", method)
	obj, ok := req.Body[kind.Name].(map[string]any)
	require.True(t, ok, "request body %v has no %q", req.Body, kind.Name)
	return obj
}

// ============================================================================
// Session Tests
// ============================================================================

func TestLogin(t *testing.T) {
	srv := setup(t)

	store, err := credentials.NewStore()
	require.NoError(t, err)
	ctx, err := store.GetCurrentContext()
	require.NoError(t, err)
	assert.Equal(t, srv.URL, ctx.ServerURL)
	assert.Equal(t, apitest.Username, ctx.Username)
	assert.Equal(t, srv.TenantID(), ctx.TenantID)
	assert.Equal(t, srv.AccessToken(), ctx.AccessToken)

	out, err := run(t, "context", "current")
	require.NoError(t, err)
	assert.Contains(t, out, "Current context:")
}

func TestLogin_BadPassword(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	srv := apitest.New(t)

	_, err := run(t, "login", "--server", srv.URL, "-u", apitest.Username, "-p", "wrong")
	assert.ErrorContains(t, err, "login failed")
}

func TestLogout(t *testing.T) {
	srv := setup(t)

	out, err := run(t, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out from context")
	assert.Equal(t, 1, srv.CountRequests(http.MethodPost, "/v2.0/auth/logout"))

	_, err = run(t, "host", "list")
	assert.ErrorIs(t, err, credentials.ErrNotLoggedIn)
}

func TestContextRenameAndDelete(t *testing.T) {
	srv := setup(t)

	store, err := credentials.NewStore()
	require.NoError(t, err)
	name := store.GetCurrentContextName()

	out, err := run(t, "context", "rename", name, "lab")
	require.NoError(t, err)
	assert.Equal(t, "Context renamed: "+name+" -> lab\n", out)

	_, err = run(t, "context", "rename", name, "other")
	assert.EqualError(t, err, "context '"+name+"' not found")

	// The renamed context is still the one requests go through.
	_, err = run(t, "host", "list")
	require.NoError(t, err)
	req, ok := srv.LastRequest(http.MethodGet)
	require.True(t, ok)
	assert.Equal(t, srv.AccessToken(), req.Token)

	out, err = run(t, "context", "delete", "lab", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted context: lab")
	assert.Contains(t, out, "No context is selected now.")

	_, err = run(t, "context", "delete", "lab", "--force")
	assert.EqualError(t, err, "context 'lab' not found")
}

func TestRequestsCarryToken(t *testing.T) {
	srv := setup(t)

	_, err := run(t, "host", "list")
	require.NoError(t, err)

	req, ok := srv.LastRequest(http.MethodGet)
	require.True(t, ok)
	assert.Equal(t, srv.AccessToken(), req.Token)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)
}

// ============================================================================
// Host Tests
// ============================================================================

func TestHostCreate(t *testing.T) {
	srv := setup(t)

	out, err := run(t, "host", "create", "compute-0")
	require.NoError(t, err)
	assert.Contains(t, out, "Created a new host:")
	assert.Contains(t, out, "compute-0")

	sent := body(t, srv, http.MethodPost, resource.Host)
	assert.Equal(t, "compute-0", sent["name"])
	assert.Equal(t, "down", sent["availability"])
	assert.NotContains(t, sent, "id")
}

func TestHostCreate_InvalidID(t *testing.T) {
	srv := setup(t)

	_, err := run(t, "host", "create", "compute-0", "--id", "not-a-uuid")
	assert.ErrorContains(t, err, "--id must be a UUID")
	assert.Zero(t, srv.CountRequests(http.MethodPost, "/v2.0/hosts"))
}

func TestHostCreate_Conflict(t *testing.T) {
	srv := setup(t)
	srv.FailWith(http.MethodPost, resource.Host.CollectionPath(), http.StatusConflict)

	_, err := run(t, "host", "create", "compute-0")
	assert.ErrorContains(t, err, "host already exists")
}

func TestHostList(t *testing.T) {
	srv := setup(t)
	srv.Seed(resource.Host, map[string]any{"name": "compute-1", "availability": "up"})
	srv.Seed(resource.Host, map[string]any{"name": "compute-0", "availability": "down"})

	out, err := run(t, "host", "list", "-o", "json", "--sort-key", "name")
	require.NoError(t, err)

	var hosts []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &hosts))
	require.Len(t, hosts, 2)
	assert.Equal(t, "compute-0", hosts[0]["name"])
	assert.Equal(t, "compute-1", hosts[1]["name"])

	req, _ := srv.LastRequest(http.MethodGet)
	assert.Equal(t, []string{"name"}, req.Query["sort_key"])
	assert.Equal(t, []string{"asc"}, req.Query["sort_dir"])
}

func TestHostList_Empty(t *testing.T) {
	setup(t)

	out, err := run(t, "host", "list")
	require.NoError(t, err)
	assert.Equal(t, "No hosts found.\n", out)
}

func TestHostShow_ByName(t *testing.T) {
	srv := setup(t)
	id := srv.Seed(resource.Host, map[string]any{"name": "compute-0", "availability": "up"})

	out, err := run(t, "host", "show", "compute-0")
	require.NoError(t, err)
	assert.Contains(t, out, id)
	assert.Contains(t, out, "availability")
}

func TestHostUpdate(t *testing.T) {
	srv := setup(t)
	id := srv.Seed(resource.Host, map[string]any{"name": "compute-0", "availability": "down"})

	out, err := run(t, "host", "update", "compute-0", "--availability", "up")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated host: compute-0")

	req, ok := srv.LastRequest(http.MethodPut)
	require.True(t, ok)
	assert.Equal(t, resource.Host.ItemPath(id), req.Path)
	assert.Equal(t, "up", body(t, srv, http.MethodPut, resource.Host)["availability"])
}

func TestHostDelete_Ambiguous(t *testing.T) {
	srv := setup(t)
	srv.Seed(resource.Host, map[string]any{"name": "dup"})
	srv.Seed(resource.Host, map[string]any{"name": "dup"})

	_, err := run(t, "host", "delete", "dup", "--force")

	var resErr *resolve.Error
	require.True(t, errors.As(err, &resErr))
	assert.Equal(t, resolve.Ambiguous, resErr.Reason)
	assert.Len(t, resErr.Candidates, 2)
	assert.Len(t, srv.Objects(resource.Host), 2)
}

func TestHostDelete(t *testing.T) {
	srv := setup(t)
	srv.Seed(resource.Host, map[string]any{"name": "compute-0"})

	out, err := run(t, "host", "delete", "compute-0", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted host: compute-0")
	assert.Empty(t, srv.Objects(resource.Host))
}

func TestHostBindInterface(t *testing.T) {
	srv := setup(t)
	id := srv.Seed(resource.Host, map[string]any{"name": "compute-0"})
	iface := "5d7e2f3a-9c41-4c8b-8e0f-6a1b2c3d4e5f"

	out, err := run(t, "host", "bind-interface", "compute-0",
		"--interface", iface, "--mtu", "1500", "--providernets", "data0, data1", "--test")
	require.NoError(t, err)
	assert.Contains(t, out, "Bound provider networks to interface "+iface+" on compute-0")

	req, ok := srv.LastRequest(http.MethodPut)
	require.True(t, ok)
	assert.Equal(t, resource.Host.ItemPath(id)+"/bind_interface", req.Path)
	assert.Equal(t, true, req.Body["test"])

	sent := req.Body["interface"].(map[string]any)
	assert.Equal(t, iface, sent["uuid"])
	assert.Equal(t, float64(1500), sent["mtu"])
	assert.Equal(t, "data0,data1", sent["providernets"])
}

func TestHostBindInterface_RequiresFlags(t *testing.T) {
	srv := setup(t)
	srv.Seed(resource.Host, map[string]any{"name": "compute-0"})

	_, err := run(t, "host", "bind-interface", "compute-0", "--interface", "5d7e2f3a-9c41-4c8b-8e0f-6a1b2c3d4e5f")
	assert.Error(t, err)
	_, sent := srv.LastRequest(http.MethodPut)
	assert.False(t, sent)
}

func TestHostUnbindInterface(t *testing.T) {
	srv := setup(t)
	srv.Seed(resource.Host, map[string]any{"name": "compute-0"})
	iface := "5d7e2f3a-9c41-4c8b-8e0f-6a1b2c3d4e5f"

	out, err := run(t, "host", "unbind-interface", "compute-0", "--interface", iface)
	require.NoError(t, err)
	assert.Contains(t, out, "Unbound provider networks from interface "+iface+" on compute-0")
}

// ============================================================================
// Port forwarding Tests
// ============================================================================

func TestPortForwardingCreate_UnderscoreFlags(t *testing.T) {
	srv := setup(t)
	routerID := srv.Seed(resource.Router, map[string]any{"name": "edge"})

	out, err := run(t, "pf", "create", "edge", "--inside_addr", "10.0.0.5", "--inside-port", "22",
		"--outside_port", "2222", "--protocol", "tcp")
	require.NoError(t, err)
	assert.Contains(t, out, "Created a new portforwarding:")

	sent := body(t, srv, http.MethodPost, resource.PortForwarding)
	assert.Equal(t, routerID, sent["router_id"])
	assert.Equal(t, "10.0.0.5", sent["inside_addr"])
	assert.Equal(t, "2222", sent["outside_port"])
	assert.NotContains(t, sent, "description")
}

func TestPortForwardingCreate_UnknownRouter(t *testing.T) {
	setup(t)

	_, err := run(t, "portforwarding", "create", "nowhere")
	assert.ErrorContains(t, err, "unable to find router with name or id 'nowhere'")
}

// ============================================================================
// Provider network Tests
// ============================================================================

func TestProviderNetNetworks(t *testing.T) {
	srv := setup(t)
	pnID := srv.Seed(resource.ProviderNet, map[string]any{"name": "flat0", "type": "flat"})
	srv.SeedNetworks(pnID, map[string]any{"id": "n-1", "name": "ext", "providernet_type": "flat", "vlan_id": 0})

	out, err := run(t, "providernet", "networks", "flat0")
	require.NoError(t, err)
	assert.Contains(t, out, "ext")
	assert.Contains(t, out, "n/a")
}

func TestProviderNetUpdate_Set(t *testing.T) {
	srv := setup(t)
	srv.Seed(resource.ProviderNet, map[string]any{"name": "data0", "type": "vlan", "mtu": 1500})

	_, err := run(t, "providernet", "update", "data0", "--mtu", "9000",
		"--set", "status=ACTIVE", "--set", "priority=10", "--set", "shared=true")
	require.NoError(t, err)

	sent := body(t, srv, http.MethodPut, resource.ProviderNet)
	assert.Equal(t, float64(9000), sent["mtu"])
	assert.Equal(t, "ACTIVE", sent["status"])
	assert.Equal(t, "10", sent["priority"])
	assert.Equal(t, true, sent["shared"])
	assert.NotContains(t, sent, "description")
}

func TestRangeCreate(t *testing.T) {
	srv := setup(t)
	pnID := srv.Seed(resource.ProviderNet, map[string]any{"name": "data0", "type": "vlan"})

	out, err := run(t, "providernet", "range", "create", "data0",
		"--name", "r0", "--range", "10-19", "--tenant_id", "t-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Created a new providernet_range:")

	sent := body(t, srv, http.MethodPost, resource.ProviderNetRange)
	assert.Equal(t, pnID, sent["providernet_id"])
	assert.Equal(t, float64(10), sent["minimum"])
	assert.Equal(t, float64(19), sent["maximum"])
	assert.Equal(t, "t-1", sent["tenant_id"])
}

func TestRangeCreate_BadRange(t *testing.T) {
	srv := setup(t)
	srv.Seed(resource.ProviderNet, map[string]any{"name": "data0", "type": "vlan"})

	_, err := run(t, "providernet", "range", "create", "data0", "--name", "r0", "--range", "10")
	assert.ErrorContains(t, err, "Expecting MIN_VALUE-MAX_VALUE in range list")
	assert.Zero(t, srv.CountRequests(http.MethodPost, resource.ProviderNetRange.CollectionPath()))
}

func TestRangeList_DefaultSort(t *testing.T) {
	srv := setup(t)
	srv.Seed(resource.ProviderNetRange, map[string]any{"name": "r1", "providernet_name": "data0", "minimum": 100, "maximum": 199})

	_, err := run(t, "providernet", "range", "list")
	require.NoError(t, err)

	req, _ := srv.LastRequest(http.MethodGet)
	assert.Equal(t, []string{"providernet_name", "minimum"}, req.Query["sort_key"])
}

// ============================================================================
// Connectivity Tests
// ============================================================================

func TestConnectivityList_Grouped(t *testing.T) {
	srv := setup(t)
	for _, seg := range []int{12, 10, 20, 11} {
		srv.Seed(resource.ConnectivityTest, map[string]any{
			"providernet_id":   "pn-1",
			"providernet_name": "data0",
			"type":             "vlan",
			"host_name":        "compute-0",
			"segmentation_id":  seg,
			"status":           "PASS",
			"message":          "",
		})
	}

	out, err := run(t, "providernet", "connectivity", "list", "--host", "compute-0")
	require.NoError(t, err)
	assert.Contains(t, out, "10-12, 20")
	assert.NotContains(t, out, "MESSAGE")

	req, _ := srv.LastRequest(http.MethodGet)
	assert.Equal(t, []string{"compute-0"}, req.Query["host_name"])
}

func TestConnectivityCreate_UnsetIsNull(t *testing.T) {
	srv := setup(t)

	_, err := run(t, "providernet", "connectivity", "create", "--host", "compute-0")
	require.NoError(t, err)

	sent := body(t, srv, http.MethodPost, resource.ConnectivityTest)
	assert.Equal(t, "compute-0", sent["host_name"])
	for _, key := range []string{"providernet_id", "segmentation_id"} {
		v, ok := sent[key]
		assert.True(t, ok, key)
		assert.Nil(t, v, key)
	}
}

// ============================================================================
// QoS Tests
// ============================================================================

func TestQoSCreate(t *testing.T) {
	srv := setup(t)

	out, err := run(t, "qos", "create", "--name", "gold", "--dscp", "dscp=10", "--scheduler", "weight=16")
	require.NoError(t, err)
	assert.Contains(t, out, "Created a new qos:")

	sent := body(t, srv, http.MethodPost, resource.QoS)
	assert.Equal(t, "gold", sent["name"])
	assert.Equal(t, map[string]any{
		"dscp":      map[string]any{"dscp": "10"},
		"scheduler": map[string]any{"weight": "16"},
	}, sent["policies"])
}

func TestQoSCreate_InvalidPolicy(t *testing.T) {
	srv := setup(t)

	_, err := run(t, "qos", "create", "--name", "gold", "--ratelimit", "100")
	assert.ErrorContains(t, err, "expected KEY=VALUE")
	assert.Zero(t, srv.CountRequests(http.MethodPost, resource.QoS.CollectionPath()))
}

func TestQoSUpdate(t *testing.T) {
	srv := setup(t)
	srv.Seed(resource.QoS, map[string]any{"name": "gold"})

	out, err := run(t, "qos", "update", "gold", "--description", "premium")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated qos: gold")

	sent := body(t, srv, http.MethodPut, resource.QoS)
	assert.Equal(t, "premium", sent["description"])
	assert.Equal(t, map[string]any{}, sent["policies"])
}

// ============================================================================
// Setting Tests
// ============================================================================

func TestSettingUpdate_CallerTenant(t *testing.T) {
	srv := setup(t)

	out, err := run(t, "setting", "update", "--mac-filtering", "Enabled")
	require.NoError(t, err)
	assert.Contains(t, out, "mac_filtering")

	req, ok := srv.LastRequest(http.MethodPut)
	require.True(t, ok)
	assert.Equal(t, resource.Setting.ItemPath(srv.TenantID()), req.Path)
	assert.Equal(t, true, body(t, srv, http.MethodPut, resource.Setting)["mac_filtering"])
}

func TestSettingUpdate_NothingToChange(t *testing.T) {
	srv := setup(t)

	_, err := run(t, "setting", "update", "--tenant-id", "t-1")
	assert.EqualError(t, err, "No recognized settings")
	_, sent := srv.LastRequest(http.MethodPut)
	assert.False(t, sent)
}

func TestSettingShowAndList(t *testing.T) {
	srv := setup(t)
	srv.Seed(resource.Setting, map[string]any{"tenant_id": "t-1", "mac_filtering": false})

	out, err := run(t, "setting", "show", "--tenant_id", "t-1")
	require.NoError(t, err)
	assert.Contains(t, out, "False")

	out, err = run(t, "setting", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "t-1")
	assert.Contains(t, out, "MAC FILTERING")
}

func TestSettingDelete(t *testing.T) {
	srv := setup(t)
	srv.Seed(resource.Setting, map[string]any{"tenant_id": "t-1", "mac_filtering": true})

	out, err := run(t, "setting", "delete", "--tenant-id", "t-1", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted setting: t-1")
	assert.Empty(t, srv.Objects(resource.Setting))
}

// ============================================================================
// Error Tests
// ============================================================================

func TestServerErrorIsWrapped(t *testing.T) {
	srv := setup(t)
	srv.FailWith(http.MethodGet, resource.Host.CollectionPath(), http.StatusInternalServerError)

	_, err := run(t, "host", "list")
	assert.ErrorContains(t, err, "failed to list hosts")
	assert.ErrorContains(t, err, "forced failure")
}
