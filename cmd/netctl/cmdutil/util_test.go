package cmdutil

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/marmos91/netctl/internal/cli/credentials"
	"github.com/marmos91/netctl/internal/cli/output"
	"github.com/marmos91/netctl/pkg/apiclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the config and credential lookups at an empty directory
// and resets the global flags.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	old := *Flags
	*Flags = GlobalFlags{}
	t.Cleanup(func() { *Flags = old })
}

func TestParseCommaSeparatedList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty string", input: "", expected: nil},
		{name: "single item", input: "foo", expected: []string{"foo"}},
		{name: "multiple items", input: "foo,bar,baz", expected: []string{"foo", "bar", "baz"}},
		{name: "items with spaces", input: "foo, bar , baz", expected: []string{"foo", "bar", "baz"}},
		{name: "empty items filtered out", input: "foo,,bar,", expected: []string{"foo", "bar"}},
		{name: "only whitespace filtered out", input: "foo, , bar", expected: []string{"foo", "bar"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCommaSeparatedList(tt.input))
		})
	}
}

func TestParseKeyValues(t *testing.T) {
	t.Run("LaterPairsWin", func(t *testing.T) {
		kv, err := ParseKeyValues([]string{"a=1", "b=2", "a=3"})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"a": "3", "b": "2"}, kv)
	})

	t.Run("ValueMayContainEquals", func(t *testing.T) {
		kv, err := ParseKeyValues([]string{"expr=x=y"})
		require.NoError(t, err)
		assert.Equal(t, "x=y", kv["expr"])
	})

	t.Run("EmptyValue", func(t *testing.T) {
		kv, err := ParseKeyValues([]string{"key="})
		require.NoError(t, err)
		assert.Equal(t, "", kv["key"])
	})

	for _, bad := range []string{"novalue", "=value", " =x"} {
		t.Run("Rejects_"+bad, func(t *testing.T) {
			_, err := ParseKeyValues([]string{bad})
			assert.ErrorContains(t, err, "invalid key=value pair")
		})
	}
}

func TestParseAttributes(t *testing.T) {
	attrs, err := ParseAttributes([]string{"mtu=1500", "shared=true", "vlan=false", "name=group0", "id=007x"})
	require.NoError(t, err)

	assert.Equal(t, "1500", attrs["mtu"])
	assert.Equal(t, true, attrs["shared"])
	assert.Equal(t, false, attrs["vlan"])
	assert.Equal(t, "group0", attrs["name"])
	assert.Equal(t, "007x", attrs["id"])
}

func TestParseAttributes_ObjectsStayStrings(t *testing.T) {
	attrs, err := ParseAttributes([]string{`x={"a":1}`, "y=null"})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, attrs["x"])
	assert.Equal(t, "null", attrs["y"])
}

func TestParseBool(t *testing.T) {
	for _, s := range []string{"yes", "YES", "true", "True", "enabled", " Enabled "} {
		assert.True(t, ParseBool(s), s)
	}
	for _, s := range []string{"", "no", "false", "disabled", "1", "on"} {
		assert.False(t, ParseBool(s), s)
	}
}

func TestBoolToYesNo(t *testing.T) {
	assert.Equal(t, "yes", BoolToYesNo(true))
	assert.Equal(t, "no", BoolToYesNo(false))
}

func TestEmptyOr(t *testing.T) {
	assert.Equal(t, "-", EmptyOr("", "-"))
	assert.Equal(t, "x", EmptyOr("x", "-"))
}

// ============================================================================
// List flag Tests
// ============================================================================

func TestListFlagsOptions(t *testing.T) {
	t.Run("DefaultsAscending", func(t *testing.T) {
		var f ListFlags
		opts, err := f.Options("providernet_name", "minimum")
		require.NoError(t, err)
		assert.Equal(t, []string{"providernet_name", "minimum"}, opts.SortKeys)
		assert.Equal(t, []string{"asc", "asc"}, opts.SortDirs)
	})

	t.Run("ExplicitKeysReplaceDefaults", func(t *testing.T) {
		f := ListFlags{SortKeys: []string{"name", "mtu"}, SortDirs: []string{"desc"}, Fields: []string{"id"}}
		opts, err := f.Options("type")
		require.NoError(t, err)
		assert.Equal(t, []string{"name", "mtu"}, opts.SortKeys)
		assert.Equal(t, []string{"desc", "asc"}, opts.SortDirs)
		assert.Equal(t, []string{"id"}, opts.Fields)
	})

	t.Run("MoreDirsThanKeys", func(t *testing.T) {
		f := ListFlags{SortKeys: []string{"name"}, SortDirs: []string{"asc", "desc"}}
		_, err := f.Options()
		assert.Error(t, err)
	})

	t.Run("InvalidDirection", func(t *testing.T) {
		f := ListFlags{SortKeys: []string{"name"}, SortDirs: []string{"up"}}
		_, err := f.Options()
		assert.ErrorContains(t, err, "invalid sort direction")
	})
}

// ============================================================================
// Output Tests
// ============================================================================

// testTableRenderer implements output.TableRenderer for testing
type testTableRenderer struct {
	headers []string
	rows    [][]string
}

func (t testTableRenderer) Headers() []string {
	return t.headers
}

func (t testTableRenderer) Rows() [][]string {
	return t.rows
}

var names = testTableRenderer{
	headers: []string{"NAME"},
	rows:    [][]string{{"foo"}, {"bar"}},
}

func TestPrintOutput_JSON(t *testing.T) {
	isolate(t)
	Flags.Output = "json"

	var buf bytes.Buffer
	require.NoError(t, PrintOutput(&buf, []string{"foo", "bar"}, false, "No items", names))

	assert.JSONEq(t, `["foo","bar"]`, buf.String())
}

func TestPrintOutput_YAML(t *testing.T) {
	isolate(t)
	Flags.Output = "yaml"

	var buf bytes.Buffer
	require.NoError(t, PrintOutput(&buf, []string{"foo", "bar"}, false, "No items", names))

	assert.Equal(t, "- foo\n- bar\n", buf.String())
}

func TestPrintOutput_Table_Empty(t *testing.T) {
	isolate(t)
	Flags.Output = "table"

	var buf bytes.Buffer
	require.NoError(t, PrintOutput(&buf, []string{}, true, "No items found.", testTableRenderer{headers: []string{"NAME"}}))

	assert.Equal(t, "No items found.\n", buf.String())
}

func TestPrintOutput_Table_WithData(t *testing.T) {
	isolate(t)
	Flags.Output = "table"

	var buf bytes.Buffer
	require.NoError(t, PrintOutput(&buf, []string{"foo", "bar"}, false, "No items found.", names))

	assert.Contains(t, buf.String(), "NAME")
	assert.Contains(t, buf.String(), "foo")
	assert.Contains(t, buf.String(), "bar")
}

func TestPrintOutput_JSON_EmptyIsStillJSON(t *testing.T) {
	isolate(t)
	Flags.Output = "json"

	var buf bytes.Buffer
	require.NoError(t, PrintOutput(&buf, []string{}, true, "No items found.", names))

	assert.JSONEq(t, `[]`, buf.String())
}

func TestPrintResource(t *testing.T) {
	isolate(t)

	Flags.Output = "table"
	var buf bytes.Buffer
	require.NoError(t, PrintResource(&buf, map[string]string{"name": "foo"}, names))
	assert.Contains(t, buf.String(), "NAME")
	assert.NotContains(t, buf.String(), `"name"`)

	Flags.Output = "json"
	buf.Reset()
	require.NoError(t, PrintResource(&buf, map[string]string{"name": "foo"}, names))
	assert.JSONEq(t, `{"name":"foo"}`, buf.String())
}

func TestPrintCreated_Table(t *testing.T) {
	isolate(t)
	Flags.Output = "table"

	var buf bytes.Buffer
	obj := map[string]any{"id": "h-1", "name": "compute-0"}
	require.NoError(t, PrintCreated(&buf, obj, "Created a new host:"))

	out := buf.String()
	assert.Contains(t, out, "Created a new host:")
	assert.Contains(t, out, "compute-0")
	assert.NotContains(t, out, "\033[")
}

func TestPrintCreated_JSONOmitsMessage(t *testing.T) {
	isolate(t)
	Flags.Output = "json"

	var buf bytes.Buffer
	require.NoError(t, PrintCreated(&buf, map[string]any{"id": "h-1"}, "Created a new host:"))

	assert.JSONEq(t, `{"id":"h-1"}`, buf.String())
}

func TestGetOutputFormatParsed(t *testing.T) {
	tests := []struct {
		flagValue string
		expected  output.Format
		wantErr   bool
	}{
		{"table", output.FormatTable, false},
		{"json", output.FormatJSON, false},
		{"yaml", output.FormatYAML, false},
		{"", output.FormatTable, false},
		{"invalid", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.flagValue, func(t *testing.T) {
			isolate(t)
			Flags.Output = tt.flagValue

			result, err := GetOutputFormatParsed()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGetOutputFormatParsed_FromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("NETCTL_OUTPUT", "yaml")

	result, err := GetOutputFormatParsed()
	require.NoError(t, err)
	assert.Equal(t, output.FormatYAML, result)
}

func TestIsColorDisabled(t *testing.T) {
	isolate(t)

	Flags.NoColor = true
	assert.True(t, IsColorDisabled())

	Flags.NoColor = false
	assert.False(t, IsColorDisabled())
}

func TestIsVerbose(t *testing.T) {
	isolate(t)

	Flags.Verbose = true
	assert.True(t, IsVerbose())

	Flags.Verbose = false
	assert.False(t, IsVerbose())
}

func TestRunDeleteWithConfirmation_Force(t *testing.T) {
	isolate(t)
	Flags.Output = "table"

	called := false
	var buf bytes.Buffer
	err := RunDeleteWithConfirmation(&buf, "host", "compute-0", true, func() error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
	assert.Contains(t, buf.String(), "Deleted host: compute-0")
}

func TestCreateError(t *testing.T) {
	conflict := fmt.Errorf("post: %w", &apiclient.APIError{StatusCode: http.StatusConflict, Message: "name taken"})
	err := CreateError("host", conflict)
	assert.EqualError(t, err, "host already exists or conflicts with an existing one: post: name taken")
	assert.True(t, apiclient.IsConflict(err))

	invalid := &apiclient.APIError{StatusCode: http.StatusBadRequest, Message: "bad mtu"}
	assert.EqualError(t, CreateError("provider network", invalid), "invalid provider network: bad mtu")

	other := errors.New("connection refused")
	err = CreateError("QoS policy", other)
	assert.EqualError(t, err, "failed to create QoS policy: connection refused")
	assert.ErrorIs(t, err, other)
}

// ============================================================================
// Client Tests
// ============================================================================

func TestGetAuthenticatedClient_NotLoggedIn(t *testing.T) {
	isolate(t)

	_, err := GetAuthenticatedClient()
	assert.ErrorIs(t, err, credentials.ErrNotLoggedIn)
}

func TestGetAuthenticatedClient_Flags(t *testing.T) {
	isolate(t)
	Flags.ServerURL = "http://localhost:9696"
	Flags.Token = "tok"

	client, err := GetAuthenticatedClient()
	require.NoError(t, err)
	assert.NotNil(t, client)
}
