package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintYAML(t *testing.T) {
	data := struct {
		Name string `yaml:"name"`
		MTU  int    `yaml:"mtu"`
	}{
		Name: "group0-data0",
		MTU:  1500,
	}

	var buf bytes.Buffer
	require.NoError(t, PrintYAML(&buf, data))

	assert.Contains(t, buf.String(), "name: group0-data0")
	assert.Contains(t, buf.String(), "mtu: 1500")
}

func TestPrintYAMLArray(t *testing.T) {
	data := []map[string]string{{"name": "a"}, {"name": "b"}}

	var buf bytes.Buffer
	require.NoError(t, PrintYAML(&buf, data))

	assert.Contains(t, buf.String(), "- name: a")
	assert.Contains(t, buf.String(), "- name: b")
}
