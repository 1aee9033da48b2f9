package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{name: "table", input: "table", want: FormatTable},
		{name: "empty defaults to table", input: "", want: FormatTable},
		{name: "json", input: "json", want: FormatJSON},
		{name: "JSON uppercase", input: "JSON", want: FormatJSON},
		{name: "yaml", input: "yaml", want: FormatYAML},
		{name: "yml alias", input: "yml", want: FormatYAML},
		{name: "whitespace trimmed", input: "  table  ", want: FormatTable},
		{name: "invalid format", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrinter_Print(t *testing.T) {
	table := NewTableData("ID", "NAME")
	table.AddRow("h-1", "compute-0")

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewPrinter(&buf, FormatTable, false).Print(table))
		assert.Contains(t, buf.String(), "compute-0")
	})

	t.Run("non renderer falls back to json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewPrinter(&buf, FormatTable, false).Print(map[string]string{"id": "h-1"}))
		assert.Contains(t, buf.String(), `"id": "h-1"`)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewPrinter(&buf, FormatYAML, false).Print(map[string]string{"id": "h-1"}))
		assert.Contains(t, buf.String(), "id: h-1")
	})
}

func TestPrinter_PrintWithTable(t *testing.T) {
	raw := map[string]any{"segmentation_id": 10}
	table := NewTableData("SEGMENTATION ID")
	table.AddRow("10")

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, FormatJSON, false).PrintWithTable(raw, table))
	assert.Contains(t, buf.String(), `"segmentation_id": 10`)

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, FormatTable, false).PrintWithTable(raw, table))
	assert.Contains(t, buf.String(), "SEGMENTATION ID")
}

func TestPrinterMessages(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, FormatTable, false)

	printer.Success("Host compute-0 deleted successfully")
	printer.Warning("warning message")
	printer.Error("error message")

	assert.Equal(t, "Host compute-0 deleted successfully\nwarning message\nerror message\n", buf.String())
}

func TestPrinterMessages_Color(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, FormatTable, true).Success("done")
	assert.Equal(t, "\033[32mdone\033[0m\n", buf.String())
}
