package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleReport() *Report {
	return &Report{
		Combined: " ## Apple\n\n Green or red.\n\n ## Orange\n\n Round fruit.",
		Units: []UnitResult{
			{Label: "apple.rs", Doc: " ## Apple\n\n Green or red."},
			{Label: "empty.rs", Doc: ""},
			{Label: "orange.rs", Doc: " ## Orange\n\n Round fruit."},
		},
	}
}

func TestBytes_Text(t *testing.T) {
	rep := sampleReport()

	data, err := Bytes("text", rep)
	require.NoError(t, err)
	assert.Equal(t, rep.Combined+"\n", string(data))
}

func TestBytes_TextDefaultsWhenFormatEmpty(t *testing.T) {
	data, err := Bytes("", sampleReport())
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "\n"))
}

func TestBytes_TextEmptyCombined(t *testing.T) {
	data, err := Bytes("text", &Report{})
	require.NoError(t, err)
	assert.Empty(t, data, "empty docs must render to empty output, not a lone newline")
}

func TestBytes_JSON(t *testing.T) {
	rep := sampleReport()

	data, err := Bytes("json", rep)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "\n"))

	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *rep, decoded)
}

func TestBytes_YAML(t *testing.T) {
	rep := sampleReport()

	for _, format := range []string{"yaml", "yml"} {
		data, err := Bytes(format, rep)
		require.NoError(t, err)

		var decoded Report
		require.NoError(t, yaml.Unmarshal(data, &decoded))
		assert.Equal(t, *rep, decoded)
	}
}

func TestBytes_UnsupportedFormat(t *testing.T) {
	_, err := Bytes("toml", sampleReport())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
