package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type weatherArgs struct {
	Location string `json:"location" jsonschema:"description=The city and state"`
	Unit     string `json:"unit,omitempty" jsonschema:"enum=celsius,enum=fahrenheit"`
}

func TestFromStruct(t *testing.T) {
	d, err := FromStruct("get_current_weather", "Get the current weather", weatherArgs{})
	require.NoError(t, err)

	assert.Equal(t, "get_current_weather", d.Name())
	assert.Equal(t, "Get the current weather", d.Description())

	params := d.Parameters()
	assert.Equal(t, "object", params["type"])
	assert.NotContains(t, params, "$schema")
	assert.NotContains(t, params, "$id")

	props, ok := params["properties"].(map[string]any)
	require.True(t, ok)

	location, ok := props["location"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "string", location["type"])
	assert.Equal(t, "The city and state", location["description"])

	unit, ok := props["unit"].(map[string]any)
	require.True(t, ok)
	assert.ElementsMatch(t, []any{"celsius", "fahrenheit"}, unit["enum"])
}

func TestFromStructRequired(t *testing.T) {
	d, err := FromStruct("get_current_weather", "Get the current weather", weatherArgs{})
	require.NoError(t, err)

	required, ok := d.Parameters()["required"].([]any)
	require.True(t, ok)

	// Fields without omitempty are required.
	assert.ElementsMatch(t, []any{"location"}, required)
}

func TestFromStructPointer(t *testing.T) {
	d, err := FromStruct("get_current_weather", "Get the current weather", &weatherArgs{})
	require.NoError(t, err)

	props, ok := d.Parameters()["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "location")
}
