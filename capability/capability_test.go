package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weatherDescriptor() Descriptor {
	return New(
		"get_current_weather",
		"Get the current weather in a given location",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"location": map[string]any{
					"type":        "string",
					"description": "The city and state, e.g. San Francisco, CA",
				},
				"unit": map[string]any{
					"type": "string",
					"enum": []string{"celsius", "fahrenheit"},
				},
			},
			"required": []string{"location"},
		},
	)
}

func TestDescriptorAccessors(t *testing.T) {
	d := weatherDescriptor()

	assert.Equal(t, "get_current_weather", d.Name())
	assert.Equal(t, "Get the current weather in a given location", d.Description())

	params := d.Parameters()
	assert.Equal(t, "object", params["type"])
	props, ok := params["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "location")
	assert.Contains(t, props, "unit")
}

func TestDescriptorNilParameters(t *testing.T) {
	d := New("noop", "Does nothing", nil)

	params := d.Parameters()
	assert.Equal(t, "object", params["type"])
	assert.Empty(t, params["properties"])
}

func TestDescriptorParametersCopy(t *testing.T) {
	d := weatherDescriptor()

	params := d.Parameters()
	params["type"] = "mutated"

	assert.Equal(t, "object", d.Parameters()["type"])
}

func TestNewSetPreservesOrder(t *testing.T) {
	first := New("first", "First", nil)
	second := New("second", "Second", nil)

	s, err := NewSet(first, second)
	require.NoError(t, err)

	assert.Equal(t, 2, s.Len())
	descs := s.Descriptors()
	assert.Equal(t, "first", descs[0].Name())
	assert.Equal(t, "second", descs[1].Name())
}

func TestNewSetRejectsDuplicates(t *testing.T) {
	_, err := NewSet(New("dup", "A", nil), New("dup", "B", nil))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate capability name")
}

func TestSetAddRejectsEmptyName(t *testing.T) {
	s, err := NewSet()
	require.NoError(t, err)

	assert.Error(t, s.Add(New("", "Nameless", nil)))
}

func TestSetGet(t *testing.T) {
	s, err := NewSet(weatherDescriptor())
	require.NoError(t, err)

	d, ok := s.Get("get_current_weather")
	assert.True(t, ok)
	assert.Equal(t, "get_current_weather", d.Name())

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestNilSetIsEmpty(t *testing.T) {
	var s *Set

	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.Descriptors())

	_, ok := s.Get("anything")
	assert.False(t, ok)
}

func TestZeroValueSetAdd(t *testing.T) {
	var s Set

	require.NoError(t, s.Add(New("first", "First", nil)))
	assert.Error(t, s.Add(New("first", "Duplicate", nil)))

	d, ok := s.Get("first")
	assert.True(t, ok)
	assert.Equal(t, "first", d.Name())
}

func TestMustSetPanicsOnDuplicate(t *testing.T) {
	assert.Panics(t, func() {
		MustSet(New("dup", "A", nil), New("dup", "B", nil))
	})
}
