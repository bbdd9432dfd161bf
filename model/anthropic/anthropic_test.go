package anthropic

import (
	"math"
	"testing"

	"github.com/hupe1980/structcall/dispatch"
	"github.com/hupe1980/structcall/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weatherDefinition(required any) model.ToolDefinition {
	return model.ToolDefinition{
		Type: "function",
		Function: model.FunctionDefinition{
			Name:        "get_current_weather",
			Description: "Get the current weather in a given location",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"location": map[string]any{"type": "string"},
					"unit": map[string]any{
						"type": "string",
						"enum": []string{"celsius", "fahrenheit"},
					},
				},
				"required": required,
			},
		},
	}
}

func TestBuildToolsPreservesDescriptor(t *testing.T) {
	tools := buildTools([]model.ToolDefinition{weatherDefinition([]string{"location"})})
	require.Len(t, tools, 1)

	tool := tools[0].OfTool
	require.NotNil(t, tool)
	assert.Equal(t, "get_current_weather", tool.Name)
	assert.Equal(t, "Get the current weather in a given location", tool.Description.Value)

	props, ok := tool.InputSchema.Properties.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "location")
	assert.Contains(t, props, "unit")
	assert.Equal(t, []string{"location"}, tool.InputSchema.Required)
}

// Schemas decoded from JSON carry the required list as []any; both shapes
// must survive conversion.
func TestBuildToolsRequiredFromAnySlice(t *testing.T) {
	tools := buildTools([]model.ToolDefinition{weatherDefinition([]any{"location", "unit"})})
	require.Len(t, tools, 1)

	require.NotNil(t, tools[0].OfTool)
	assert.Equal(t, []string{"location", "unit"}, tools[0].OfTool.InputSchema.Required)
}

func TestBuildToolsWithoutParameters(t *testing.T) {
	tools := buildTools([]model.ToolDefinition{{
		Type:     "function",
		Function: model.FunctionDefinition{Name: "noop"},
	}})
	require.Len(t, tools, 1)

	tool := tools[0].OfTool
	require.NotNil(t, tool)
	assert.Equal(t, "noop", tool.Name)
	assert.Nil(t, tool.InputSchema.Properties)
	assert.Empty(t, tool.InputSchema.Required)
}

func TestBuildToolChoice(t *testing.T) {
	auto := buildToolChoice(dispatch.Auto())
	assert.NotNil(t, auto.OfAuto)

	none := buildToolChoice(dispatch.None())
	assert.NotNil(t, none.OfNone)

	forced := buildToolChoice(dispatch.Forced("get_current_weather"))
	require.NotNil(t, forced.OfTool)
	assert.Equal(t, "get_current_weather", forced.OfTool.Name)
}

func TestBuildMessagesRoles(t *testing.T) {
	messages := buildMessages([]model.Message{
		{Role: model.RoleSystem, Content: "You are terse."},
		{Role: model.RoleUser, Content: "Hello"},
		{Role: model.RoleAssistant, Content: "Hi"},
	})

	// System messages are carried as system blocks, not conversation turns.
	require.Len(t, messages, 2)
	assert.Equal(t, "user", string(messages[0].Role))
	assert.Equal(t, "assistant", string(messages[1].Role))
}

func TestExtractSystemBlocks(t *testing.T) {
	blocks := extractSystemBlocks([]model.Message{
		{Role: model.RoleSystem, Content: "You are terse."},
		{Role: model.RoleUser, Content: "Hello"},
	})

	require.Len(t, blocks, 1)
	assert.Equal(t, "You are terse.", blocks[0].Text)
}

func TestEncodeToolInput(t *testing.T) {
	args, err := encodeToolInput(map[string]any{"location": "Boston"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"location":"Boston"}`, args)
}

func TestEncodeToolInputUnsupportedValue(t *testing.T) {
	_, err := encodeToolInput(map[string]any{"bad": math.Inf(1)})
	assert.Error(t, err)
}
