// Package anthropic provides a model wrapper for the Anthropic Claude
// Messages API with function/tool calling. The dispatch mode is encoded as
// the request's tool_choice.
package anthropic

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/shared/constant"
	"github.com/hupe1980/structcall/dispatch"
	"github.com/hupe1980/structcall/model"
)

// Options configures the Anthropic model adapter (temperature, model id,
// max tokens, API key). Extend via functional options to preserve stability.
type Options struct {
	Model       anthropic.Model
	Temperature float64
	MaxTokens   int64
	// APIKey overrides the SDK's environment based credential lookup.
	APIKey string
}

// Model wraps the Anthropic Messages API behind the generic model.Model interface.
type Model struct {
	client *anthropic.Client
	opts   Options
}

// NewModel creates a new Anthropic model using the official client
func NewModel(optFns ...func(o *Options)) *Model {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}

	client := anthropic.NewClient(clientOpts...)

	return &Model{client: &client, opts: opts}
}

// NewModelFromClient creates a new Anthropic model from an existing client
func NewModelFromClient(client *anthropic.Client, optFns ...func(o *Options)) *Model {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Model{client: client, opts: opts}
}

func defaultOptions() Options {
	return Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.7,
		MaxTokens:   4096,
	}
}

// Complete performs a single non-streaming Messages API round trip.
func (m *Model) Complete(ctx context.Context, req model.Request) (*model.Response, error) {
	params := anthropic.MessageNewParams{
		Model:       m.opts.Model,
		Messages:    buildMessages(req.Messages),
		MaxTokens:   m.opts.MaxTokens,
		Temperature: anthropic.Float(m.opts.Temperature),
	}

	if systemBlocks := extractSystemBlocks(req.Messages); len(systemBlocks) > 0 {
		params.System = systemBlocks
	}

	if len(req.Tools) > 0 {
		params.Tools = buildTools(req.Tools)
		params.ToolChoice = buildToolChoice(req.Mode)
	}

	resp, err := m.client.Messages.New(ctx, params)
	if err != nil {
		return nil, model.NewServiceError("anthropic", err)
	}

	out := &model.Response{
		ID:           resp.ID,
		FinishReason: string(resp.StopReason),
		Usage: &model.TokenUsage{
			PromptTokens:     int(resp.Usage.InputTokens),
			CompletionTokens: int(resp.Usage.OutputTokens),
			TotalTokens:      int(resp.Usage.InputTokens + resp.Usage.OutputTokens),
		},
	}
	if out.FinishReason == "" {
		out.FinishReason = "stop"
	}

	for _, block := range resp.Content {
		switch block.Type {
		case "text":
			textBlock := block.AsText()
			out.Text += textBlock.Text
		case "tool_use":
			if out.Call != nil {
				continue // single capability call per response
			}
			toolBlock := block.AsToolUse()
			args := ""
			if toolBlock.Input != nil {
				encoded, err := encodeToolInput(toolBlock.Input)
				if err != nil {
					return nil, model.NewServiceError("anthropic",
						fmt.Errorf("encode tool_use input for %s: %w", toolBlock.Name, err))
				}
				args = encoded
			}
			out.Call = &model.FunctionCall{
				ID:        toolBlock.ID,
				Name:      toolBlock.Name,
				Arguments: args,
			}
		}
	}

	return out, nil
}

// encodeToolInput serializes a tool_use input payload into the raw argument
// string carried by FunctionCall.
func encodeToolInput(input any) (string, error) {
	argsBytes, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	return string(argsBytes), nil
}

// buildMessages converts normalized messages to the Anthropic message format.
// System messages are handled separately via extractSystemBlocks.
func buildMessages(messages []model.Message) []anthropic.MessageParam {
	var out []anthropic.MessageParam
	for _, msg := range messages {
		if msg.Role == model.RoleSystem || msg.Content == "" {
			continue
		}
		switch msg.Role {
		case model.RoleAssistant:
			out = append(out, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		default:
			out = append(out, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}
	return out
}

// extractSystemBlocks collects system messages into system prompt blocks.
func extractSystemBlocks(messages []model.Message) []anthropic.TextBlockParam {
	var blocks []anthropic.TextBlockParam
	for _, msg := range messages {
		if msg.Role == model.RoleSystem && msg.Content != "" {
			blocks = append(blocks, anthropic.TextBlockParam{Text: msg.Content})
		}
	}
	return blocks
}

// buildTools converts capability definitions to the Anthropic tool format.
func buildTools(defs []model.ToolDefinition) []anthropic.ToolUnionParam {
	tools := make([]anthropic.ToolUnionParam, len(defs))

	for i, tdef := range defs {
		inputSchema := anthropic.ToolInputSchemaParam{
			Type: constant.Object("object"),
		}

		if params := tdef.Function.Parameters; params != nil {
			if properties, exists := params["properties"]; exists {
				inputSchema.Properties = properties
			}
			if required, exists := params["required"]; exists {
				switch req := required.(type) {
				case []string:
					inputSchema.Required = req
				case []any:
					for _, r := range req {
						if s, ok := r.(string); ok {
							inputSchema.Required = append(inputSchema.Required, s)
						}
					}
				}
			}
		}

		tools[i] = anthropic.ToolUnionParamOfTool(inputSchema, tdef.Function.Name)
		if tools[i].OfTool != nil && tdef.Function.Description != "" {
			tools[i].OfTool.Description = anthropic.String(tdef.Function.Description)
		}
	}

	return tools
}

// buildToolChoice encodes the dispatch mode as an Anthropic tool_choice value.
func buildToolChoice(mode dispatch.Mode) anthropic.ToolChoiceUnionParam {
	switch mode.Kind() {
	case dispatch.KindNone:
		return anthropic.ToolChoiceUnionParam{
			OfNone: &anthropic.ToolChoiceNoneParam{},
		}
	case dispatch.KindForced:
		name, _ := mode.CapabilityName()
		return anthropic.ToolChoiceUnionParam{
			OfTool: &anthropic.ToolChoiceToolParam{Name: name},
		}
	default:
		return anthropic.ToolChoiceUnionParam{
			OfAuto: &anthropic.ToolChoiceAutoParam{},
		}
	}
}

// Info returns metadata describing this Anthropic model implementation.
func (m *Model) Info() model.Info {
	return model.Info{
		Name:          string(m.opts.Model),
		Provider:      "anthropic",
		SupportsTools: true,
	}
}
