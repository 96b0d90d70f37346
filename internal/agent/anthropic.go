package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
)

// AnthropicReasoner implements Reasoner over the Anthropic messages API via
// langchaingo. Tool schemas are passed through as function definitions; tool
// results travel back as tool-response content parts.
type AnthropicReasoner struct {
	llm llms.Model
}

// NewAnthropicReasoner creates a reasoner backed by the given Claude model
func NewAnthropicReasoner(model, apiKey string) (*AnthropicReasoner, error) {
	client, err := anthropic.New(
		anthropic.WithModel(model),
		anthropic.WithToken(apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("create anthropic client: %w", err)
	}
	return &AnthropicReasoner{llm: client}, nil
}

// NewReasonerFromModel wraps an existing langchaingo model; used in tests
// and for swapping providers.
func NewReasonerFromModel(model llms.Model) *AnthropicReasoner {
	return &AnthropicReasoner{llm: model}
}

// Reason sends the conversation and tool schemas to the model and maps its
// response back to a Decision
func (r *AnthropicReasoner) Reason(ctx context.Context, systemPrompt string, history []Message, tools []ToolSchema) (Decision, error) {
	messages := make([]llms.MessageContent, 0, len(history)+1)
	if systemPrompt != "" {
		messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt))
	}
	for _, m := range history {
		messages = append(messages, toMessageContent(m))
	}

	var opts []llms.CallOption
	if len(tools) > 0 {
		llmTools := make([]llms.Tool, len(tools))
		for i, t := range tools {
			llmTools[i] = llms.Tool{
				Type: "function",
				Function: &llms.FunctionDefinition{
					Name:        t.Name,
					Description: t.Description,
					Parameters:  t.Parameters,
				},
			}
		}
		opts = append(opts, llms.WithTools(llmTools))
	}

	resp, err := r.llm.GenerateContent(ctx, messages, opts...)
	if err != nil {
		return Decision{}, fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Decision{}, fmt.Errorf("reasoning response had no choices")
	}

	choice := resp.Choices[0]
	decision := Decision{FinalAnswer: choice.Content}
	for _, tc := range choice.ToolCalls {
		if tc.FunctionCall == nil {
			continue
		}
		decision.ToolCalls = append(decision.ToolCalls, ToolCallRequest{
			ID:        tc.ID,
			Name:      tc.FunctionCall.Name,
			Arguments: json.RawMessage(tc.FunctionCall.Arguments),
		})
	}
	return decision, nil
}

// toMessageContent converts one conversation message to langchaingo's format
func toMessageContent(m Message) llms.MessageContent {
	switch m.Role {
	case RoleAssistant:
		mc := llms.MessageContent{Role: llms.ChatMessageTypeAI}
		if m.Content != "" {
			mc.Parts = append(mc.Parts, llms.TextContent{Text: m.Content})
		}
		for _, tc := range m.ToolCalls {
			mc.Parts = append(mc.Parts, llms.ToolCall{
				ID:   tc.ID,
				Type: "function",
				FunctionCall: &llms.FunctionCall{
					Name:      tc.Name,
					Arguments: string(tc.Arguments),
				},
			})
		}
		return mc
	case RoleTool:
		return llms.MessageContent{
			Role: llms.ChatMessageTypeTool,
			Parts: []llms.ContentPart{
				llms.ToolCallResponse{
					ToolCallID: m.ToolCallID,
					Name:       m.ToolName,
					Content:    m.Content,
				},
			},
		}
	default:
		return llms.TextParts(llms.ChatMessageTypeHuman, m.Content)
	}
}
