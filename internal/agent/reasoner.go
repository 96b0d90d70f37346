package agent

import (
	"context"
	"encoding/json"
)

// Role identifies who produced a conversation message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is one entry in a conversation history. Assistant messages may
// carry tool-call requests; tool messages carry one tool result.
type Message struct {
	Role       Role
	Content    string
	ToolCalls  []ToolCallRequest // assistant messages only
	ToolCallID string            // tool messages only
	ToolName   string            // tool messages only
}

// ToolCallRequest is one tool invocation requested by the reasoner
type ToolCallRequest struct {
	ID        string
	Name      string
	Arguments json.RawMessage
}

// ToolSchema describes one tool to the reasoner
type ToolSchema struct {
	Name        string
	Description string
	Parameters  map[string]any // JSON schema for the input arguments
}

// Decision is the reasoner's output for one step: either a final answer
// (no tool calls) or a list of tool calls to execute and feed back.
type Decision struct {
	FinalAnswer string
	ToolCalls   []ToolCallRequest
}

// Reasoner is the external reasoning capability: given system prompt,
// history, and the available tool schemas, it returns either a final text
// answer or tool invocation requests. Any service implementing this contract
// can drive the agent; tests use a stub.
type Reasoner interface {
	Reason(ctx context.Context, systemPrompt string, history []Message, tools []ToolSchema) (Decision, error)
}
