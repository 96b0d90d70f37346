package agent

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// budgetExhaustedFallback is the terminal answer when the reasoner cannot be
// coaxed into finishing after the tool budget runs out.
const budgetExhaustedFallback = "I gathered what I could but couldn't finish composing a full answer. Here's my best response from the verses found so far - feel free to ask again for more detail."

// Runner drives one conversational turn through the reasoning loop:
// reason, execute requested tools, feed results back, repeat until the
// reasoner produces a final answer or the tool-call budget is exhausted.
type Runner struct {
	reasoner     Reasoner
	registry     *Registry
	memory       *ConversationStore
	systemPrompt string
	maxToolCalls int
	logger       *zap.Logger
}

// RunnerConfig configures a Runner. MaxToolCalls is required; there is no
// hidden default.
type RunnerConfig struct {
	Reasoner     Reasoner
	Registry     *Registry
	Memory       *ConversationStore
	SystemPrompt string
	MaxToolCalls int
	Logger       *zap.Logger
}

// NewRunner creates a turn runner. Fails when the tool-call budget is not
// explicitly configured.
func NewRunner(cfg RunnerConfig) (*Runner, error) {
	if cfg.MaxToolCalls <= 0 {
		return nil, fmt.Errorf("max tool calls must be a positive, explicit value")
	}
	if cfg.Reasoner == nil {
		return nil, fmt.Errorf("reasoner is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	memory := cfg.Memory
	if memory == nil {
		memory = NewConversationStore()
	}
	return &Runner{
		reasoner:     cfg.Reasoner,
		registry:     cfg.Registry,
		memory:       memory,
		systemPrompt: cfg.SystemPrompt,
		maxToolCalls: cfg.MaxToolCalls,
		logger:       logger,
	}, nil
}

// Run executes one turn for a conversation id and returns the final answer.
// Prior turns under the same id are visible to the reasoner; the turn's
// messages are appended to the conversation log on completion. Concurrent
// turns on the same id must be serialized by the caller.
func (r *Runner) Run(ctx context.Context, conversationID, userMessage string) (string, error) {
	history := r.memory.History(conversationID)
	turn := []Message{{Role: RoleUser, Content: userMessage}}
	toolCallsUsed := 0

	for {
		decision, err := r.reasoner.Reason(ctx, r.systemPrompt, append(history, turn...), r.registry.Schemas())
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReasonerUnavailable, err)
		}

		if len(decision.ToolCalls) == 0 {
			turn = append(turn, Message{Role: RoleAssistant, Content: decision.FinalAnswer})
			r.memory.Append(conversationID, turn...)
			return decision.FinalAnswer, nil
		}

		executed := decision.ToolCalls
		if remaining := r.maxToolCalls - toolCallsUsed; len(executed) > remaining {
			executed = executed[:remaining]
		}

		turn = append(turn, Message{Role: RoleAssistant, Content: decision.FinalAnswer, ToolCalls: executed})
		for _, call := range executed {
			turn = append(turn, r.executeCall(ctx, call))
			toolCallsUsed++
		}

		if toolCallsUsed >= r.maxToolCalls {
			answer := r.forceFinalAnswer(ctx, conversationID, history, turn)
			return answer, nil
		}
	}
}

// executeCall runs one tool call, converting schema violations and execution
// failures into corrective tool results instead of surfacing them.
func (r *Runner) executeCall(ctx context.Context, call ToolCallRequest) Message {
	result, err := r.registry.Execute(ctx, call)
	if err != nil {
		r.logger.Warn("tool call failed",
			zap.String("tool", call.Name),
			zap.Error(err))
		switch {
		case errors.Is(err, ErrToolSchemaViolation):
			result = fmt.Sprintf("Tool %s rejected the arguments: %v. Correct them and try again.", call.Name, err)
		case errors.Is(err, ErrToolNotFound):
			result = fmt.Sprintf("There is no tool named %s. Use one of the provided tools.", call.Name)
		default:
			result = fmt.Sprintf("Tool %s failed: %v", call.Name, err)
		}
	}
	return Message{
		Role:       RoleTool,
		Content:    result,
		ToolCallID: call.ID,
		ToolName:   call.Name,
	}
}

// forceFinalAnswer ends the turn after the budget is exhausted: the reasoner
// gets one more chance to answer from gathered results, with tools withheld.
func (r *Runner) forceFinalAnswer(ctx context.Context, conversationID string, history, turn []Message) string {
	r.logger.Info("tool budget exhausted, forcing final answer",
		zap.String("conversation_id", conversationID),
		zap.Int("budget", r.maxToolCalls))

	nudge := Message{
		Role:    RoleUser,
		Content: "Provide your final answer now using only the information already gathered. Do not request any more tools.",
	}
	decision, err := r.reasoner.Reason(ctx, r.systemPrompt, append(append(history, turn...), nudge), nil)

	answer := budgetExhaustedFallback
	if err == nil && decision.FinalAnswer != "" && len(decision.ToolCalls) == 0 {
		answer = decision.FinalAnswer
	}

	turn = append(turn, Message{Role: RoleAssistant, Content: answer})
	r.memory.Append(conversationID, turn...)
	return answer
}
