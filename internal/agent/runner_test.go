package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubReasoner drives the runner from a scripted function. step starts at 1.
type stubReasoner struct {
	calls int
	fn    func(step int, history []Message, tools []ToolSchema) (Decision, error)
}

func (s *stubReasoner) Reason(_ context.Context, _ string, history []Message, tools []ToolSchema) (Decision, error) {
	s.calls++
	return s.fn(s.calls, history, tools)
}

func curatedCall(id string) ToolCallRequest {
	return ToolCallRequest{
		ID:        id,
		Name:      "search_curated_verses",
		Arguments: json.RawMessage(`{"emotion": "anxiety"}`),
	}
}

func countToolMessages(messages []Message) int {
	n := 0
	for _, m := range messages {
		if m.Role == RoleTool {
			n++
		}
	}
	return n
}

func newTestRunner(t *testing.T, reasoner Reasoner, maxToolCalls int) (*Runner, *ConversationStore) {
	t.Helper()
	memory := NewConversationStore()
	runner, err := NewRunner(RunnerConfig{
		Reasoner:     reasoner,
		Registry:     NewRegistry(RegistryDeps{}),
		Memory:       memory,
		SystemPrompt: "You are a helpful companion.",
		MaxToolCalls: maxToolCalls,
	})
	require.NoError(t, err)
	return runner, memory
}

func TestNewRunnerRequiresExplicitBudget(t *testing.T) {
	_, err := NewRunner(RunnerConfig{Reasoner: &stubReasoner{}, Registry: NewRegistry(RegistryDeps{})})
	assert.Error(t, err)

	_, err = NewRunner(RunnerConfig{Reasoner: &stubReasoner{}, Registry: NewRegistry(RegistryDeps{}), MaxToolCalls: -1})
	assert.Error(t, err)
}

func TestNewRunnerRequiresReasoner(t *testing.T) {
	_, err := NewRunner(RunnerConfig{Registry: NewRegistry(RegistryDeps{}), MaxToolCalls: 3})
	assert.Error(t, err)
}

func TestRunFinalAnswerWithoutTools(t *testing.T) {
	reasoner := &stubReasoner{fn: func(int, []Message, []ToolSchema) (Decision, error) {
		return Decision{FinalAnswer: "Peace I leave with you."}, nil
	}}
	runner, memory := newTestRunner(t, reasoner, 3)

	answer, err := runner.Run(context.Background(), "conv-1", "I need comfort")
	require.NoError(t, err)
	assert.Equal(t, "Peace I leave with you.", answer)
	assert.Equal(t, 1, reasoner.calls)
	assert.Equal(t, 2, memory.Len("conv-1"))
}

func TestRunStopsAfterExactBudget(t *testing.T) {
	// The reasoner keeps asking for one more tool call until tools are
	// withheld, then answers.
	reasoner := &stubReasoner{fn: func(step int, _ []Message, tools []ToolSchema) (Decision, error) {
		if tools == nil {
			return Decision{FinalAnswer: "Here is what I found."}, nil
		}
		return Decision{ToolCalls: []ToolCallRequest{curatedCall(fmt.Sprintf("call-%d", step))}}, nil
	}}
	runner, memory := newTestRunner(t, reasoner, 3)

	answer, err := runner.Run(context.Background(), "conv-1", "I feel anxious")
	require.NoError(t, err)
	assert.Equal(t, "Here is what I found.", answer)
	// Three tool rounds plus the forced final call.
	assert.Equal(t, 4, reasoner.calls)
	assert.Equal(t, 3, countToolMessages(memory.History("conv-1")))
}

func TestRunTruncatesBatchToRemainingBudget(t *testing.T) {
	reasoner := &stubReasoner{fn: func(_ int, _ []Message, tools []ToolSchema) (Decision, error) {
		if tools == nil {
			return Decision{FinalAnswer: "done"}, nil
		}
		return Decision{ToolCalls: []ToolCallRequest{
			curatedCall("call-a"), curatedCall("call-b"), curatedCall("call-c"),
		}}, nil
	}}
	runner, memory := newTestRunner(t, reasoner, 2)

	_, err := runner.Run(context.Background(), "conv-1", "I feel anxious")
	require.NoError(t, err)
	assert.Equal(t, 2, countToolMessages(memory.History("conv-1")))
}

func TestRunFallbackWhenReasonerWontStop(t *testing.T) {
	// Even the forced, tools-withheld call keeps demanding tools.
	reasoner := &stubReasoner{fn: func(step int, _ []Message, _ []ToolSchema) (Decision, error) {
		return Decision{ToolCalls: []ToolCallRequest{curatedCall(fmt.Sprintf("call-%d", step))}}, nil
	}}
	runner, memory := newTestRunner(t, reasoner, 2)

	answer, err := runner.Run(context.Background(), "conv-1", "I feel anxious")
	require.NoError(t, err)
	assert.Equal(t, budgetExhaustedFallback, answer)
	assert.Equal(t, 2, countToolMessages(memory.History("conv-1")))
}

func TestRunFeedsSchemaViolationBack(t *testing.T) {
	var corrective string
	reasoner := &stubReasoner{fn: func(step int, history []Message, _ []ToolSchema) (Decision, error) {
		if step == 1 {
			return Decision{ToolCalls: []ToolCallRequest{{
				ID:        "call-1",
				Name:      "search_curated_verses",
				Arguments: json.RawMessage(`{"feeling": "anxiety"}`),
			}}}, nil
		}
		corrective = history[len(history)-1].Content
		return Decision{FinalAnswer: "corrected"}, nil
	}}
	runner, _ := newTestRunner(t, reasoner, 5)

	answer, err := runner.Run(context.Background(), "conv-1", "I feel anxious")
	require.NoError(t, err)
	assert.Equal(t, "corrected", answer)
	assert.Contains(t, corrective, "rejected the arguments")
	assert.Contains(t, corrective, "search_curated_verses")
}

func TestRunFeedsUnknownToolBack(t *testing.T) {
	var corrective string
	reasoner := &stubReasoner{fn: func(step int, history []Message, _ []ToolSchema) (Decision, error) {
		if step == 1 {
			return Decision{ToolCalls: []ToolCallRequest{{ID: "call-1", Name: "summon_verse"}}}, nil
		}
		corrective = history[len(history)-1].Content
		return Decision{FinalAnswer: "ok"}, nil
	}}
	runner, _ := newTestRunner(t, reasoner, 5)

	_, err := runner.Run(context.Background(), "conv-1", "hi")
	require.NoError(t, err)
	assert.Contains(t, corrective, "no tool named summon_verse")
}

func TestRunReasonerFailure(t *testing.T) {
	reasoner := &stubReasoner{fn: func(int, []Message, []ToolSchema) (Decision, error) {
		return Decision{}, errors.New("api down")
	}}
	runner, memory := newTestRunner(t, reasoner, 3)

	_, err := runner.Run(context.Background(), "conv-1", "hi")
	assert.ErrorIs(t, err, ErrReasonerUnavailable)
	assert.Equal(t, 0, memory.Len("conv-1"))
}

func TestRunPriorTurnsVisibleToReasoner(t *testing.T) {
	var historyLens []int
	reasoner := &stubReasoner{fn: func(_ int, history []Message, _ []ToolSchema) (Decision, error) {
		historyLens = append(historyLens, len(history))
		return Decision{FinalAnswer: "answer"}, nil
	}}
	runner, _ := newTestRunner(t, reasoner, 3)

	_, err := runner.Run(context.Background(), "conv-1", "first")
	require.NoError(t, err)
	_, err = runner.Run(context.Background(), "conv-1", "second")
	require.NoError(t, err)

	require.Len(t, historyLens, 2)
	assert.Equal(t, 1, historyLens[0])
	// first turn's user+assistant pair plus the new user message
	assert.Equal(t, 3, historyLens[1])
}

func TestRunConversationsAreIsolated(t *testing.T) {
	reasoner := &stubReasoner{fn: func(int, []Message, []ToolSchema) (Decision, error) {
		return Decision{FinalAnswer: "answer"}, nil
	}}
	runner, memory := newTestRunner(t, reasoner, 3)

	_, err := runner.Run(context.Background(), "conv-a", "hello")
	require.NoError(t, err)

	assert.Equal(t, 2, memory.Len("conv-a"))
	assert.Equal(t, 0, memory.Len("conv-b"))
}
