package agent

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryUnknownConversation(t *testing.T) {
	store := NewConversationStore()

	history := store.History("nope")
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

func TestAppendPreservesOrder(t *testing.T) {
	store := NewConversationStore()
	store.Append("conv-1", Message{Role: RoleUser, Content: "first"})
	store.Append("conv-1",
		Message{Role: RoleAssistant, Content: "second"},
		Message{Role: RoleUser, Content: "third"},
	)

	history := store.History("conv-1")
	require.Len(t, history, 3)
	assert.Equal(t, "first", history[0].Content)
	assert.Equal(t, "second", history[1].Content)
	assert.Equal(t, "third", history[2].Content)
}

func TestHistoryReturnsCopy(t *testing.T) {
	store := NewConversationStore()
	store.Append("conv-1", Message{Role: RoleUser, Content: "original"})

	history := store.History("conv-1")
	history[0].Content = "mutated"

	assert.Equal(t, "original", store.History("conv-1")[0].Content)
}

func TestConversationsIndependent(t *testing.T) {
	store := NewConversationStore()
	store.Append("conv-a", Message{Role: RoleUser, Content: "a"})
	store.Append("conv-b", Message{Role: RoleUser, Content: "b"}, Message{Role: RoleAssistant, Content: "reply"})

	assert.Equal(t, 1, store.Len("conv-a"))
	assert.Equal(t, 2, store.Len("conv-b"))
	assert.Equal(t, 0, store.Len("conv-c"))
}

func TestConcurrentAppendAcrossConversations(t *testing.T) {
	store := NewConversationStore()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("conv-%d", i)
			for j := 0; j < 50; j++ {
				store.Append(id, Message{Role: RoleUser, Content: "m"})
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < 8; i++ {
		assert.Equal(t, 50, store.Len(fmt.Sprintf("conv-%d", i)))
	}
}
