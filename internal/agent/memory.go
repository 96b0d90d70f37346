package agent

import "sync"

// ConversationStore keeps per-conversation message logs. Each conversation
// id owns an independent append-only history; the store synchronizes access
// across ids but does not serialize concurrent turns within one id (a caller
// concern).
type ConversationStore struct {
	mu            sync.RWMutex
	conversations map[string][]Message
}

// NewConversationStore creates an empty conversation store
func NewConversationStore() *ConversationStore {
	return &ConversationStore{conversations: make(map[string][]Message)}
}

// History returns a copy of the message log for a conversation id.
// Unknown ids yield an empty history.
func (s *ConversationStore) History(conversationID string) []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	log := s.conversations[conversationID]
	out := make([]Message, len(log))
	copy(out, log)
	return out
}

// Append adds messages to the end of a conversation's log
func (s *ConversationStore) Append(conversationID string, messages ...Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations[conversationID] = append(s.conversations[conversationID], messages...)
}

// Len reports the number of messages stored for a conversation id
func (s *ConversationStore) Len(conversationID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.conversations[conversationID])
}
