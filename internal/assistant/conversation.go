package assistant

import (
	"sync"
	"time"

	"concierge/pkg/models"
)

// Conversation is a transient, in-memory transcript. The core never persists
// chat history; durable storage is a collaborator concern.
type Conversation struct {
	ID        string               `json:"id"`
	Messages  []models.ChatMessage `json:"messages"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

type ConversationStore struct {
	conversations map[string]*Conversation
	mu            sync.RWMutex
}

func NewConversationStore() *ConversationStore {
	return &ConversationStore{
		conversations: make(map[string]*Conversation),
	}
}

func (s *ConversationStore) Create(id string) *Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv := &Conversation{
		ID:        id,
		Messages:  make([]models.ChatMessage, 0),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	s.conversations[id] = conv
	return conv
}

func (s *ConversationStore) Get(id string) *Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.conversations[id]
}

func (s *ConversationStore) Append(id string, messages ...models.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if conv, ok := s.conversations[id]; ok {
		conv.Messages = append(conv.Messages, messages...)
		conv.UpdatedAt = time.Now()
	}
}

func (s *ConversationStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.conversations, id)
}

// Cleanup drops conversations idle for longer than maxAge.
func (s *ConversationStore) Cleanup(maxAge time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	for id, conv := range s.conversations {
		if conv.UpdatedAt.Before(cutoff) {
			delete(s.conversations, id)
		}
	}
}
