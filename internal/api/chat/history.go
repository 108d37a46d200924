package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/FACorreiaa/go-eje-planner/internal/types"
)

// History is one session's conversation. Messages are kept in append order;
// replies can land out of order relative to the questions that caused them.
type History struct {
	mu       sync.Mutex
	messages []types.ChatMessage
	seq      int64
	pending  int
	now      func() time.Time
}

func NewHistory() *History {
	h := &History{now: time.Now}
	h.append(types.RoleModel, WelcomeMessage, 0)
	return h
}

// AddUser appends a user message and marks a reply as pending.
func (h *History) AddUser(text string) types.ChatMessage {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pending++
	return h.append(types.RoleUser, text, 0)
}

// AddReply appends the model reply to the user message with sequence replyTo.
func (h *History) AddReply(text string, replyTo int64) types.ChatMessage {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.pending > 0 {
		h.pending--
	}
	return h.append(types.RoleModel, text, replyTo)
}

func (h *History) Snapshot() types.ChatHistory {
	h.mu.Lock()
	defer h.mu.Unlock()
	msgs := make([]types.ChatMessage, len(h.messages))
	copy(msgs, h.messages)
	return types.ChatHistory{Messages: msgs, Pending: h.pending}
}

// Pending reports how many sends are still waiting for a reply.
func (h *History) Pending() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pending
}

// append requires h.mu held, except during construction.
func (h *History) append(role types.MessageRole, text string, replyTo int64) types.ChatMessage {
	h.seq++
	msg := types.ChatMessage{
		ID:        uuid.New(),
		Seq:       h.seq,
		ReplyTo:   replyTo,
		Role:      role,
		Text:      text,
		Timestamp: h.now(),
	}
	h.messages = append(h.messages, msg)
	return msg
}

// HistoryStore keeps one History per session, expiring idle ones.
type HistoryStore struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewHistoryStore(ttl time.Duration) *HistoryStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &HistoryStore{cache: cache.New(ttl, ttl/2)}
}

func (s *HistoryStore) GetOrCreate(sessionID string) *History {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.cache.Get(sessionID); ok {
		h := v.(*History)
		s.cache.Set(sessionID, h, cache.DefaultExpiration)
		return h
	}
	h := NewHistory()
	s.cache.Set(sessionID, h, cache.DefaultExpiration)
	return h
}

func (s *HistoryStore) Delete(sessionID string) {
	s.cache.Delete(sessionID)
}
