// Package session owns per-user conversational state: the derived chunk set,
// the latest persisted-history snapshot, and the bounded in-session memory,
// plus the capacity-evicting cache that holds one session per identifier.
package session

import (
	"slices"
	"sync"

	"github.com/teddyfinance/assistant/internal/models"
)

// MemoryWindow is the number of most-recent turns retained in-session.
const MemoryWindow = 5

// Session is the per-identifier bundle of cached chunks, persisted-history
// snapshot, and in-session memory. Field access is safe for concurrent use;
// a separate turn lock serializes whole turns for one identifier.
type Session struct {
	mu     sync.RWMutex
	turnMu sync.Mutex

	userID  string
	chunks  []models.Chunk
	history []models.Turn
	memory  []models.Turn
}

// LockTurn blocks until the session has no turn in flight. Rapid successive
// messages from the same user run one at a time against session state.
func (s *Session) LockTurn() {
	s.turnMu.Lock()
}

// UnlockTurn releases the turn lock.
func (s *Session) UnlockTurn() {
	s.turnMu.Unlock()
}

// SetUserID records the canonical identifier returned by validation.
func (s *Session) SetUserID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = id
}

// UserID returns the canonical identifier, empty until validation succeeds.
func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// SetChunks replaces the chunk set wholesale. A nil slice clears it.
func (s *Session) SetChunks(chunks []models.Chunk) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chunks = chunks
}

// Chunks returns a defensive copy of the chunk set.
func (s *Session) Chunks() []models.Chunk {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.chunks)
}

// SetHistory replaces the persisted-history snapshot. History is re-fetched
// every turn and never mutated locally.
func (s *Session) SetHistory(turns []models.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = turns
}

// History returns a defensive copy of the persisted-history snapshot.
func (s *Session) History() []models.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.history)
}

// Remember appends a turn to in-session memory and truncates to the
// MemoryWindow most recent entries, dropping the oldest on overflow.
func (s *Session) Remember(turn models.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.memory = append(s.memory, turn)
	if len(s.memory) > MemoryWindow {
		s.memory = slices.Clone(s.memory[len(s.memory)-MemoryWindow:])
	}
}

// Memory returns a defensive copy of in-session memory, oldest first.
func (s *Session) Memory() []models.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.memory)
}
