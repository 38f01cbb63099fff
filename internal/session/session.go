// Package session owns the process-wide "current live song" slot. All
// mutation goes through SetLive and Clear; there is no history and no
// per-room scoping — the whole process is one rehearsal session.
package session

import (
	"sync"

	"github.com/NizCom/JaMoveo-backend/internal/models"
)

// State holds the song currently live, if any. The zero value is idle.
type State struct {
	mu      sync.RWMutex
	current *models.Song
}

// New creates an idle State.
func New() *State {
	return &State{}
}

// SetLive replaces the current live song. Last write wins; there is no queue.
func (s *State) SetLive(song *models.Song) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = song
}

// Clear resets the session to idle. Clearing an idle session is a no-op.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// Current returns the live song, or nil when the session is idle.
func (s *State) Current() *models.Song {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
