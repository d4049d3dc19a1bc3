// Package score keeps the high-score table. The store is in-memory and
// shared across all sessions of one server process.
package score

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultGame is the table key used when no game identifier is configured.
const DefaultGame = "skyfall"

// Entry is one recorded result.
type Entry struct {
	ID     string    `json:"id"`
	Game   string    `json:"game"`
	Name   string    `json:"name"`
	Points int       `json:"points"`
	When   time.Time `json:"when"`
}

// Store is a concurrency-safe score table keyed by game identifier.
type Store struct {
	mu      sync.RWMutex
	entries map[string][]Entry
	now     func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		entries: make(map[string][]Entry),
		now:     time.Now,
	}
}

// AddWin records a finished session for the named player and returns the
// stored entry.
func (s *Store) AddWin(game, name string, points int) Entry {
	if name == "" {
		name = "anonymous"
	}

	e := Entry{
		ID:     uuid.NewString(),
		Game:   game,
		Name:   name,
		Points: points,
		When:   s.now(),
	}

	s.mu.Lock()
	s.entries[game] = append(s.entries[game], e)
	s.mu.Unlock()
	return e
}

// TopScores returns up to limit entries for the game, best first. Ties
// rank the earlier result higher. The returned slice is a copy.
func (s *Store) TopScores(game string, limit int) []Entry {
	s.mu.RLock()
	all := s.entries[game]
	top := make([]Entry, len(all))
	copy(top, all)
	s.mu.RUnlock()

	sort.SliceStable(top, func(i, j int) bool {
		if top[i].Points != top[j].Points {
			return top[i].Points > top[j].Points
		}
		return top[i].When.Before(top[j].When)
	})

	if limit >= 0 && len(top) > limit {
		top = top[:limit]
	}
	return top
}

// Clear removes all entries for the game.
func (s *Store) Clear(game string) {
	s.mu.Lock()
	delete(s.entries, game)
	s.mu.Unlock()
}
