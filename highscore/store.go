// File: highscore/store.go
package highscore

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalidEntry is returned for negative scores or blank names.
var ErrInvalidEntry = errors.New("invalid high score entry")

// DefaultLimit is how many entries the table keeps.
const DefaultLimit = 10

const (
	storageObject   = "flipperHighScores"
	storageProperty = "entries"
)

// Entry is one line of the high-score table.
type Entry struct {
	Score int       `yaml:"score" json:"score"`
	Name  string    `yaml:"name" json:"name"`
	Date  time.Time `yaml:"date" json:"date"`
}

// Store keeps the best scores sorted from highest to lowest, persisted through
// gdata. A nil manager keeps the table in memory only. Safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	manager *gdata.Manager
	limit   int
	entries []Entry
}

// NewStore opens the table. A table that fails to load starts empty.
func NewStore(manager *gdata.Manager, limit int) *Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	s := &Store{manager: manager, limit: limit}
	if err := s.Load(); err != nil {
		log.Printf("[HighScores] Warning: failed to load high scores: %v (starting empty)", err)
	}
	return s
}

// Load replaces the in-memory table with the persisted one.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	if s.manager == nil || !s.manager.ObjectPropExists(storageObject, storageProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(storageObject, storageProperty)
	if err != nil {
		return fmt.Errorf("failed to load high scores: %w", err)
	}

	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to unmarshal high scores: %w", err)
	}
	s.entries = normalize(entries, s.limit)
	return nil
}

// Add inserts a score and returns its 1-based rank, or 0 when it did not make the
// table. Ties keep the earlier entry first.
func (s *Store) Add(score int, name string, date time.Time) (int, error) {
	name = strings.TrimSpace(name)
	if score < 0 {
		return 0, fmt.Errorf("%w: negative score %d", ErrInvalidEntry, score)
	}
	if name == "" {
		return 0, fmt.Errorf("%w: empty name", ErrInvalidEntry)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := Entry{Score: score, Name: name, Date: date}
	s.entries = normalize(append(s.entries, entry), s.limit)

	rank := 0
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i] == entry {
			rank = i + 1
			break
		}
	}
	if err := s.save(); err != nil {
		return rank, err
	}
	return rank, nil
}

// Record saves both players' final scores as "Player 1" and "Player 2".
func (s *Store) Record(scores [2]int, at time.Time) error {
	var errs []error
	for i, score := range scores {
		if _, err := s.Add(score, fmt.Sprintf("Player %d", i+1), at); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// List returns a copy of the table, best first.
func (s *Store) List() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Entry{}, s.entries...)
}

// Clear empties the table.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	return s.save()
}

func (s *Store) save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("failed to marshal high scores: %w", err)
	}
	if err := s.manager.SaveObjectProp(storageObject, storageProperty, data); err != nil {
		return fmt.Errorf("failed to save high scores: %w", err)
	}
	return nil
}

func normalize(entries []Entry, limit int) []Entry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
