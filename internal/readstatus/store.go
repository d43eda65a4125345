package readstatus

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/contentcards/internal/content"
)

const fileVersion = "1.0"

// Record is the persisted state of one card.
type Record struct {
	Read      bool      `json:"read"`
	Dismissed bool      `json:"dismissed"`
	UpdatedAt time.Time `json:"updated_at"`
}

// File is the JSON document written to disk.
type File struct {
	Version string            `json:"version"`
	Cards   map[string]Record `json:"cards"`
}

// Store persists read and dismissed flags between sessions. An empty path
// keeps everything in memory.
type Store struct {
	path    string
	mu      sync.RWMutex
	version string
	cards   map[string]Record
	now     func() time.Time
}

// NewStore creates a Store and loads any existing file at path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:    path,
		version: fileVersion,
		cards:   make(map[string]Record),
		now:     time.Now,
	}
	if path == "" {
		return s, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create read status directory: %w", err)
	}

	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return s, nil
}

// Load reads the store from disk, replacing in-memory records.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse read status file: %w", err)
	}

	s.version = file.Version
	s.cards = file.Cards
	if s.cards == nil {
		s.cards = make(map[string]Record)
	}
	return nil
}

// Save writes the store to disk atomically.
func (s *Store) Save() error {
	if s.path == "" {
		return nil
	}

	s.mu.RLock()
	data, err := json.MarshalIndent(File{Version: s.version, Cards: s.cards}, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal read status: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}

// Get returns the record for a card.
func (s *Store) Get(cardID string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.cards[cardID]
	return rec, ok
}

// SetReadStatus records the read flag of a card and saves the store.
func (s *Store) SetReadStatus(ctx context.Context, cardID string, read bool) error {
	return s.update(ctx, cardID, func(r *Record) { r.Read = read })
}

// RecordDismissal marks a card dismissed and saves the store.
func (s *Store) RecordDismissal(ctx context.Context, cardID string) error {
	return s.update(ctx, cardID, func(r *Record) { r.Dismissed = true })
}

// Forget removes a card's record.
func (s *Store) Forget(cardID string) error {
	s.mu.Lock()
	delete(s.cards, cardID)
	s.mu.Unlock()
	return s.Save()
}

// IDs lists the cards that have a record, sorted.
func (s *Store) IDs() []string {
	s.mu.RLock()
	ids := make([]string, 0, len(s.cards))
	for id := range s.cards {
		ids = append(ids, id)
	}
	s.mu.RUnlock()
	sort.Strings(ids)
	return ids
}

// Clear removes every record.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.cards = make(map[string]Record)
	s.mu.Unlock()
	return s.Save()
}

// Hydrate copies persisted flags onto freshly built cards. Cards that do not
// track read status keep a nil Read flag.
func (s *Store) Hydrate(cards []*content.Card) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range cards {
		if c == nil || c.State == nil {
			continue
		}
		rec, ok := s.cards[c.ID]
		if !ok {
			continue
		}
		if rec.Dismissed {
			c.State.Dismissed = true
		}
		if c.State.Read != nil {
			read := rec.Read
			c.State.Read = &read
		}
	}
}

func (s *Store) update(ctx context.Context, cardID string, fn func(*Record)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if cardID == "" {
		return fmt.Errorf("card id is required")
	}

	s.mu.Lock()
	rec := s.cards[cardID]
	fn(&rec)
	rec.UpdatedAt = s.now()
	s.cards[cardID] = rec
	s.mu.Unlock()

	return s.Save()
}
