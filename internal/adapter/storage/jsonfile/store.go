package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/anicla/anicla/internal/domain"
	"github.com/anicla/anicla/internal/port"
	"github.com/oklog/ulid/v2"
)

const EntriesFileName = "entries.json"

// Store is the JSON-file history backend. The whole file is rewritten on
// every Add; it suits small libraries and machines without SQLite.
type Store struct {
	mu      sync.RWMutex
	path    string
	entries []*domain.MediaEntry
}

func NewStore(dataDir string) (*Store, error) {
	store := &Store{
		path: filepath.Join(dataDir, EntriesFileName),
	}

	if err := store.load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return store, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	if len(data) == 0 {
		return nil
	}

	var entries []*domain.MediaEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parse %s: %w", s.path, err)
	}
	s.entries = entries

	return nil
}

func (s *Store) Add(_ context.Context, entry *domain.MediaEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == "" {
		entry.ID = ulid.Make().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	next := append(s.entries[:len(s.entries):len(s.entries)], entry)
	if err := writeJSON(s.path, next); err != nil {
		return domain.NewStorageError("add media entry", err)
	}
	s.entries = next
	return nil
}

// List returns the history newest first, ties broken by descending id.
func (s *Store) List(_ context.Context) ([]*domain.MediaEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.MediaEntry, len(s.entries))
	copy(out, s.entries)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// writeJSON replaces path atomically through a temp file in the same
// directory.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return err
	}

	return os.Rename(tmpPath, path)
}

var _ port.EntryStore = (*Store)(nil)
