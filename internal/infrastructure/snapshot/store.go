// Package snapshot persists the raw roster feed to disk so the pipeline
// only fetches once per calendar day.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/riskibarqy/draftboard/internal/platform/tabular"
)

const (
	playersFile = "players.csv"
	stampFile   = "last_retrieval.txt"
)

// Store keeps a roster table plus a one-line date stamp under one
// directory. A snapshot is valid only when the stamp equals the caller's
// current day string; the comparison is string equality, not elapsed time.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Dir() string {
	return s.dir
}

// Load returns the cached roster table when a snapshot exists and its
// stamp equals day. A missing or stale snapshot is (nil, false, nil); a
// present-but-unreadable one is an error.
func (s *Store) Load(day string) (*tabular.Table, bool, error) {
	stamp, err := os.ReadFile(filepath.Join(s.dir, stampFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("snapshot: read stamp: %w", err)
	}
	if strings.TrimSpace(string(stamp)) != day {
		return nil, false, nil
	}

	path := filepath.Join(s.dir, playersFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, false, nil
	}
	table, err := tabular.ReadCSVFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("snapshot: load players: %w", err)
	}
	return table, true, nil
}

// Save writes the roster table and stamps it with day.
func (s *Store) Save(table *tabular.Table, day string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("snapshot: create dir: %w", err)
	}
	if err := table.WriteCSVFile(filepath.Join(s.dir, playersFile)); err != nil {
		return fmt.Errorf("snapshot: write players: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, stampFile), []byte(day+"\n"), 0o644); err != nil {
		return fmt.Errorf("snapshot: write stamp: %w", err)
	}
	return nil
}
