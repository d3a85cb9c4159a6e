// Package score persists the ranked high-score table. All I/O failures
// degrade to an empty or unsaved store; nothing here is fatal.
package score

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/snakeclaw/constants"
)

// Entry is one persisted high-score record.
type Entry struct {
	Initials  string    `json:"initials"`
	Score     int       `json:"score"`
	Timestamp time.Time `json:"timestamp"`
}

// Store holds up to MaxHighScoreEntries entries sorted descending by
// score, ties broken by earlier timestamp. It rewrites the backing file
// after each qualifying insert.
type Store struct {
	path    string
	max     int
	entries []Entry
	log     zerolog.Logger

	// now is swappable for deterministic tie-break tests
	now func() time.Time
}

// NewStore creates a store backed by the file at path and loads any
// existing entries. A missing or corrupt file yields an empty store.
func NewStore(path string, logger zerolog.Logger) *Store {
	s := &Store{
		path: path,
		max:  constants.MaxHighScoreEntries,
		log:  logger,
		now:  time.Now,
	}
	s.Load()
	return s
}

// Load replaces the in-memory entries with the persisted ones. Read or
// decode failures leave the store empty and log a warning.
func (s *Store) Load() {
	s.entries = nil
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("path", s.path).Msg("failed to read high scores")
		}
		return
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("high score file is corrupt, starting empty")
		return
	}
	s.entries = entries
	s.sort()
	if len(s.entries) > s.max {
		s.entries = s.entries[:s.max]
	}
}

// Save writes the table to disk via a temp file and rename so a crash
// mid-write cannot corrupt the existing file.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".highscores-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, s.path)
}

// Qualifies reports whether a finished game's score earns a table slot:
// any positive score while the table has room, otherwise strictly more
// than the current minimum. A score equal to the 10th entry does not
// qualify.
func (s *Store) Qualifies(score int) bool {
	if score <= 0 {
		return false
	}
	if len(s.entries) < s.max {
		return true
	}
	return score > s.entries[len(s.entries)-1].Score
}

// Insert adds an entry, re-sorts, truncates to capacity, and persists.
// It returns the 1-based rank of the new entry, or 0 when it did not
// make the cut. Persistence failures are logged, never returned.
func (s *Store) Insert(initials string, score int) int {
	entry := Entry{
		Initials:  initials,
		Score:     score,
		Timestamp: s.now().UTC(),
	}
	s.entries = append(s.entries, entry)
	s.sort()
	if len(s.entries) > s.max {
		s.entries = s.entries[:s.max]
	}
	if err := s.Save(); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("failed to save high scores")
	}
	for i, e := range s.entries {
		if e == entry {
			return i + 1
		}
	}
	return 0
}

// Top returns up to n entries in rank order.
func (s *Store) Top(n int) []Entry {
	if n > len(s.entries) {
		n = len(s.entries)
	}
	out := make([]Entry, n)
	copy(out, s.entries[:n])
	return out
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Best returns the highest stored score, 0 when empty.
func (s *Store) Best() int {
	if len(s.entries) == 0 {
		return 0
	}
	return s.entries[0].Score
}

func (s *Store) sort() {
	sort.SliceStable(s.entries, func(i, j int) bool {
		if s.entries[i].Score != s.entries[j].Score {
			return s.entries[i].Score > s.entries[j].Score
		}
		return s.entries[i].Timestamp.Before(s.entries[j].Timestamp)
	})
}
