// Package store persists the high score and recent game history as a small YAML document
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/neon-strike/constants"
)

// ErrCorrupt reports store content that could not be parsed
var ErrCorrupt = errors.New("score store corrupt")

// Record is one finished game
type Record struct {
	ID    string    `yaml:"id"`
	Score int       `yaml:"score"`
	Kills int       `yaml:"kills"`
	Time  int       `yaml:"time"` // Survival time in whole seconds
	Date  time.Time `yaml:"date"`
}

type document struct {
	HighScore int      `yaml:"high_score"`
	History   []Record `yaml:"history"`
}

// ScoreStore holds the high score and most-recent-first history
// An empty path keeps the store in memory only
type ScoreStore struct {
	mu        sync.Mutex
	path      string
	highScore int
	history   []Record
}

// Open loads the store at path
// A missing file yields an empty store; unparseable content is logged and discarded
func Open(path string) (*ScoreStore, error) {
	s := &ScoreStore{path: path}
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read score store %s: %w", path, err)
	}

	doc, err := parse(data)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("discarding unreadable score history")
		return s, nil
	}
	s.highScore = doc.HighScore
	s.history = doc.History
	return s, nil
}

// parse decodes a document, dropping malformed records
func parse(data []byte) (document, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return document{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if doc.HighScore < 0 {
		doc.HighScore = 0
	}

	valid := doc.History[:0]
	for _, r := range doc.History {
		if r.Score < 0 || r.Kills < 0 || r.Time < 0 {
			continue
		}
		valid = append(valid, r)
		if r.Score > doc.HighScore {
			doc.HighScore = r.Score
		}
	}
	if len(valid) > constants.HistoryLimit {
		valid = valid[:constants.HistoryLimit]
	}
	doc.History = valid
	return doc, nil
}

// Save writes the store atomically via a temp file rename
func (s *ScoreStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *ScoreStore) saveLocked() error {
	if s.path == "" {
		return nil
	}

	data, err := yaml.Marshal(document{HighScore: s.highScore, History: s.history})
	if err != nil {
		return fmt.Errorf("encode score store: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create score store dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write score store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace score store: %w", err)
	}
	return nil
}

// RecordGame prepends a finished game, trims history and raises the high score if exceeded
func (s *ScoreStore) RecordGame(score, kills int, survived time.Duration, date time.Time) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := Record{
		ID:    uuid.NewString(),
		Score: score,
		Kills: kills,
		Time:  int(survived / time.Second),
		Date:  date,
	}

	history := make([]Record, 0, constants.HistoryLimit)
	history = append(history, r)
	history = append(history, s.history...)
	if len(history) > constants.HistoryLimit {
		history = history[:constants.HistoryLimit]
	}
	s.history = history

	if score > s.highScore {
		s.highScore = score
	}
	return r, s.saveLocked()
}

// SetHighScore raises the stored high score; lower values are ignored
func (s *ScoreStore) SetHighScore(score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if score <= s.highScore {
		return nil
	}
	s.highScore = score
	return s.saveLocked()
}

// ClearHistory removes all records, keeping the high score
func (s *ScoreStore) ClearHistory() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = nil
	return s.saveLocked()
}

func (s *ScoreStore) HighScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highScore
}

// History returns a copy of the records, most recent first
func (s *ScoreStore) History() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.history))
	copy(out, s.history)
	return out
}

func (s *ScoreStore) Path() string { return s.path }
