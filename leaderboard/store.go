// Package leaderboard keeps the top scores per difficulty tier in a small text file.
package leaderboard

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"sync"
)

const (
	// MaxEntries is how many scores each tier keeps
	MaxEntries = 10

	// DefaultPath is the file used when none is configured
	DefaultPath = "scores.txt"
)

// Store is a file-backed map of difficulty key to descending scores
type Store struct {
	path string

	mu     sync.Mutex
	boards map[string][]int
}

// NewStore creates an empty store bound to path; call Load to read existing data
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{
		path:   path,
		boards: make(map[string][]int),
	}
}

// Path returns the backing file
func (s *Store) Path() string {
	return s.path
}

// Load replaces the in-memory boards with the file contents
// A missing file is no prior data; a malformed one is an error
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.mu.Lock()
			s.boards = make(map[string][]int)
			s.mu.Unlock()
			return nil
		}
		return fmt.Errorf("open leaderboard %s: %w", s.path, err)
	}

	boards, err := Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("load leaderboard %s: %w", s.path, err)
	}
	for k, scores := range boards {
		boards[k] = normalize(scores)
	}

	s.mu.Lock()
	s.boards = boards
	s.mu.Unlock()
	return nil
}

// Record inserts score under key, keeps the top MaxEntries and rewrites the file
// Returns the 1-based rank the score reached, or 0 if it fell off the board
// On a write error the boards are left as they were and the rank is 0
func (s *Store) Record(key string, score int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Ties rank alongside the existing equal score
	rank := 1
	for _, v := range s.boards[key] {
		if v > score {
			rank++
		}
	}
	if rank > MaxEntries {
		rank = 0
	}

	prev, had := s.boards[key]
	next := make([]int, len(prev), len(prev)+1)
	copy(next, prev)
	s.boards[key] = normalize(append(next, score))

	if err := s.saveLocked(); err != nil {
		if had {
			s.boards[key] = prev
		} else {
			delete(s.boards, key)
		}
		return 0, err
	}
	return rank, nil
}

// Top returns a copy of the scores for key, highest first
func (s *Store) Top(key string) []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]int, len(s.boards[key]))
	copy(out, s.boards[key])
	return out
}

// Keys returns the difficulty keys present, sorted
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.boards))
	for k := range s.boards {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// saveLocked truncates and rewrites the backing file; caller holds mu
func (s *Store) saveLocked() error {
	var buf bytes.Buffer
	if err := Encode(&buf, s.boards); err != nil {
		return fmt.Errorf("encode leaderboard: %w", err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write leaderboard %s: %w", s.path, err)
	}
	return nil
}

// normalize sorts descending and truncates to MaxEntries
func normalize(scores []int) []int {
	sort.Sort(sort.Reverse(sort.IntSlice(scores)))
	if len(scores) > MaxEntries {
		scores = scores[:MaxEntries]
	}
	return scores
}
