// Package prefs persists gallery preferences between sessions.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const fileVersion = "1.0"

// Preferences are the settings the gallery restores on start.
type Preferences struct {
	Mode      string    `json:"mode,omitempty"`
	LastStory string    `json:"last_story,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

type storeFile struct {
	Version     string      `json:"version"`
	Preferences Preferences `json:"preferences"`
}

// Store keeps preferences in a JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	prefs Preferences
	now   func() time.Time
}

// DefaultPath is prefs.json under the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "loom", "prefs.json"), nil
}

// NewStore creates the store's directory and loads any existing file. A
// missing file starts empty.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path, now: time.Now}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create preferences directory: %w", err)
	}

	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return s, nil
}

// Path returns the backing file.
func (s *Store) Path() string { return s.path }

// Load reads preferences from disk.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var file storeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse preferences: %w", err)
	}
	s.prefs = file.Preferences
	return nil
}

// Save writes preferences to disk atomically.
func (s *Store) Save() error {
	s.mu.RLock()
	file := storeFile{Version: fileVersion, Preferences: s.prefs}
	s.mu.RUnlock()

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
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

// Get returns the current preferences.
func (s *Store) Get() Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs
}

// Set replaces the preferences and stamps UpdatedAt.
func (s *Store) Set(p Preferences) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.UpdatedAt = s.now().UTC()
	s.prefs = p
}

// Update applies fn to a copy of the preferences and stores the result.
func (s *Store) Update(fn func(*Preferences)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.prefs
	fn(&p)
	p.UpdatedAt = s.now().UTC()
	s.prefs = p
}
