package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Key is the preference entry holding the theme mode
const Key = "theme"

// Store is a small key-value preference file
type Store struct {
	path   string
	values map[string]string
}

// DefaultStorePath returns prefs.json under the user's config directory
func DefaultStorePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "particle-banner", "prefs.json"), nil
}

// OpenStore loads the preference file at path. A missing file is an empty
// store; it is created on the first Set.
func OpenStore(path string) (*Store, error) {
	s := &Store{path: path, values: make(map[string]string)}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read preferences: %w", err)
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		return nil, fmt.Errorf("parse preferences %s: %w", path, err)
	}
	// A file holding null decodes to a nil map
	if s.values == nil {
		s.values = make(map[string]string)
	}
	return s, nil
}

// Get returns the value stored under key
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key and writes the file
func (s *Store) Set(key, value string) error {
	s.values[key] = value
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create preferences dir: %w", err)
	}
	return os.WriteFile(s.path, data, 0644)
}

// LoadMode reads the saved theme, defaulting to light
func LoadMode(s *Store) Mode {
	v, _ := s.Get(Key)
	return ParseMode(v)
}

// SaveMode persists m
func SaveMode(s *Store, m Mode) error {
	return s.Set(Key, string(m))
}
