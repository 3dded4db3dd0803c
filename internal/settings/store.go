package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Store is a thread-safe key/value settings store backed by a single JSON
// file. Keys are slash-separated paths such as "/use_tm" or "/ota/etag".
//
// Reads never fail: an absent key or a value of the wrong type yields the
// caller-supplied default. Writes are visible to subsequent reads
// immediately and are persisted with an atomic write (temp + rename), so a
// crash never leaves a half-written settings file behind. Individual key
// operations are linearizable; there is no cross-key atomicity.
type Store struct {
	mu     sync.Mutex
	path   string
	values map[string]any
}

// Open loads the store backed by the given file. A missing file is not an
// error; it behaves as an empty store and is created on the first write.
func Open(path string) (*Store, error) {
	s := &Store{
		path:   path,
		values: make(map[string]any),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	// UseNumber keeps integers exact instead of going through float64.
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&s.values); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	return s, nil
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// Bool returns the value stored under key, or def when the key is absent
// or holds a non-boolean value.
func (s *Store) Bool(key string, def bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.values[key].(bool); ok {
		return v
	}
	return def
}

// String returns the value stored under key, or def when the key is absent
// or holds a non-string value.
func (s *Store) String(key string, def string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.values[key].(string); ok {
		return v
	}
	return def
}

// Int returns the value stored under key, or def when the key is absent or
// does not hold an integer.
func (s *Store) Int(key string, def int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.intLocked(key, def)
}

// Time returns the value stored under key, interpreted as Unix seconds, or
// def when the key is absent or does not hold an integer.
func (s *Store) Time(key string, def time.Time) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.intLocked(key, -1)
	if v < 0 {
		return def
	}
	return time.Unix(v, 0)
}

// SetBool stores a boolean value under key and persists the store.
func (s *Store) SetBool(key string, value bool) error {
	return s.set(key, value)
}

// SetString stores a string value under key and persists the store.
func (s *Store) SetString(key string, value string) error {
	return s.set(key, value)
}

// SetInt stores an integer value under key and persists the store.
func (s *Store) SetInt(key string, value int64) error {
	return s.set(key, value)
}

// SetTime stores a time value under key as Unix seconds and persists the
// store.
func (s *Store) SetTime(key string, value time.Time) error {
	return s.set(key, value.Unix())
}

// Unset removes a key and persists the store. Removing an absent key is a
// no-op.
func (s *Store) Unset(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	return s.saveLocked()
}

// Keys returns all stored keys in unspecified order.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	return keys
}

func (s *Store) intLocked(key string, def int64) int64 {
	switch v := s.values[key].(type) {
	case int64:
		return v
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
	}
	return def
}

func (s *Store) set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return s.saveLocked()
}

// saveLocked writes the store to disk using atomic write (temp + rename).
// Creates the parent directory if it doesn't exist. Callers must hold mu.
func (s *Store) saveLocked() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		// Clean up temp file on failure
		os.Remove(tmpPath)
		return err
	}

	return nil
}
