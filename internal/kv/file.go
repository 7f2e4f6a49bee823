package kv

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

// FileStore keeps every key in a single TOML document and rewrites the whole
// document on each Set.
type FileStore struct {
	path string

	mu     sync.Mutex
	values map[string]string
}

// OpenFile reads the document at path. A missing or unparsable document
// starts empty; the next Set replaces it.
func OpenFile(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("storage path is empty")
	}
	return &FileStore{path: path, values: readDocument(path)}, nil
}

func readDocument(path string) map[string]string {
	values := map[string]string{}

	file, err := os.Open(path)
	if err != nil {
		return values // missing or unreadable: start empty
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return values
	}

	if err := toml.Unmarshal(bytes, &values); err != nil {
		return map[string]string{}
	}
	return values
}

// Get implements Store.
func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Set implements Store.
func (s *FileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[string]string, len(s.values)+1)
	for k, v := range s.values {
		next[k] = v
	}
	next[key] = value

	if err := writeDocument(s.path, next); err != nil {
		return err
	}
	s.values = next
	return nil
}

// Close implements Store.
func (s *FileStore) Close() error {
	return nil
}

func writeDocument(path string, values map[string]string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	bytes, err := toml.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshal storage: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".storage-*.toml")
	if err != nil {
		return fmt.Errorf("create temp storage: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(bytes); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write storage: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close storage: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace storage: %w", err)
	}
	return nil
}
