// Package kv provides the on-device key-value storage that backs favorites
// and preferences.
//
// Two persistent backends exist: a TOML document on disk (the default) and a
// sqlite database. Both store plain string values; callers own encoding.
package kv

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Store is a string key-value store.
type Store interface {
	// Get returns the value for key. A missing key returns ok=false and no error.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Close releases backend resources.
	Close() error
}

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

const (
	fileName   = "storage.toml"
	sqliteName = "aidfinder.db"
)

// Backends lists the accepted backend names.
func Backends() []string {
	return []string{BackendFile, BackendSQLite, BackendMemory}
}

// Open creates the named backend rooted at dir.
func Open(ctx context.Context, backend, dir string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendFile:
		return OpenFile(filepath.Join(dir, fileName))
	case BackendSQLite:
		return OpenSQLite(ctx, filepath.Join(dir, sqliteName))
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
