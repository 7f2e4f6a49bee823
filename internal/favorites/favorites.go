// Package favorites keeps the set of saved program links.
package favorites

import (
	"context"
	"encoding/json"
	"sort"

	"go.uber.org/zap"

	"github.com/five82/aidfinder/internal/kv"
)

// StorageKey is the key holding the JSON array of saved links.
const StorageKey = "favorites"

// Store is the set of favorite program ids, persisted after every change.
// It is owned by a single goroutine.
type Store struct {
	kv     kv.Store
	logger *zap.Logger
	ids    map[string]struct{}
}

// New returns an empty store backed by storage. Call Load to read the
// persisted set.
func New(storage kv.Store, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{kv: storage, logger: logger, ids: map[string]struct{}{}}
}

// Load replaces the in-memory set with the persisted one. Missing or
// malformed data leaves the set empty.
func (s *Store) Load(ctx context.Context) {
	s.ids = map[string]struct{}{}
	if s.kv == nil {
		return
	}

	raw, ok, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		s.logger.Warn("read favorites failed", zap.Error(err))
		return
	}
	if !ok || raw == "" {
		return
	}

	var links []string
	if err := json.Unmarshal([]byte(raw), &links); err != nil {
		s.logger.Warn("stored favorites are malformed, starting empty", zap.Error(err))
		return
	}
	for _, link := range links {
		if link != "" {
			s.ids[link] = struct{}{}
		}
	}
	s.logger.Debug("favorites loaded", zap.Int("count", len(s.ids)))
}

// IsFavorite reports whether id is saved.
func (s *Store) IsFavorite(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Toggle flips the membership of id and persists the full set. Write
// failures are logged; the in-memory set keeps the new state.
func (s *Store) Toggle(ctx context.Context, id string) {
	if id == "" {
		return
	}
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}
	s.save(ctx)
}

// IDs returns the saved ids in sorted order.
func (s *Store) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of saved ids.
func (s *Store) Len() int {
	return len(s.ids)
}

func (s *Store) save(ctx context.Context) {
	if s.kv == nil {
		return
	}
	payload, err := json.Marshal(s.IDs())
	if err != nil {
		s.logger.Error("encode favorites failed", zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, StorageKey, string(payload)); err != nil {
		s.logger.Warn("persist favorites failed", zap.Error(err))
	}
}
