package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// FileStore is a Store backed by a single JSON object file mapping source
// strings to translations. This is the cache format the mirror's
// maintenance scripts have always produced, so existing cache files load
// as-is.
//
// The store keeps the whole map in memory and rewrites the file on Flush.
// It is not safe for concurrent use; the pipeline is single-threaded per
// cache, matching the original tooling.
type FileStore struct {
	path    string
	entries map[string]string
	dirty   bool
}

// NewFileStore opens the JSON cache at path. A missing file yields an
// empty store; a present but unparseable file is an error so that a
// corrupt cache is never silently truncated on the next Flush.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:    path,
		entries: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read cache file %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &s.entries); err != nil {
		return nil, fmt.Errorf("failed to parse cache file %s: %w", path, err)
	}
	return s, nil
}

// Seed merges entries from another JSON cache file into the store without
// marking it dirty for those keys already present. Existing entries win:
// a seed cache is a warm starting point, never an override.
func (s *FileStore) Seed(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read seed cache %s: %w", path, err)
	}

	seed := make(map[string]string)
	if err := json.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("failed to parse seed cache %s: %w", path, err)
	}

	for k, v := range seed {
		if _, exists := s.entries[k]; !exists {
			s.entries[k] = v
			s.dirty = true
		}
	}
	return nil
}

// Get returns the cached translation for source.
func (s *FileStore) Get(_ context.Context, source string) (string, bool, error) {
	v, ok := s.entries[source]
	return v, ok, nil
}

// Put records a translation for source.
func (s *FileStore) Put(_ context.Context, source, translation string) error {
	s.entries[source] = translation
	s.dirty = true
	return nil
}

// Delete removes a cached entry if present.
func (s *FileStore) Delete(_ context.Context, source string) error {
	if _, ok := s.entries[source]; ok {
		delete(s.entries, source)
		s.dirty = true
	}
	return nil
}

// Len returns the number of cached entries.
func (s *FileStore) Len(_ context.Context) int {
	return len(s.entries)
}

// Flush rewrites the JSON file when the store has pending writes.
// HTML escaping is disabled so that cached fragments containing < or &
// stay literal, like the caches the original tooling wrote.
func (s *FileStore) Flush(_ context.Context) error {
	if !s.dirty {
		return nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s.entries); err != nil {
		return fmt.Errorf("failed to encode cache: %w", err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write cache file %s: %w", s.path, err)
	}
	s.dirty = false
	return nil
}

// Close flushes pending writes.
func (s *FileStore) Close(ctx context.Context) error {
	return s.Flush(ctx)
}

// Entries returns a copy of the current map. Used by the stale-entry
// purge, which needs to inspect every cached pair.
func (s *FileStore) Entries() map[string]string {
	out := make(map[string]string, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out
}
