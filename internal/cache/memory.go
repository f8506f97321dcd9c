package cache

import "context"

// MemoryStore provides an in-memory Store implementation for tests and
// dry runs where persisting translations is unwanted.
type MemoryStore struct {
	entries map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]string)}
}

// Get returns the cached translation for source.
func (m *MemoryStore) Get(_ context.Context, source string) (string, bool, error) {
	v, ok := m.entries[source]
	return v, ok, nil
}

// Put records a translation for source.
func (m *MemoryStore) Put(_ context.Context, source, translation string) error {
	m.entries[source] = translation
	return nil
}

// Delete removes a cached entry.
func (m *MemoryStore) Delete(_ context.Context, source string) error {
	delete(m.entries, source)
	return nil
}

// Len returns the number of cached entries.
func (m *MemoryStore) Len(_ context.Context) int {
	return len(m.entries)
}

// Flush is a no-op.
func (m *MemoryStore) Flush(_ context.Context) error {
	return nil
}

// Close is a no-op.
func (m *MemoryStore) Close(_ context.Context) error {
	return nil
}

// Entries returns a copy of the current map.
func (m *MemoryStore) Entries() map[string]string {
	out := make(map[string]string, len(m.entries))
	for k, v := range m.entries {
		out[k] = v
	}
	return out
}
