package cache

import "context"

// Store is the translation cache contract shared by the file, Redis, and
// memory implementations.
//
// Keys are exact source strings (whitespace-trimmed cores, never whole
// files); values are their translations. A Store must tolerate repeated
// Put calls for the same key — last write wins.
type Store interface {
	// Get returns the cached translation for source and whether it was
	// present.
	Get(ctx context.Context, source string) (string, bool, error)

	// Put records a translation for source.
	Put(ctx context.Context, source, translation string) error

	// Delete removes a cached entry. Used when purging stale bad
	// translations before a comments run.
	Delete(ctx context.Context, source string) error

	// Len returns the number of entries currently in the store. Stores
	// that cannot count cheaply may return a best-effort value.
	Len(ctx context.Context) int

	// Flush persists pending writes. The file store rewrites its JSON
	// file; Redis and memory stores are write-through and treat this as
	// a no-op.
	Flush(ctx context.Context) error

	// Close releases resources, flushing first where applicable.
	Close(ctx context.Context) error
}
