// Package cache persists source→translation pairs across pipeline runs.
//
// Both translation commands are cache-first: only strings missing from
// the store are sent to the translation service. Three implementations
// share the Store interface — a JSON file store matching the cache files
// the mirror has always used, a Redis store for caches shared between
// machines, and an in-memory store for tests.
package cache
