// Package store is the key-value layer behind the event and submission namespaces.
// Backends provide atomic single-key writes and prefix listing; listing may be
// eventually consistent.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key does not exist (or vanished since it was listed).
var ErrNotFound = errors.New("store: key not found")

// Store is one namespace (bucket) of the external key-value storage.
type Store interface {
	// Put writes value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// List returns every key starting with prefix in the backend's native order.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Backend names accepted by configuration.
const (
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
	BackendMemory = "memory"
)
