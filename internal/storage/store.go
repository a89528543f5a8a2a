package storage

import "errors"

// ErrNotFound is returned by Get when the key has never been written or was
// deleted. Callers treat it as "no cart", never as a failure.
var ErrNotFound = errors.New("key not found")

// Store is a single-key blob store: the persistence contract behind the cart.
// Implementations hold one serialized value per key and nothing else.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(key string) ([]byte, error)
	// Put stores value under key, replacing any previous value.
	Put(key string, value []byte) error
	// Delete removes key entirely. Deleting an absent key is a no-op.
	Delete(key string) error
}
