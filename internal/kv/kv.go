// Package kv provides the key-value storage medium the namespaced stores sit on.
package kv

import (
	"context"
	"errors"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("kv: store closed")

// Store is a synchronous, unordered string key-value medium.
type Store interface {
	// Get returns the value under key and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set overwrites the value under key.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists every stored key in lexical order.
	Keys(ctx context.Context) ([]string, error)

	// Close releases the medium.
	Close() error
}
