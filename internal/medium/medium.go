// Package medium abstracts the persistence medium under the document store:
// a key/value byte store addressed by fixed collection keys. Values are
// opaque serialized blobs; the store owns their schema.
package medium

import "context"

// Medium is the key/value byte store the document store writes through.
//
// Get returns ok=false when the key has no value; this is not an error.
// Implementations must be safe for concurrent use.
type Medium interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
