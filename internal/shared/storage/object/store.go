package object

import (
	"context"
	"errors"
	"io"
)

// ErrKeyExists is returned by Put when NoOverwrite is set and the key is
// already present in the store.
var ErrKeyExists = errors.New("object key already exists")

// PutOptions controls how an object is written.
type PutOptions struct {
	ContentType  string
	CacheControl string
	// NoOverwrite makes Put fail with ErrKeyExists instead of silently
	// replacing an existing object.
	NoOverwrite bool
}

// ObjectStore is the contract for storing blobs under caller-chosen keys
// and resolving them to publicly fetchable addresses.
type ObjectStore interface {
	// Put writes size bytes from r under key. size must be the exact
	// byte count.
	Put(ctx context.Context, key string, r io.Reader, size int64, opts PutOptions) error
	// Open reads back a stored object.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// PublicURL resolves a stored key to a browser-accessible URL. It is
	// assumed always resolvable once the object has been stored.
	PublicURL(key string) string
}
