// Package state persists small pieces of client state (the auth token and
// UI preferences) in the local database, keyed by name.
package state

import (
	"context"
)

// Well-known state keys.
const (
	KeyToken     = "token"
	KeyFontScale = "fontScale"

	// Offline dashboard cache: the payload and the time it was fetched.
	// Written together; SetMany keeps them consistent.
	KeyLastProgress   = "lastProgress"
	KeyLastProgressAt = "lastProgressAt"
)

// Repository is a durable key/value store for client state.
//
// Get returns (nil, nil) for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, items map[string][]byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
