package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/kv_repository_mock.go -package=mock

// KVRepository is the persistent key-value store backing the session.
// Exactly two keys exist in practice ([models.SessionKeyUser] and
// [models.SessionKeyAuthToken]); the session service is the single writer
// and no other component may touch these keys directly.
type KVRepository interface {
	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key, value string) error

	// Get returns the value stored under key, or [ErrKeyNotFound].
	Get(ctx context.Context, key string) (string, error)

	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}
