package store

import "errors"

// ErrKeyNotFound is returned by [KVRepository.Get] when the requested key
// has no stored value. Callers treat an absent session key as "no
// session", never as a failure.
var ErrKeyNotFound = errors.New("session key not found")
