// Package secrets provides the local secure key-value store used to persist
// auth credentials between runs. The interface models platform secure
// storage: string keys, string values, atomic single-key operations.
package secrets

import (
	"context"
	"errors"
)

// ErrUnavailable marks secret-store failures. Every error returned by a
// Store implementation wraps it, so callers can classify storage trouble
// with errors.Is without depending on the backend.
var ErrUnavailable = errors.New("secret store unavailable")

// Store is the secure key-value contract.
//
// Contract:
//   - Get: returns "" with a nil error when the key is absent.
//   - Set: creates or overwrites a single key.
//   - Delete: removes a key; deleting an absent key is not an error.
//   - Clear: removes every key; idempotent.
//
// All methods must honor context cancellation/timeouts.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
