package session

import (
	"context"
	"errors"
)

// ErrPreferenceNotFound is returned by PreferenceStorage when nothing is
// stored under the requested key.
var ErrPreferenceNotFound = errors.New("preference not found")

// PreferenceStorage is a small persistent string key/value space for user
// preferences, such as the connected wallet addresses.
type PreferenceStorage interface {
	// LoadPreference returns the value stored under key or ErrPreferenceNotFound.
	LoadPreference(ctx context.Context, key string) (string, error)

	// SavePreference stores value under key, replacing any previous value.
	SavePreference(ctx context.Context, key, value string) error

	// DeletePreference removes key. Removing an absent key is not an error.
	DeletePreference(ctx context.Context, key string) error
}
