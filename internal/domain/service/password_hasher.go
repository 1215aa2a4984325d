// Package service defines the ports the use cases depend on: hashing, tokens,
// object storage, event publishing and metrics.
package service

import "errors"

// MaxPasswordBytes is the longest password bcrypt can hash. Anything past the
// 72nd byte would be ignored, so longer inputs are refused instead of truncated.
const MaxPasswordBytes = 72

// ErrPasswordTooLong is returned by Hash for passwords over MaxPasswordBytes.
var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// PasswordHasher hashes admin passwords and verifies login attempts against
// the stored hash.
type PasswordHasher interface {
	// Hash returns a salted hash. It fails with ErrPasswordTooLong for
	// passwords longer than MaxPasswordBytes.
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A malformed hash never matches.
	Check(password, hash string) bool
}
