// Package service defines ports for stateless domain capabilities backed by
// infrastructure: hashing, token signing, the payment gateway, event publishing.
package service

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash in constant time.
	Check(password, hash string) bool
}
