package model

// PasswordHasher performs one-way salted hashing of plaintext passwords.
// Verify must not fail on a malformed digest, it reports a mismatch instead.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}
