package ports

type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches digest. Malformed
	// digests verify as false, never as an error.
	Verify(plaintext, digest string) bool
}
