package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the cost the stored admin credentials were hashed
// with.
const bcryptCost = 10

// PasswordHasher hashes and verifies passwords. The underlying algorithm
// is swappable without touching call sites.
type PasswordHasher interface {
	// Hash derives a digest from a plaintext password.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches the digest.
	Verify(plaintext, digest string) bool
}

// BcryptHasher is a bcrypt-backed PasswordHasher.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher with the default cost.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcryptCost}
}

// Hash derives a bcrypt digest from a plaintext password.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the bcrypt digest.
func (h *BcryptHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// Ensure BcryptHasher implements PasswordHasher.
var _ PasswordHasher = (*BcryptHasher)(nil)
