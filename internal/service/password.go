package service

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor the upstream service used.
const bcryptCost = 10

// PasswordHasher produces and verifies salted bcrypt digests. The
// salt and cost are embedded in the hash itself, so verification
// needs nothing beyond the stored string.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: bcryptCost}
}

func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether hash was produced from plaintext. The
// comparison inside bcrypt is constant-time.
func (h *PasswordHasher) Verify(plaintext string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
