package security

import (
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"

	"github.com/eduplatform/education-api/internal/core/domain"
)

// bcryptMaxInput is the longest password bcrypt accepts.
const bcryptMaxInput = 72

// BcryptHasher implements ports.PasswordHasher with bcrypt. The algorithm
// version, cost and salt travel inside every hash it produces.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using cost, falling back to
// bcrypt.DefaultCost when cost is outside bcrypt's accepted range.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash succeeds for every non-empty password. Passwords longer than bcrypt's
// 72-byte limit are reduced to their base64 SHA-256 digest first.
func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", domain.ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword(bcryptInput(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compares in constant time. Any error from bcrypt, including a
// malformed hash, is reported as a mismatch.
func (h *BcryptHasher) Verify(password, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), bcryptInput(password)) == nil
}

func bcryptInput(password string) []byte {
	if len(password) <= bcryptMaxInput {
		return []byte(password)
	}
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}
