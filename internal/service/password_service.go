package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordService hashes and verifies account credentials.
type PasswordService interface {
	// Hash returns a salted one-way digest of plaintext.
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches digest. This is the only
	// supported comparison path; digests are never compared directly.
	Verify(plaintext, digest string) bool
}

// passwordService implements PasswordService using bcrypt
type passwordService struct {
	cost int
}

// NewPasswordService creates a PasswordService with the default bcrypt cost.
func NewPasswordService() PasswordService {
	return &passwordService{cost: bcrypt.DefaultCost}
}

func (s *passwordService) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

func (s *passwordService) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
