package auth

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/alexedwards/argon2id"
)

const hashPrefix = "$argon2id$"

// Verifier compares login attempts against the admin secret.
type Verifier struct {
	secret string
}

// NewVerifier returns a verifier for secret, plain text or argon2id hash.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: secret}
}

// IsHash reports whether s looks like an argon2id hash.
func IsHash(s string) bool {
	return strings.HasPrefix(s, hashPrefix)
}

// Verify returns nil when password matches the secret.
func (v *Verifier) Verify(password string) error {
	if password == "" || v.secret == "" {
		return ErrEmptyPassword
	}

	if IsHash(v.secret) {
		match, err := argon2id.ComparePasswordAndHash(password, v.secret)
		if err != nil {
			return fmt.Errorf("failed to compare password hash: %w", err)
		}

		if !match {
			return ErrInvalidPassword
		}

		return nil
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(v.secret)) != 1 {
		return ErrInvalidPassword
	}

	return nil
}

// HashPassword returns the argon2id hash of password with the default parameters.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return hash, nil
}
