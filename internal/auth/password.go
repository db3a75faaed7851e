// Package auth provides password hashing and access-token issuance and
// verification. It has no knowledge of HTTP or the database; the service
// layer composes it with the user repo, and the middleware package wraps
// token verification around protected routes.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"shopcatalog/internal/domain"
)

// HashPassword returns the bcrypt hash of password. bcrypt generates a
// random per-call salt, so hashing the same password twice yields
// different hashes.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("auth.HashPassword: %w: password must not be empty", domain.ErrValidation)
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("auth.HashPassword: %w", err)
	}
	return string(h), nil
}

// ComparePassword checks a plaintext password against a stored bcrypt hash.
// The comparison inside bcrypt is constant-time with respect to the hash.
// Any mismatch is reported as domain.ErrUnauthenticated; callers must not
// distinguish a wrong password from an unknown user.
func ComparePassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return fmt.Errorf("auth.ComparePassword: %w", domain.ErrUnauthenticated)
	}
	return nil
}
