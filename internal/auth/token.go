package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"shopcatalog/internal/domain"
)

// TokenManager issues and verifies signed, expiring access tokens.
// Tokens are stateless HS256 JWTs: the user ID travels in the subject
// claim and verification needs only the shared secret. There is no
// server-side revocation list — a token stays valid until it expires.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager constructs a TokenManager. Both the secret and the TTL
// come from required configuration; there are no defaults.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token binding userID with an expiry of now+TTL.
func (m *TokenManager) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("auth.TokenManager.Issue: %w", err)
	}
	return signed, nil
}

// Verify validates the signature and expiry of tokenString and returns the
// user ID from the subject claim. Every failure mode — malformed token,
// wrong signing algorithm, bad signature, expired — wraps
// domain.ErrUnauthenticated so callers map them all to a 401 uniformly.
func (m *TokenManager) Verify(tokenString string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		// Reject tokens that name a different algorithm; otherwise an
		// attacker could present an unsigned "none" token.
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.secret, nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, fmt.Errorf("auth.TokenManager.Verify: %w", domain.ErrUnauthenticated)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("auth.TokenManager.Verify: subject: %w", domain.ErrUnauthenticated)
	}
	return userID, nil
}
