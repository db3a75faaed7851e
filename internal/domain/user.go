package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Only the bcrypt hash of the password is
// ever stored; the plaintext exists in memory for the duration of the
// register/login request and nowhere else.
// Users are created on registration and never mutated.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
