package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, negative cost).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when a write collides with a unique constraint
// (duplicate shop title, product title, tag name, or username), or when a
// delete is blocked by dependent rows (shop with products).
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("already exists")

// ErrUnauthenticated is returned on any credential or token failure:
// unknown username, wrong password, missing/malformed/expired/forged token.
// Handlers and the auth middleware map this to HTTP 401.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrProductNotFound and ErrTagNotFound specialize ErrNotFound for the two
// sides of a product–tag association, so handlers can name the side that
// failed to resolve. Both match ErrNotFound under errors.Is.
var (
	ErrProductNotFound = fmt.Errorf("product %w", ErrNotFound)
	ErrTagNotFound     = fmt.Errorf("tag %w", ErrNotFound)
)
