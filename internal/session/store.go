// Package session provides the server-side session store: an opaque token
// mapped to the authenticated identity, with a fixed TTL and lazy expiry.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
)

// ErrNotFound is returned for unknown, expired, or deleted tokens.
// An expired session is indistinguishable from one that never existed.
var ErrNotFound = errors.New("session not found")

// Identity is what a valid session proves: who logged in.
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Store issues and resolves opaque session tokens. Only the login path
// creates sessions and only the session gate reads them.
type Store interface {
	// Create issues a fresh token for the identity.
	Create(ctx context.Context, id Identity) (string, error)

	// Get resolves a token, returning ErrNotFound when it is unknown
	// or past its TTL.
	Get(ctx context.Context, token string) (*Identity, error)

	// Delete invalidates a token. Deleting an unknown token is a no-op.
	Delete(ctx context.Context, token string) error
}

// newToken returns a URL-safe random token.
func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
