package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
)

// tokenBytes gives 256 bits of entropy, enough to make collisions and
// guessing cryptographically negligible.
const tokenBytes = 32

// NewToken creates an opaque, unguessable session token from a secure
// random source.
func NewToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
