package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher derives and verifies credential hashes. The hashing scheme
// is configuration, not contract: production deployments should use the
// bcrypt implementation (or a stronger KDF behind this interface).
type PasswordHasher interface {
	// Hash derives a credential hash from a plaintext password.
	Hash(password string) (string, error)

	// Compare verifies a plaintext password against a stored hash.
	// A nil error means the password matches.
	Compare(hash, password string) error
}

// BcryptHasher is the default PasswordHasher, backed by bcrypt with a
// per-password salt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a bcrypt hasher. A non-positive cost falls back to
// bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h *BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// DigestHasher is the legacy unsalted SHA-256 digest of the original demo
// system. It exists only for fixture compatibility and must not be used for
// real deployments.
type DigestHasher struct{}

var errDigestMismatch = errors.New("auth.digest_mismatch")

func (DigestHasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

func (DigestHasher) Compare(hash, password string) error {
	sum := sha256.Sum256([]byte(password))
	computed := hex.EncodeToString(sum[:])
	if subtle.ConstantTimeCompare([]byte(hash), []byte(computed)) != 1 {
		return errDigestMismatch
	}
	return nil
}
