package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// Hasher turns a password into a stored digest and verifies candidates
// against it.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(digest, password string) bool
}

// SHA256Hasher is the legacy digest: a bare, unsalted SHA-256 hex string.
// It is the default because existing user tables store this format. It is a
// known weakness (no salt, fast hash); new deployments should configure the
// bcrypt hasher instead.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

func (h SHA256Hasher) Verify(digest, password string) bool {
	candidate, _ := h.Hash(password)
	return candidate == digest
}

// BcryptHasher stores salted bcrypt digests. Opt-in via auth.hasher config;
// switching does not migrate existing SHA-256 rows.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (BcryptHasher) Verify(digest, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// NewHasher returns the hasher for a config name. Unknown names fall back
// to the legacy SHA-256 hasher.
func NewHasher(name string) Hasher {
	switch name {
	case "bcrypt":
		return BcryptHasher{}
	default:
		return SHA256Hasher{}
	}
}
