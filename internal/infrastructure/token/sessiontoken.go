package token

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// sessionTokenBytes of entropy gives a 64 character hex token.
const sessionTokenBytes = 32

// SessionTokenGenerator issues opaque bearer tokens. Only Hash(token) is ever
// persisted.
type SessionTokenGenerator interface {
	Generate() (plainToken string, hash string, err error)
	Hash(plainToken string) string
}

type sessionTokenGenerator struct{}

func NewSessionTokenGenerator() SessionTokenGenerator {
	return &sessionTokenGenerator{}
}

func (g *sessionTokenGenerator) Generate() (string, string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	plain := hex.EncodeToString(buf)
	return plain, g.Hash(plain), nil
}

func (g *sessionTokenGenerator) Hash(plainToken string) string {
	sum := sha256.Sum256([]byte(plainToken))
	return hex.EncodeToString(sum[:])
}
