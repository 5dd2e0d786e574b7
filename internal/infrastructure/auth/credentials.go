package auth

import (
	"crypto/subtle"
	"fmt"

	"github.com/inkfolio/inkfolio/internal/shared/config"
)

// CredentialVerifier checks a login attempt against the single configured
// admin account.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

type adminCredentials struct {
	username     string
	passwordHash string
	hasher       *BcryptPasswordHasher
}

// NewAdminCredentials prefers a pre-computed password_hash. A plain password
// is hashed once here so it never sits in memory as the comparison target.
func NewAdminCredentials(cfg *config.AdminConfig) (CredentialVerifier, error) {
	if cfg.Username == "" {
		return nil, fmt.Errorf("admin username is not configured")
	}

	hasher := NewBcryptPasswordHasher(cfg.BcryptCost)
	hash := cfg.PasswordHash
	if hash != "" {
		if _, err := CheckHash(hash); err != nil {
			return nil, err
		}
	} else {
		if cfg.Password == "" {
			return nil, fmt.Errorf("admin password is not configured")
		}
		var err error
		hash, err = hasher.Hash(cfg.Password)
		if err != nil {
			return nil, err
		}
	}

	return &adminCredentials{
		username:     cfg.Username,
		passwordHash: hash,
		hasher:       hasher,
	}, nil
}

// Verify always runs bcrypt so a wrong username costs as much as a wrong
// password.
func (c *adminCredentials) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) == 1
	passOK := c.hasher.Verify(password, c.passwordHash) == nil
	return userOK && passOK
}
