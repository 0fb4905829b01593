package admin

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidPassword = errors.New("invalid password")

// Verifier checks the admin credential. The default deployment uses a
// single shared secret; swapping the implementation changes the
// credential scheme without touching login handling.
type Verifier interface {
	Verify(password string) error
}

// StaticVerifier compares against the configured shared secret.
type StaticVerifier struct {
	Secret string
}

func (v StaticVerifier) Verify(password string) error {
	if subtle.ConstantTimeCompare([]byte(password), []byte(v.Secret)) != 1 {
		return ErrInvalidPassword
	}
	return nil
}

// BcryptVerifier compares against a bcrypt hash of the secret, for
// deployments that do not want the plain secret in the environment.
type BcryptVerifier struct {
	Hash string
}

func (v BcryptVerifier) Verify(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(v.Hash), []byte(password)); err != nil {
		return ErrInvalidPassword
	}
	return nil
}
