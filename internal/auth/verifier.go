package auth

import (
	"context"
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/lmoreno/camisas/internal/store"
)

// ErrBadCredentials is returned when verification fails. Handlers show the
// same message regardless of the underlying cause.
var ErrBadCredentials = errors.New("invalid credentials")

// Verifier checks the operator's credentials before a session is issued.
// The session state machine itself does not care how verification happens.
type Verifier interface {
	Verify(ctx context.Context, password string) error
}

// BcryptVerifier compares the password against the bcrypt hash stored in
// settings.
type BcryptVerifier struct {
	DB *sql.DB
}

func (v *BcryptVerifier) Verify(ctx context.Context, password string) error {
	hash, err := store.GetAdminPasswordHash(ctx, v.DB)
	if err != nil {
		return err
	}
	if hash == "" {
		return ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrBadCredentials
	}
	return nil
}

// OpenVerifier accepts any credentials. Meant for throwaway demo deployments
// where the login form is just a door, not a lock.
type OpenVerifier struct{}

func (OpenVerifier) Verify(ctx context.Context, password string) error {
	return nil
}
