package auth

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/lmoreno/camisas/internal/db"
	"github.com/lmoreno/camisas/internal/store"
)

func TestBcryptVerifier(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing: %v", err)
	}
	if err := store.SetAdminPasswordHash(ctx, database, string(hash)); err != nil {
		t.Fatalf("storing hash: %v", err)
	}

	v := &BcryptVerifier{DB: database}

	if err := v.Verify(ctx, "correct-horse"); err != nil {
		t.Errorf("expected correct password to verify: %v", err)
	}
	if err := v.Verify(ctx, "wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("expected ErrBadCredentials, got %v", err)
	}
}

func TestBcryptVerifierNoPasswordSet(t *testing.T) {
	database := db.NewTestDB(t)

	v := &BcryptVerifier{DB: database}
	if err := v.Verify(context.Background(), "anything"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("expected ErrBadCredentials with no stored hash, got %v", err)
	}
}

func TestOpenVerifier(t *testing.T) {
	v := OpenVerifier{}
	if err := v.Verify(context.Background(), ""); err != nil {
		t.Errorf("open verifier rejected empty password: %v", err)
	}
	if err := v.Verify(context.Background(), "whatever"); err != nil {
		t.Errorf("open verifier rejected a password: %v", err)
	}
}
