package service

import (
	"fmt"

	"technomaster/internal/utils"
)

const (
	PasswordSchemePlain  = "plain"
	PasswordSchemeBcrypt = "bcrypt"
)

// PasswordVerifier decides how passwords are stored and checked.
// Login and registration only talk to this interface.
type PasswordVerifier interface {
	// Prepare turns a plain password into its stored form
	Prepare(plain string) (string, error)
	// Verify reports whether plain matches the stored form
	Verify(stored, plain string) bool
}

// PlainVerifier stores passwords as-is and compares them with exact equality
type PlainVerifier struct{}

func (PlainVerifier) Prepare(plain string) (string, error) { return plain, nil }

func (PlainVerifier) Verify(stored, plain string) bool { return stored == plain }

// BcryptVerifier stores bcrypt hashes
type BcryptVerifier struct{}

func (BcryptVerifier) Prepare(plain string) (string, error) {
	hash, err := utils.HashPassword(plain)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}

func (BcryptVerifier) Verify(stored, plain string) bool {
	return utils.CheckPasswordHash(plain, stored)
}

// NewPasswordVerifier returns the verifier for a configured scheme name
func NewPasswordVerifier(scheme string) (PasswordVerifier, error) {
	switch scheme {
	case "", PasswordSchemePlain:
		return PlainVerifier{}, nil
	case PasswordSchemeBcrypt:
		return BcryptVerifier{}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q: supported schemes are plain, bcrypt", scheme)
	}
}
