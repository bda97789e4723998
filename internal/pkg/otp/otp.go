// Package otp issues and checks one-time verification codes. Codes are
// stored as bcrypt hashes; the plaintext exists only at issue time.
package otp

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"member-rewards/internal/pkg/randcode"
)

const CodeLength = 6

var (
	ErrHashingFailed = errors.New("verification code hashing failed")
	ErrInvalidCode   = errors.New("invalid verification code")
)

// Issue generates a fresh numeric code and its hash for storage.
func Issue() (code string, hash string, err error) {
	code, err = randcode.Numeric(CodeLength)
	if err != nil {
		return "", "", err
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", "", ErrHashingFailed
	}

	return code, string(hashedBytes), nil
}

// Compare checks a submitted code against the stored hash.
func Compare(hash, code string) error {
	if hash == "" || code == "" {
		return ErrInvalidCode
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(code))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidCode
		}
		return err
	}

	return nil
}
